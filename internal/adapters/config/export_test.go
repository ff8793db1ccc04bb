package config

// NewLoaderWithHome creates a Loader that resolves "~" against home.
func NewLoaderWithHome(home string) *Loader {
	return &Loader{homeDir: func() (string, error) { return home, nil }}
}
