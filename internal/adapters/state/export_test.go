package state

// NewStoreWithHome creates a Store that resolves "~" against home.
func NewStoreWithHome(dir, home string) (*Store, error) {
	return newStoreWithHome(dir, func() (string, error) { return home, nil })
}
