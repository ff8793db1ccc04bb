package ports

// Logger prints status lines for the user.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Info prints a plain status line.
	Info(msg string)
	// Warn prints a degraded-outcome line.
	Warn(msg string)
	// Error prints an error together with its cause chain.
	Error(err error)
}
