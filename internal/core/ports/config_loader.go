package ports

import "go.trai.ch/carry/internal/core/domain"

// ConfigLoader builds the run configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads configuration from the environment and the optional config file.
	Load() (*domain.Config, error)
}
