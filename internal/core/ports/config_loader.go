package ports

import "go.trai.ch/shade/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers the configuration starting at cwd, or explicitly at path when
	// it is not empty, and resolves it into settings.
	Load(cwd, path string) (domain.Settings, error)
}
