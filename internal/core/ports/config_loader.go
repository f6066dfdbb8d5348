package ports

import "go.trai.ch/aospbuild/internal/core/domain"

//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks

// ConfigLoader resolves the build configuration of a run.
type ConfigLoader interface {
	// Load layers defaults, the config file, the .env file of cwd and the process
	// environment. An empty file selects the default file name; a relative one is
	// resolved against cwd.
	Load(cwd, file string) (domain.BuildConfig, error)
}
