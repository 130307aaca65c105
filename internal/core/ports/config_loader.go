package ports

import "go.trai.ch/weft/internal/core/domain"

// ConfigLoader defines the interface for loading the workflow configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at the given path and returns
	// the rule set. The returned set always contains the DefaultTarget
	// entry; its absence is a load error.
	Load(path string) (domain.RuleSet, error)
}
