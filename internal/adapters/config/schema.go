package config

// Weftfile represents the structure of the weft.yaml configuration file.
type Weftfile struct {
	Version string               `yaml:"version"`
	Targets map[string]TargetDTO `yaml:"targets"`
}

// TargetDTO represents a single target definition in the configuration.
type TargetDTO struct {
	Deps []string `yaml:"deps"`
	Cmd  []string `yaml:"cmd"`
}
