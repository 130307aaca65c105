// Package config provides the configuration loader for weft.
package config

import (
	"os"
	"strings"
	"unicode"

	"go.trai.ch/weft/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct{}

// Load reads the configuration file at the given path.
func (l *Loader) Load(path string) (domain.RuleSet, error) {
	return Load(path)
}

// Load reads a configuration file from the given path and returns a
// domain.RuleSet. The rule compiler itself is permissive, so the "all"
// entry is enforced here: a configuration without it would compile to a
// rule file lacking a default target.
func Load(path string) (domain.RuleSet, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	var weftfile Weftfile
	if err := yaml.Unmarshal(data, &weftfile); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	rs := make(domain.RuleSet, len(weftfile.Targets))
	for name, dto := range weftfile.Targets {
		if name == "" || strings.ContainsFunc(name, unicode.IsSpace) {
			return nil, zerr.With(domain.ErrInvalidTargetName, "target", name)
		}
		rs[name] = domain.TargetSpec{
			Deps:     dto.Deps,
			Commands: dto.Cmd,
		}
	}

	// Dependencies are not resolved against target names on purpose:
	// a dependency may be an external file the executor stats directly.
	if !rs.HasDefault() {
		return nil, zerr.With(domain.ErrMissingDefaultTarget, "path", path)
	}

	return rs, nil
}
