// Package domain contains the core domain models for the workflow layer.
package domain

import "slices"

// DefaultTarget is the designated entry target of every rule set.
// It is always emitted first and declared as the executor's default goal.
const DefaultTarget = "all"

// TargetSpec describes a single build step: the dependencies it needs
// and the shell commands that produce it. Both slices keep their given
// order; dependency order matters for emission but not for semantics.
type TargetSpec struct {
	Deps     []string
	Commands []string
}

// RuleSet maps target names to their specs. The DefaultTarget entry is
// the entry point of the whole set; the compiler does not enforce its
// presence, the config loader does.
type RuleSet map[string]TargetSpec

// HasDefault reports whether the rule set contains the DefaultTarget entry.
func (rs RuleSet) HasDefault() bool {
	_, ok := rs[DefaultTarget]
	return ok
}

// SortedTargets returns every target name except DefaultTarget in
// lexicographic order. Emission order is pinned to this so that
// compiled output is deterministic and diff-stable.
func (rs RuleSet) SortedTargets() []string {
	names := make([]string, 0, len(rs))
	for name := range rs {
		if name == DefaultTarget {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
