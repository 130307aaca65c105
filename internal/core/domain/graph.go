package domain

import "slices"

// DependencyGraph maps a dependency name to the targets that directly
// depend on it (a reversed adjacency list). It is derived from rule
// file text, rebuilt from scratch on every use and never persisted.
type DependencyGraph struct {
	dependents map[string][]string
}

// NewDependencyGraph creates a new empty DependencyGraph.
func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		dependents: make(map[string][]string),
	}
}

// AddEdge records that target depends on dep. Duplicate edges are
// preserved: a target listing the same dependency twice yields two
// entries in the adjacency list.
func (g *DependencyGraph) AddEdge(dep, target string) {
	g.dependents[dep] = append(g.dependents[dep], target)
}

// Dependencies returns all dependency names with at least one recorded
// dependent, in lexicographic order.
func (g *DependencyGraph) Dependencies() []string {
	names := make([]string, 0, len(g.dependents))
	for name, targets := range g.dependents {
		if len(targets) == 0 {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Dependents returns the targets depending on dep, in the order their
// edges were first observed.
func (g *DependencyGraph) Dependents(dep string) []string {
	return g.dependents[dep]
}
