package diagram_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/weft/internal/core/domain"
	"go.trai.ch/weft/internal/engine/compiler"
	"go.trai.ch/weft/internal/engine/diagram"
)

func TestExtract_RoundTrip(t *testing.T) {
	rs := domain.RuleSet{
		"all": {
			Deps:     []string{"hello.txt", "world.txt"},
			Commands: []string{`cat $^ | tr '\n' ' '`, "echo"},
		},
		"hello.txt": {Commands: []string{"echo 'Hello' > $@"}},
		"world.txt": {Commands: []string{"echo 'World' > $@"}},
	}

	out := diagram.Render(diagram.Extract(compiler.Compile(rs)))

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, "graph TB", lines[0])
	assert.Contains(t, lines, "  hello.txt --> all;")
	assert.Contains(t, lines, "  world.txt --> all;")
	// Preamble directives and command lines contribute no nodes.
	assert.Len(t, lines, 3)
}

func TestExtract_CommandLinesNeverMatch(t *testing.T) {
	// The command line contains a colon but is indented, so it must not
	// be taken for a rule header.
	text := "out: in\n\tcurl http://example.com: > $@\n"
	g := diagram.Extract(text)

	assert.Equal(t, []string{"in"}, g.Dependencies())
	assert.Equal(t, []string{"out"}, g.Dependents("in"))
}

func TestExtract_DuplicateEdgesPreserved(t *testing.T) {
	g := diagram.Extract("pkg: dep dep\n")
	assert.Equal(t, []string{"pkg", "pkg"}, g.Dependents("dep"))

	out := diagram.Render(g)
	assert.Equal(t, 2, strings.Count(out, "  dep --> pkg;\n"))
}

func TestExtract_MalformedLinesSkipped(t *testing.T) {
	text := strings.Join([]string{
		"SHELL := /bin/bash",
		"MAKEFLAGS += --no-builtin-rules",
		"just some prose",
		": no target",
		"",
		"a: b",
	}, "\n")

	g := diagram.Extract(text)
	assert.Equal(t, []string{"b"}, g.Dependencies())
}

func TestExtract_SpecialTargetsAreNotNodes(t *testing.T) {
	text := ".PHONY: all\n.SECONDARY:\nall: lib\n"
	g := diagram.Extract(text)

	// ".PHONY: all" must not record an edge from all.
	assert.Equal(t, []string{"lib"}, g.Dependencies())
	assert.Equal(t, []string{"all"}, g.Dependents("lib"))
}

func TestRender_EmptyInput(t *testing.T) {
	out := diagram.Render(diagram.Extract(""))
	assert.Equal(t, "graph TB\n", out)
}

func TestRender_DependenciesInLexicographicOrder(t *testing.T) {
	g := domain.NewDependencyGraph()
	g.AddEdge("zzz", "all")
	g.AddEdge("aaa", "all")
	g.AddEdge("mmm", "all")

	out := diagram.Render(g)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "  aaa --> all;", lines[1])
	assert.Equal(t, "  mmm --> all;", lines[2])
	assert.Equal(t, "  zzz --> all;", lines[3])
}

func TestRender_DependentsInFirstObservedOrder(t *testing.T) {
	g := domain.NewDependencyGraph()
	g.AddEdge("lib", "zeta")
	g.AddEdge("lib", "alpha")

	out := diagram.Render(g)
	zeta := strings.Index(out, "lib --> zeta;")
	alpha := strings.Index(out, "lib --> alpha;")
	require.GreaterOrEqual(t, zeta, 0)
	require.GreaterOrEqual(t, alpha, 0)
	assert.Less(t, zeta, alpha)
}
