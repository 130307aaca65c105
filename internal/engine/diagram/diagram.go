// Package diagram re-parses rule file text and renders the reversed
// dependency relation as a mermaid flowchart.
package diagram

import (
	"bufio"
	"fmt"
	"strings"
	"unicode"

	"go.trai.ch/weft/internal/core/domain"
)

// Header is the first line of every rendered diagram: a top-to-bottom
// directed graph declaration.
const Header = "graph TB"

// Extract scans rule file text line by line and builds the reverse
// adjacency list. A line is a rule header when a single non-whitespace
// token is immediately followed by a colon; indented command lines
// never match, and anything else that doesn't match is skipped
// silently. Executor special targets (leading dot) belong to the
// preamble and are not graph nodes.
func Extract(ruleText string) *domain.DependencyGraph {
	g := domain.NewDependencyGraph()
	sc := bufio.NewScanner(strings.NewReader(ruleText))
	for sc.Scan() {
		target, rest, ok := matchRuleHeader(sc.Text())
		if !ok || strings.HasPrefix(target, ".") {
			continue
		}
		for _, dep := range strings.Fields(rest) {
			g.AddEdge(dep, target)
		}
	}
	return g
}

// matchRuleHeader splits a rule header line into its target name and
// the unparsed dependency remainder.
func matchRuleHeader(line string) (target, rest string, ok bool) {
	i := strings.IndexByte(line, ':')
	if i <= 0 {
		return "", "", false
	}
	target = line[:i]
	if strings.ContainsFunc(target, unicode.IsSpace) {
		return "", "", false
	}
	return target, line[i+1:], true
}

// Render produces the mermaid document for a dependency graph:
// the Header line, then one edge line per recorded (dep, target) pair.
// Dependencies are ordered lexicographically, their dependents in the
// order first observed; duplicate edges render twice.
func Render(g *domain.DependencyGraph) string {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteByte('\n')
	for _, dep := range g.Dependencies() {
		for _, target := range g.Dependents(dep) {
			fmt.Fprintf(&b, "  %s --> %s;\n", dep, target)
		}
	}
	return b.String()
}
