// Package compiler renders a rule set into the external executor's
// line-oriented rule file syntax.
package compiler

import (
	"strings"

	"go.trai.ch/weft/internal/core/domain"
)

// preamble pins down the executor's behavior: bash as the recipe shell,
// no builtin rules or variables, no automatic deletion of intermediate
// files, no suffix rules, and "all" as the default, always-run goal.
const preamble = `SHELL := /bin/bash
MAKEFLAGS += --no-builtin-rules --no-builtin-variables
.SECONDARY:
.SUFFIXES:
.DEFAULT_GOAL := all
.PHONY: all
`

// Compile renders the rule set as rule file text. The "all" rule is
// emitted first, every other target follows in lexicographic order, so
// equal inputs always produce byte-identical output.
//
// Command strings are trusted verbatim shell text; no quoting or
// escaping is applied. Nothing is validated here: a set without an
// "all" entry compiles to a rule file lacking a default target, and
// circular dependencies are left for the executor to reject.
func Compile(rs domain.RuleSet) string {
	var b strings.Builder
	b.WriteString(preamble)
	b.WriteByte('\n')

	if rs.HasDefault() {
		writeRule(&b, domain.DefaultTarget, rs[domain.DefaultTarget])
	}
	for _, name := range rs.SortedTargets() {
		writeRule(&b, name, rs[name])
	}
	return b.String()
}

func writeRule(b *strings.Builder, name string, spec domain.TargetSpec) {
	b.WriteString(name)
	b.WriteByte(':')
	for _, dep := range spec.Deps {
		b.WriteByte(' ')
		b.WriteString(dep)
	}
	b.WriteByte('\n')
	for _, cmd := range spec.Commands {
		b.WriteByte('\t')
		b.WriteString(cmd)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
}
