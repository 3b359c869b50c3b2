// Package codegen renders a parsed IDL AST into Rust source text: one
// module per IDL section, assembled by the orchestrator
// into a complete client crate.
package codegen

import (
	"fmt"

	"github.com/solores-go/solores/internal/casing"
	"github.com/solores-go/solores/internal/dedupe"
	"github.com/solores-go/solores/internal/idlmodel"
	"github.com/solores-go/solores/internal/rustfmt"
)

// Module is one named, independently-emitted unit of generated source.
// An absent IDL section yields a Module with an empty Source, which
// Generate leaves out of its Output.
type Module struct {
	Name   string
	Source string
}

func writeDocComment(buf *rustfmt.Buffer, desc string) {
	if desc == "" {
		return
	}
	buf.Linef("/// %s", desc)
}

// dedupeAccounts resolves an instruction's declared accounts list by
// name and surfaces both halves: later duplicates are treated as aliases
// of the first account with that name. The warning for duplicates is
// logged by cmd/solores, not here.
func dedupeAccounts(accounts []idlmodel.IxAccount) dedupe.Result[idlmodel.IxAccount] {
	return dedupe.Resolve(accounts, func(a idlmodel.IxAccount) string { return a.Name })
}

func fieldIdent(name string) string {
	return casing.ToSnakeCase(name)
}

func structIdent(name string) string {
	return casing.ConditionalPascalCase(name)
}

func discmArrayLiteral(b [8]byte) string {
	return arrayLiteral(b[:])
}

func arrayLiteral(b []byte) string {
	s := "["
	for i, v := range b {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%d", v)
	}
	return s + "]"
}
