package dialect

import "github.com/solores-go/solores/internal/idlmodel"

// AST is the dialect-agnostic parse result: a struct of
// optional sections. An absent section (nil slice) produces no emitted
// module for it.
type AST struct {
	Dialect      Dialect
	Program      idlmodel.Program
	Accounts     []idlmodel.Account
	Types        []idlmodel.Typedef
	Instructions []idlmodel.Instruction
	Errors       []idlmodel.ErrorVariant
	Events       []idlmodel.Event // Anchor only
}
