package codegen

import (
	"fmt"

	"github.com/solores-go/solores/internal/dialect"
	"github.com/solores-go/solores/internal/rustfmt"
)

// Output is the complete set of generated Rust source files for a crate:
// lib.rs plus zero or more per-section modules, in the
// order a reader would expect to find them on disk.
type Output struct {
	LibRS   string
	Modules []Module
}

// Generate is the Codegen Orchestrator: it runs every
// emitter over the sections the parsed AST actually populated, and
// assembles src/lib.rs to declare the program id and re-export each
// emitted module. Grounded on write_src/write_lib.rs's
// declare_id!+pub-mod-per-section assembly.
func Generate(ast *dialect.AST) (Output, error) {
	var out Output

	addModule := func(m Module) {
		if m.Source == "" {
			return
		}
		out.Modules = append(out.Modules, m)
	}

	addModule(EmitTypedefs(ast.Types))
	addModule(EmitAccounts(ast.Dialect, ast.Accounts))
	addModule(EmitInstructions(ast.Dialect, ast.Program.Name, ast.Instructions))
	addModule(EmitEvents(ast.Events))
	addModule(EmitErrors(ast.Program.Name, ast.Errors))

	out.LibRS = emitLibRS(ast)
	return out, nil
}

func emitLibRS(ast *dialect.AST) string {
	buf := rustfmt.NewBuffer()

	address, err := ast.Program.ValidateAddress()
	if err == nil && ast.Program.Address != "" {
		buf.Linef(`solana_program::declare_id!("%s");`, address.String())
	} else {
		buf.Linef("// no program address declared in the source IDL")
	}
	buf.Blank()

	if len(ast.Accounts) > 0 {
		buf.Linef("pub mod accounts;")
		buf.Linef("pub use accounts::*;")
		buf.Blank()
	}
	if len(ast.Instructions) > 0 {
		buf.Linef("pub mod instructions;")
		buf.Linef("pub use instructions::*;")
		buf.Blank()
	}
	if len(ast.Types) > 0 {
		buf.Linef("pub mod typedefs;")
		buf.Linef("pub use typedefs::*;")
		buf.Blank()
	}
	if len(ast.Events) > 0 {
		buf.Linef("pub mod events;")
		buf.Linef("pub use events::*;")
		buf.Blank()
	}
	if len(ast.Errors) > 0 {
		buf.Linef("pub mod errors;")
		buf.Linef("pub use errors::*;")
		buf.Blank()
	}

	return buf.String()
}

// ModuleFileName returns the src/<name>.rs path a Module should be
// written to.
func ModuleFileName(m Module) string {
	return fmt.Sprintf("src/%s.rs", m.Name)
}
