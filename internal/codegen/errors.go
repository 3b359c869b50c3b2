package codegen

import (
	"github.com/solores-go/solores/internal/casing"
	"github.com/solores-go/solores/internal/idlmodel"
	"github.com/solores-go/solores/internal/rustfmt"
)

// EmitErrors renders the "errors" section: a single
// thiserror-derived enum with explicit numeric discriminants, plus the
// ProgramError/DecodeError/PrintProgramError glue every Solana program
// error type needs. Grounded on shank/errors/mod.rs (the anchor dialect
// shares the identical shape).
func EmitErrors(programName string, errors []idlmodel.ErrorVariant) Module {
	if len(errors) == 0 {
		return Module{Name: "errors"}
	}

	buf := rustfmt.NewBuffer()
	buf.Linef("use solana_program::{")
	buf.Linef("decode_error::DecodeError,")
	buf.Linef("msg,")
	buf.Linef("program_error::{PrintProgramError, ProgramError},")
	buf.Linef("};")
	buf.Linef("use thiserror::Error;")
	buf.Blank()

	enumName := casing.ToPascalCase(programName) + "Error"

	buf.Linef("#[derive(Clone, Copy, Debug, Eq, Error, num_derive::FromPrimitive, PartialEq)]")
	buf.Linef("pub enum %s {", enumName)
	for _, e := range errors {
		msg := e.Msg
		if msg == "" {
			msg = e.Name
		}
		buf.Linef(`#[error(%q)]`, msg)
		buf.Linef("%s = %du32,", structIdent(e.Name), e.Code)
	}
	buf.Linef("}")
	buf.Blank()

	buf.Linef("impl From<%s> for ProgramError {", enumName)
	buf.Linef("fn from(e: %s) -> Self {", enumName)
	buf.Linef("ProgramError::Custom(e as u32)")
	buf.Linef("}")
	buf.Linef("}")
	buf.Blank()

	buf.Linef("impl<T> DecodeError<T> for %s {", enumName)
	buf.Linef("fn type_of() -> &'static str {")
	buf.Linef("%q", enumName)
	buf.Linef("}")
	buf.Linef("}")
	buf.Blank()

	buf.Linef("impl PrintProgramError for %s {", enumName)
	buf.Linef("fn print<E>(&self)")
	buf.Linef("where")
	buf.Linef("E: 'static")
	buf.Linef("+ std::error::Error")
	buf.Linef("+ DecodeError<E>")
	buf.Linef("+ PrintProgramError")
	buf.Linef("+ num_traits::FromPrimitive,")
	buf.Linef("{")
	buf.Linef("msg!(&self.to_string());")
	buf.Linef("}")
	buf.Linef("}")

	return Module{Name: "errors", Source: buf.String()}
}
