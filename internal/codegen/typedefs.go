package codegen

import (
	"github.com/solores-go/solores/internal/idlmodel"
	"github.com/solores-go/solores/internal/rustfmt"
)

// EmitTypedefs renders the "types" section: one Rust
// struct/enum per declared typedef, Borsh-derived and conditionally
// serde-derived, grounded on the original tool's shank/anchor
// typedefs.rs ToTokens impls.
func EmitTypedefs(typedefs []idlmodel.Typedef) Module {
	if len(typedefs) == 0 {
		return Module{Name: "typedefs"}
	}

	buf := rustfmt.NewBuffer()
	buf.Linef("use borsh::{BorshDeserialize, BorshSerialize};")
	if anyContainsPubkey(typedefs) {
		buf.Linef("use solana_program::pubkey::Pubkey;")
	}
	buf.Blank()

	for _, td := range typedefs {
		emitTypedef(buf, td)
		buf.Blank()
	}

	return Module{Name: "typedefs", Source: buf.String()}
}

func anyContainsPubkey(typedefs []idlmodel.Typedef) bool {
	for _, td := range typedefs {
		if td.ContainsPubkey() {
			return true
		}
	}
	return false
}

func emitTypedef(buf *rustfmt.Buffer, td idlmodel.Typedef) {
	name := structIdent(td.Name)
	buf.Linef(`#[derive(Clone, Debug, BorshDeserialize, BorshSerialize, PartialEq)]`)
	buf.Linef(`#[cfg_attr(feature = "serde", derive(serde::Serialize, serde::Deserialize))]`)
	switch td.Kind {
	case idlmodel.TypedefKindStruct:
		buf.Linef("pub struct %s {", name)
		for _, f := range td.Fields {
			buf.Linef("pub %s: %s,", fieldIdent(f.Name), f.Type.EmitRust())
		}
		buf.Linef("}")
	case idlmodel.TypedefKindEnum:
		buf.Linef("pub enum %s {", name)
		for _, v := range td.Variants {
			emitVariant(buf, v)
		}
		buf.Linef("}")
	}
}

func emitVariant(buf *rustfmt.Buffer, v idlmodel.Variant) {
	name := structIdent(v.Name)
	switch v.FieldsKind {
	case idlmodel.VariantFieldsNone:
		buf.Linef("%s,", name)
	case idlmodel.VariantFieldsStruct:
		buf.Linef("%s {", name)
		for _, f := range v.NamedFields {
			buf.Linef("%s: %s,", fieldIdent(f.Name), f.Type.EmitRust())
		}
		buf.Linef("},")
	case idlmodel.VariantFieldsTuple:
		types := make([]string, len(v.TupleFields))
		for i, tr := range v.TupleFields {
			types[i] = tr.EmitRust()
		}
		buf.Linef("%s(%s),", name, joinComma(types))
	}
}

func joinComma(items []string) string {
	out := ""
	for i, s := range items {
		if i > 0 {
			out += ", "
		}
		out += s
	}
	return out
}
