package codegen

import (
	"github.com/solores-go/solores/internal/casing"
	"github.com/solores-go/solores/internal/discm"
	"github.com/solores-go/solores/internal/idlmodel"
	"github.com/solores-go/solores/internal/rustfmt"
)

// EmitEvents renders the "events" section:
// each event becomes a Borsh struct plus an 8-byte-discriminator-checked
// newtype, grounded on anchor/events/event.rs. Unlike accounts, the
// discriminator pre-image uses the event's declared name verbatim
// (internal/discm.Event), never PascalCased.
func EmitEvents(events []idlmodel.Event) Module {
	if len(events) == 0 {
		return Module{Name: "events"}
	}

	buf := rustfmt.NewBuffer()
	buf.Linef("use borsh::{BorshDeserialize, BorshSerialize};")
	if anyEventContainsPubkey(events) {
		buf.Linef("use solana_program::pubkey::Pubkey;")
	}
	if anyEventContainsDefined(events) {
		buf.Linef("use crate::*;")
	}
	buf.Blank()

	for _, ev := range events {
		emitEvent(buf, ev)
		buf.Blank()
	}

	return Module{Name: "events", Source: buf.String()}
}

func anyEventContainsPubkey(events []idlmodel.Event) bool {
	for _, e := range events {
		for _, f := range e.Fields {
			if f.Type.ContainsPubkey() {
				return true
			}
		}
	}
	return false
}

func anyEventContainsDefined(events []idlmodel.Event) bool {
	for _, e := range events {
		for _, f := range e.Fields {
			if f.Type.ContainsDefined() {
				return true
			}
		}
	}
	return false
}

func emitEvent(buf *rustfmt.Buffer, ev idlmodel.Event) {
	structName := structIdent(ev.Name)
	eventName := structName + "Event"
	discmIdent := casing.ToShoutySnakeCase(ev.Name) + "_EVENT_DISCM"
	discmBytes := discm.Event(ev.Name)

	buf.Linef("pub const %s: [u8; 8] = %s;", discmIdent, discmArrayLiteral(discmBytes))
	buf.Blank()
	buf.Linef("#[derive(Clone, Debug, PartialEq, BorshDeserialize, BorshSerialize)]")
	buf.Linef("pub struct %s {", structName)
	for _, f := range ev.Fields {
		buf.Linef("pub %s: %s,", fieldIdent(f.Name), f.Type.EmitRust())
	}
	buf.Linef("}")
	buf.Blank()

	buf.Linef("#[derive(Clone, Debug, PartialEq)]")
	buf.Linef("pub struct %s(pub %s);", eventName, structName)
	buf.Blank()
	buf.Linef("impl BorshSerialize for %s {", eventName)
	buf.Linef("fn serialize<W: std::io::Write>(&self, writer: &mut W) -> std::io::Result<()> {")
	buf.Linef("%s.serialize(writer)?;", discmIdent)
	buf.Linef("self.0.serialize(writer)")
	buf.Linef("}")
	buf.Linef("}")
	buf.Blank()
	buf.Linef("impl %s {", eventName)
	buf.Linef("pub fn deserialize(buf: &mut &[u8]) -> std::io::Result<Self> {")
	buf.Linef("let maybe_discm = <[u8; 8]>::deserialize(buf)?;")
	buf.Linef("if maybe_discm != %s {", discmIdent)
	buf.Linef(`return Err(std::io::Error::new(std::io::ErrorKind::Other, format!("discm does not match. Expected: {:?}. Received: {:?}", %s, maybe_discm)));`, discmIdent)
	buf.Linef("}")
	buf.Linef("Ok(Self(%s::deserialize(buf)?))", structName)
	buf.Linef("}")
	buf.Linef("}")
}
