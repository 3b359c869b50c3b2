package codegen

import (
	"github.com/solores-go/solores/internal/casing"
	"github.com/solores-go/solores/internal/dialect"
	"github.com/solores-go/solores/internal/discm"
	"github.com/solores-go/solores/internal/idlmodel"
	"github.com/solores-go/solores/internal/rustfmt"
)

// EmitAccounts renders the "accounts" section. Anchor wraps
// each struct in an 8-byte-discriminator-checked newtype (grounded on
// anchor/accounts/account.rs); Shank accounts emit the bare typedef with
// no discriminator at all, since Shank never declares one for accounts.
func EmitAccounts(d dialect.Dialect, accounts []idlmodel.Account) Module {
	if len(accounts) == 0 {
		return Module{Name: "accounts"}
	}

	buf := rustfmt.NewBuffer()
	buf.Linef("use borsh::{BorshDeserialize, BorshSerialize};")
	if anyAccountContainsPubkey(accounts) {
		buf.Linef("use solana_program::pubkey::Pubkey;")
	}
	buf.Blank()

	for _, acc := range accounts {
		emitTypedef(buf, acc.Typedef)
		buf.Blank()
		if d == dialect.Anchor {
			emitAnchorAccountWrapper(buf, acc.Typedef)
			buf.Blank()
		}
	}

	return Module{Name: "accounts", Source: buf.String()}
}

func anyAccountContainsPubkey(accounts []idlmodel.Account) bool {
	for _, a := range accounts {
		if a.Typedef.ContainsPubkey() {
			return true
		}
	}
	return false
}

func emitAnchorAccountWrapper(buf *rustfmt.Buffer, td idlmodel.Typedef) {
	structName := structIdent(td.Name)
	discmIdent := casing.ToShoutySnakeCase(td.Name) + "_ACCOUNT_DISCM"
	wrapperName := structName + "Account"
	discmBytes := discm.Account(td.Name)

	buf.Linef("pub const %s: [u8; 8] = %s;", discmIdent, discmArrayLiteral(discmBytes))
	buf.Blank()
	buf.Linef("#[derive(Clone, Debug, PartialEq)]")
	buf.Linef("pub struct %s(pub %s);", wrapperName, structName)
	buf.Blank()
	buf.Linef("impl %s {", wrapperName)
	buf.Linef("pub fn deserialize(buf: &[u8]) -> std::io::Result<Self> {")
	buf.Linef("use std::io::Read;")
	buf.Linef("let mut reader = buf;")
	buf.Linef("let mut maybe_discm = [0u8; 8];")
	buf.Linef("reader.read_exact(&mut maybe_discm)?;")
	buf.Linef("if maybe_discm != %s {", discmIdent)
	buf.Linef(`return Err(std::io::Error::new(std::io::ErrorKind::Other, format!("discm does not match. Expected: {:?}. Received: {:?}", %s, maybe_discm)));`, discmIdent)
	buf.Linef("}")
	buf.Linef("Ok(Self(%s::deserialize(&mut reader)?))", structName)
	buf.Linef("}")
	buf.Blank()
	buf.Linef("pub fn serialize<W: std::io::Write>(&self, mut writer: W) -> std::io::Result<()> {")
	buf.Linef("writer.write_all(&%s)?;", discmIdent)
	buf.Linef("self.0.serialize(&mut writer)")
	buf.Linef("}")
	buf.Blank()
	buf.Linef("pub fn try_to_vec(&self) -> std::io::Result<Vec<u8>> {")
	buf.Linef("let mut data = Vec::new();")
	buf.Linef("self.serialize(&mut data)?;")
	buf.Linef("Ok(data)")
	buf.Linef("}")
	buf.Linef("}")
}
