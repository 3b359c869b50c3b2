package codegen

import (
	"fmt"

	"github.com/solores-go/solores/internal/casing"
	"github.com/solores-go/solores/internal/dialect"
	"github.com/solores-go/solores/internal/discm"
	"github.com/solores-go/solores/internal/idlmodel"
	"github.com/solores-go/solores/internal/rustfmt"
)

// EmitInstructions renders the "instructions" section: a program-wide
// sum-type enum with one variant per instruction, then per instruction
// an Accounts/Keys struct pair, the five From conversions between them
// and [AccountMeta]/[AccountInfo] arrays, a discriminator constant sized
// per dialect, an IxArgs/IxData struct pair with discriminator-checked
// (de)serialization, builder functions, CPI invoke helpers, and
// account-privilege verification helpers. Grounded end-to-end on
// shank/instructions/instruction.rs and on the program-ix enum shape in
// examples/anchor/unstake_it/.../instructions.rs, generalized across all
// three dialects' discriminator shapes via internal/discm.
func EmitInstructions(d dialect.Dialect, programName string, instructions []idlmodel.Instruction) Module {
	if len(instructions) == 0 {
		return Module{Name: "instructions"}
	}

	buf := rustfmt.NewBuffer()
	buf.Linef("use borsh::{BorshDeserialize, BorshSerialize};")
	buf.Linef("use solana_program::{")
	buf.Linef("account_info::AccountInfo,")
	buf.Linef("entrypoint::ProgramResult,")
	buf.Linef("instruction::{AccountMeta, Instruction},")
	buf.Linef("program::{invoke, invoke_signed},")
	buf.Linef("program_error::ProgramError,")
	buf.Linef("pubkey::Pubkey,")
	buf.Linef("};")
	if anyIxArgsContainDefined(instructions) {
		buf.Linef("use crate::*;")
	}
	buf.Blank()

	emitProgramIxEnum(buf, d, programName, instructions)
	buf.Blank()

	for i, ix := range instructions {
		emitInstruction(buf, d, ix, uint32(i))
		buf.Blank()
	}

	return Module{Name: "instructions", Source: buf.String()}
}

// emitProgramIxEnum renders the <ProgramName>ProgramIx sum type: one
// variant per instruction, carrying its IxArgs payload when the
// instruction has args and a unit variant otherwise, plus
// deserialize/serialize/try_to_vec dispatching on each instruction's
// _IX_DISCM constant. Grounded on
// examples/anchor/unstake_it/unstake_interface/src/instructions.rs's
// UnstakeProgramIx and on program_ix_enum_ident
// ("{program_name}ProgramIx") from idl_format/bincode/instructions/mod.rs.
func emitProgramIxEnum(buf *rustfmt.Buffer, d dialect.Dialect, programName string, instructions []idlmodel.Instruction) {
	enumIdent := casing.ToPascalCase(programName) + "ProgramIx"
	discmType, discmLen := discmTypeAndLen(d)

	writeDiscm := func(ident string) string {
		if discmType == "u8" {
			return fmt.Sprintf("writer.write_all(&[%s])", ident)
		}
		return fmt.Sprintf("writer.write_all(&%s)", ident)
	}

	buf.Linef("#[derive(Clone, Debug, PartialEq)]")
	buf.Linef("pub enum %s {", enumIdent)
	for _, ix := range instructions {
		pascal := casing.ToPascalCase(ix.Name)
		if ix.HasArgs() {
			buf.Linef("%s(%sIxArgs),", pascal, pascal)
		} else {
			buf.Linef("%s,", pascal)
		}
	}
	buf.Linef("}")
	buf.Blank()

	buf.Linef("impl %s {", enumIdent)
	buf.Linef("pub fn deserialize(buf: &[u8]) -> std::io::Result<Self> {")
	buf.Linef("use std::io::Read;")
	buf.Linef("let mut reader = buf;")
	buf.Linef("let mut maybe_discm_buf = [0u8; %d];", discmLen)
	buf.Linef("reader.read_exact(&mut maybe_discm_buf)?;")
	if discmType == "u8" {
		buf.Linef("let maybe_discm = maybe_discm_buf[0];")
	} else {
		buf.Linef("let maybe_discm = maybe_discm_buf;")
	}
	buf.Linef("match maybe_discm {")
	for _, ix := range instructions {
		pascal := casing.ToPascalCase(ix.Name)
		discmIdent := casing.ToShoutySnakeCase(ix.Name) + "_IX_DISCM"
		if ix.HasArgs() {
			buf.Linef("%s => Ok(Self::%s(%sIxArgs::deserialize(&mut reader)?)),", discmIdent, pascal, pascal)
		} else {
			buf.Linef("%s => Ok(Self::%s),", discmIdent, pascal)
		}
	}
	buf.Linef(`_ => Err(std::io::Error::new(std::io::ErrorKind::Other, format!("discm {:?} not found", maybe_discm))),`)
	buf.Linef("}")
	buf.Linef("}")
	buf.Blank()

	buf.Linef("pub fn serialize<W: std::io::Write>(&self, mut writer: W) -> std::io::Result<()> {")
	buf.Linef("match self {")
	for _, ix := range instructions {
		pascal := casing.ToPascalCase(ix.Name)
		discmIdent := casing.ToShoutySnakeCase(ix.Name) + "_IX_DISCM"
		if ix.HasArgs() {
			buf.Linef("Self::%s(args) => {", pascal)
			buf.Linef("%s?;", writeDiscm(discmIdent))
			buf.Linef("args.serialize(&mut writer)")
			buf.Linef("}")
		} else {
			buf.Linef("Self::%s => %s,", pascal, writeDiscm(discmIdent))
		}
	}
	buf.Linef("}")
	buf.Linef("}")
	buf.Blank()

	buf.Linef("pub fn try_to_vec(&self) -> std::io::Result<Vec<u8>> {")
	buf.Linef("let mut data = Vec::new();")
	buf.Linef("self.serialize(&mut data)?;")
	buf.Linef("Ok(data)")
	buf.Linef("}")
	buf.Linef("}")
}

func anyIxArgsContainDefined(instructions []idlmodel.Instruction) bool {
	for _, ix := range instructions {
		if ix.ArgsContainDefined() {
			return true
		}
	}
	return false
}

func emitInstruction(buf *rustfmt.Buffer, d dialect.Dialect, ix idlmodel.Instruction, index uint32) {
	snake := casing.ToSnakeCase(ix.Name)
	pascal := casing.ToPascalCase(ix.Name)
	shouty := casing.ToShoutySnakeCase(ix.Name)

	accountsIdent := pascal + "Accounts"
	keysIdent := pascal + "Keys"
	argsIdent := pascal + "IxArgs"
	dataIdent := pascal + "IxData"
	accountsLenIdent := shouty + "_IX_ACCOUNTS_LEN"
	discmIdent := shouty + "_IX_DISCM"
	ixFnIdent := snake + "_ix"
	ixWithProgramIDFnIdent := snake + "_ix_with_program_id"
	invokeFnIdent := snake + "_invoke"
	invokeSignedFnIdent := snake + "_invoke_signed"
	verifyKeysFnIdent := snake + "_verify_account_keys"
	verifyPrivilegesFnIdent := snake + "_verify_account_privileges"
	verifyWritableFnIdent := snake + "_verify_writable_privileges"
	verifySignerFnIdent := snake + "_verify_signer_privileges"

	dedup := dedupeAccounts(ix.Accounts)
	unique := dedup.Unique
	hasAccounts := len(ix.Accounts) > 0
	hasArgs := ix.HasArgs()

	discmType, discmLen, discmLiteral := ixDiscm(d, ix, index)

	if hasAccounts {
		buf.Linef("pub const %s: usize = %d;", accountsLenIdent, len(ix.Accounts))
		buf.Blank()

		buf.Linef("#[derive(Copy, Clone, Debug)]")
		buf.Linef("pub struct %s<'me, 'info> {", accountsIdent)
		for _, acc := range unique {
			writeDocComment(buf, acc.Desc)
			buf.Linef("pub %s: &'me AccountInfo<'info>,", fieldIdent(acc.Name))
		}
		buf.Linef("}")
		buf.Blank()

		buf.Linef("#[derive(Copy, Clone, Debug)]")
		buf.Linef("pub struct %s {", keysIdent)
		for _, acc := range unique {
			writeDocComment(buf, acc.Desc)
			buf.Linef("pub %s: Pubkey,", fieldIdent(acc.Name))
		}
		buf.Linef("}")
		buf.Blank()

		buf.Linef("impl From<&%s<'_, '_>> for %s {", accountsIdent, keysIdent)
		buf.Linef("fn from(accounts: &%s) -> Self {", accountsIdent)
		buf.Linef("Self {")
		for _, acc := range unique {
			buf.Linef("%s: *accounts.%s.key,", fieldIdent(acc.Name), fieldIdent(acc.Name))
		}
		buf.Linef("}")
		buf.Linef("}")
		buf.Linef("}")
		buf.Blank()

		buf.Linef("impl From<%s> for [AccountMeta; %s] {", keysIdent, accountsLenIdent)
		buf.Linef("fn from(keys: %s) -> Self {", keysIdent)
		buf.Linef("[")
		for _, acc := range ix.Accounts {
			buf.Linef("AccountMeta { pubkey: keys.%s, is_signer: %t, is_writable: %t },", fieldIdent(acc.Name), acc.IsSigner, acc.IsMut)
		}
		buf.Linef("]")
		buf.Linef("}")
		buf.Linef("}")
		buf.Blank()

		buf.Linef("impl From<[Pubkey; %s]> for %s {", accountsLenIdent, keysIdent)
		buf.Linef("fn from(pubkeys: [Pubkey; %s]) -> Self {", accountsLenIdent)
		buf.Linef("Self {")
		for i, acc := range unique {
			buf.Linef("%s: pubkeys[%d],", fieldIdent(acc.Name), i)
		}
		buf.Linef("}")
		buf.Linef("}")
		buf.Linef("}")
		buf.Blank()

		buf.Linef("impl<'info> From<%s<'_, 'info>> for [AccountInfo<'info>; %s] {", accountsIdent, accountsLenIdent)
		buf.Linef("fn from(accounts: %s<'_, 'info>) -> Self {", accountsIdent)
		buf.Linef("[")
		for _, acc := range ix.Accounts {
			buf.Linef("accounts.%s.clone(),", fieldIdent(acc.Name))
		}
		buf.Linef("]")
		buf.Linef("}")
		buf.Linef("}")
		buf.Blank()

		buf.Linef("impl<'me, 'info> From<&'me [AccountInfo<'info>; %s]> for %s<'me, 'info> {", accountsLenIdent, accountsIdent)
		buf.Linef("fn from(arr: &'me [AccountInfo<'info>; %s]) -> Self {", accountsLenIdent)
		buf.Linef("Self {")
		seenFields := make(map[string]bool, len(unique))
		for i, acc := range ix.Accounts {
			if seenFields[acc.Name] {
				continue
			}
			seenFields[acc.Name] = true
			buf.Linef("%s: &arr[%d],", fieldIdent(acc.Name), i)
		}
		buf.Linef("}")
		buf.Linef("}")
		buf.Linef("}")
		buf.Blank()
	}

	buf.Linef("pub const %s: %s = %s;", discmIdent, discmType, discmLiteral)
	buf.Blank()

	if hasArgs {
		buf.Linef("#[derive(BorshDeserialize, BorshSerialize, Clone, Debug, PartialEq)]")
		buf.Linef(`#[cfg_attr(feature = "serde", derive(serde::Serialize, serde::Deserialize))]`)
		buf.Linef("pub struct %s {", argsIdent)
		for _, a := range ix.Args {
			buf.Linef("pub %s: %s,", fieldIdent(a.Name), a.Type.EmitRust())
		}
		buf.Linef("}")
		buf.Blank()
	}

	buf.Linef("#[derive(Clone, Debug, PartialEq)]")
	if hasArgs {
		buf.Linef("pub struct %s(pub %s);", dataIdent, argsIdent)
	} else {
		buf.Linef("pub struct %s;", dataIdent)
	}
	buf.Blank()

	if hasArgs {
		buf.Linef("impl From<%s> for %s {", argsIdent, dataIdent)
		buf.Linef("fn from(args: %s) -> Self {", argsIdent)
		buf.Linef("Self(args)")
		buf.Linef("}")
		buf.Linef("}")
		buf.Blank()
	}

	emitIxDataImpl(buf, dataIdent, discmIdent, discmType, discmLen, argsIdent, hasArgs)
	buf.Blank()

	emitIxFns(buf, ixFnIdent, ixWithProgramIDFnIdent, keysIdent, argsIdent, dataIdent, accountsLenIdent, hasAccounts, hasArgs)
	buf.Blank()

	emitInvokeFns(buf, invokeFnIdent, invokeSignedFnIdent, ixFnIdent, accountsIdent, keysIdent, argsIdent, accountsLenIdent, hasAccounts, hasArgs)

	if hasAccounts {
		buf.Blank()
		emitVerifyAccountKeysFn(buf, verifyKeysFnIdent, accountsIdent, keysIdent, unique)

		if anyPrivileged(unique) {
			buf.Blank()
			emitVerifyPrivilegesFns(buf, verifyPrivilegesFnIdent, verifyWritableFnIdent, verifySignerFnIdent, accountsIdent, unique)
		}
	}
}

func anyPrivileged(accounts []idlmodel.IxAccount) bool {
	for _, a := range accounts {
		if a.IsPrivileged() {
			return true
		}
	}
	return false
}

// ixDiscm returns the Rust type, byte length, and array literal for an
// instruction's discriminator, dispatching on dialect.
func ixDiscm(d dialect.Dialect, ix idlmodel.Instruction, index uint32) (rustType string, length int, literal string) {
	rustType, length = discmTypeAndLen(d)
	switch d {
	case dialect.Shank:
		v := uint8(0)
		if ix.ShankDiscriminant != nil {
			v = *ix.ShankDiscriminant
		}
		return rustType, length, fmt.Sprintf("%d", v)
	case dialect.Bincode:
		b := discm.Bincode(index)
		return rustType, length, arrayLiteral(b[:])
	default:
		b := discm.Instruction(ix.Name)
		return rustType, length, discmArrayLiteral(b)
	}
}

// discmTypeAndLen returns the Rust type and byte width of an
// instruction discriminator for a dialect, independent of any
// particular instruction.
func discmTypeAndLen(d dialect.Dialect) (rustType string, length int) {
	switch d {
	case dialect.Shank:
		return "u8", 1
	case dialect.Bincode:
		return "[u8; 4]", 4
	default:
		return "[u8; 8]", 8
	}
}

func emitIxDataImpl(buf *rustfmt.Buffer, dataIdent, discmIdent, discmType string, discmLen int, argsIdent string, hasArgs bool) {
	buf.Linef("impl %s {", dataIdent)
	buf.Linef("pub fn deserialize(buf: &[u8]) -> std::io::Result<Self> {")
	buf.Linef("use std::io::Read;")
	buf.Linef("let mut reader = buf;")
	buf.Linef("let mut maybe_discm_buf = [0u8; %d];", discmLen)
	buf.Linef("reader.read_exact(&mut maybe_discm_buf)?;")
	if discmType == "u8" {
		buf.Linef("let maybe_discm = maybe_discm_buf[0];")
	} else {
		buf.Linef("let maybe_discm = maybe_discm_buf;")
	}
	buf.Linef("if maybe_discm != %s {", discmIdent)
	buf.Linef(`return Err(std::io::Error::new(std::io::ErrorKind::Other, format!("discm does not match. Expected: {:?}. Received: {:?}", %s, maybe_discm)));`, discmIdent)
	buf.Linef("}")
	if hasArgs {
		buf.Linef("Ok(Self(%s::deserialize(&mut reader)?))", argsIdent)
	} else {
		buf.Linef("Ok(Self)")
	}
	buf.Linef("}")
	buf.Blank()
	buf.Linef("pub fn serialize<W: std::io::Write>(&self, mut writer: W) -> std::io::Result<()> {")
	if discmType == "u8" {
		buf.Linef("writer.write_all(&[%s])?;", discmIdent)
	} else {
		buf.Linef("writer.write_all(&%s)?;", discmIdent)
	}
	if hasArgs {
		buf.Linef("self.0.serialize(&mut writer)")
	} else {
		buf.Linef("Ok(())")
	}
	buf.Linef("}")
	buf.Blank()
	buf.Linef("pub fn try_to_vec(&self) -> std::io::Result<Vec<u8>> {")
	buf.Linef("let mut data = Vec::new();")
	buf.Linef("self.serialize(&mut data)?;")
	buf.Linef("Ok(data)")
	buf.Linef("}")
	buf.Linef("}")
}

func emitIxFns(buf *rustfmt.Buffer, ixFnIdent, ixWithProgramIDFnIdent, keysIdent, argsIdent, dataIdent, accountsLenIdent string, hasAccounts, hasArgs bool) {
	params := ""
	args := ""
	if hasAccounts {
		params += fmt.Sprintf("keys: %s, ", keysIdent)
		args += "keys, "
	}
	if hasArgs {
		params += fmt.Sprintf("args: %s, ", argsIdent)
		args += "args, "
	}

	buf.Linef("pub fn %s(program_id: Pubkey, %s) -> std::io::Result<Instruction> {", ixWithProgramIDFnIdent, params)
	accountsExpr := "Vec::new()"
	if hasAccounts {
		buf.Linef("let metas: [AccountMeta; %s] = keys.into();", accountsLenIdent)
		accountsExpr = "Vec::from(metas)"
	}
	dataExpr := fmt.Sprintf("%s.try_to_vec()?", dataIdent)
	if hasArgs {
		buf.Linef("let data: %s = args.into();", dataIdent)
		dataExpr = "data.try_to_vec()?"
	}
	buf.Linef("Ok(Instruction {")
	buf.Linef("program_id,")
	buf.Linef("accounts: %s,", accountsExpr)
	buf.Linef("data: %s,", dataExpr)
	buf.Linef("})")
	buf.Linef("}")
	buf.Blank()

	buf.Linef("pub fn %s(%s) -> std::io::Result<Instruction> {", ixFnIdent, params)
	buf.Linef("%s(crate::ID, %s)", ixWithProgramIDFnIdent, args)
	buf.Linef("}")
}

func emitInvokeFns(buf *rustfmt.Buffer, invokeFnIdent, invokeSignedFnIdent, ixFnIdent, accountsIdent, keysIdent, argsIdent, accountsLenIdent string, hasAccounts, hasArgs bool) {
	paramsPrefix := ""
	if hasAccounts {
		paramsPrefix += fmt.Sprintf("accounts: %s<'_, '_>, ", accountsIdent)
	}
	if hasArgs {
		paramsPrefix += fmt.Sprintf("args: %s, ", argsIdent)
	}

	callAssign := func() {
		fnArgs := ""
		if hasAccounts {
			buf.Linef("let keys: %s = (&accounts).into();", keysIdent)
			fnArgs += "keys, "
		}
		if hasArgs {
			fnArgs += "args"
		}
		buf.Linef("let ix = %s(%s)?;", ixFnIdent, fnArgs)
	}

	buf.Linef("pub fn %s(%s) -> ProgramResult {", invokeFnIdent, paramsPrefix)
	callAssign()
	if hasAccounts {
		buf.Linef("let account_infos: [AccountInfo; %s] = accounts.into();", accountsLenIdent)
		buf.Linef("invoke(&ix, &account_infos)")
	} else {
		buf.Linef("invoke(&ix, &[])")
	}
	buf.Linef("}")
	buf.Blank()

	buf.Linef("pub fn %s(%sseeds: &[&[&[u8]]]) -> ProgramResult {", invokeSignedFnIdent, paramsPrefix)
	callAssign()
	if hasAccounts {
		buf.Linef("let account_infos: [AccountInfo; %s] = accounts.into();", accountsLenIdent)
		buf.Linef("invoke_signed(&ix, &account_infos, seeds)")
	} else {
		buf.Linef("invoke_signed(&ix, &[], seeds)")
	}
	buf.Linef("}")
}

func emitVerifyAccountKeysFn(buf *rustfmt.Buffer, fnIdent, accountsIdent, keysIdent string, unique []idlmodel.IxAccount) {
	buf.Linef("pub fn %s(", fnIdent)
	buf.Linef("accounts: %s<'_, '_>,", accountsIdent)
	buf.Linef("keys: %s,", keysIdent)
	buf.Linef(") -> Result<(), (Pubkey, Pubkey)> {")
	if len(unique) > 0 {
		buf.Linef("for (actual, expected) in [")
		for _, acc := range unique {
			buf.Linef("(accounts.%s.key, &keys.%s),", fieldIdent(acc.Name), fieldIdent(acc.Name))
		}
		buf.Linef("] {")
		buf.Linef("if actual != expected {")
		buf.Linef("return Err((*actual, *expected));")
		buf.Linef("}")
		buf.Linef("}")
	}
	buf.Linef("Ok(())")
	buf.Linef("}")
}

func emitVerifyPrivilegesFns(buf *rustfmt.Buffer, privilegesFnIdent, writableFnIdent, signerFnIdent, accountsIdent string, unique []idlmodel.IxAccount) {
	var writables, signers []idlmodel.IxAccount
	for _, a := range unique {
		if a.IsMut {
			writables = append(writables, a)
		}
		if a.IsSigner {
			signers = append(signers, a)
		}
	}

	if len(writables) > 0 {
		buf.Linef("pub fn %s<'me, 'info>(", writableFnIdent)
		buf.Linef("accounts: %s<'me, 'info>,", accountsIdent)
		buf.Linef(") -> Result<(), (&'me AccountInfo<'info>, ProgramError)> {")
		buf.Linef("for should_be_writable in [")
		for _, a := range writables {
			buf.Linef("accounts.%s,", fieldIdent(a.Name))
		}
		buf.Linef("] {")
		buf.Linef("if !should_be_writable.is_writable {")
		buf.Linef("return Err((should_be_writable, ProgramError::InvalidAccountData));")
		buf.Linef("}")
		buf.Linef("}")
		buf.Linef("Ok(())")
		buf.Linef("}")
		buf.Blank()
	}

	if len(signers) > 0 {
		buf.Linef("pub fn %s<'me, 'info>(", signerFnIdent)
		buf.Linef("accounts: %s<'me, 'info>,", accountsIdent)
		buf.Linef(") -> Result<(), (&'me AccountInfo<'info>, ProgramError)> {")
		buf.Linef("for should_be_signer in [")
		for _, a := range signers {
			buf.Linef("accounts.%s,", fieldIdent(a.Name))
		}
		buf.Linef("] {")
		buf.Linef("if !should_be_signer.is_signer {")
		buf.Linef("return Err((should_be_signer, ProgramError::MissingRequiredSignature));")
		buf.Linef("}")
		buf.Linef("}")
		buf.Linef("Ok(())")
		buf.Linef("}")
		buf.Blank()
	}

	buf.Linef("pub fn %s<'me, 'info>(", privilegesFnIdent)
	buf.Linef("accounts: %s<'me, 'info>,", accountsIdent)
	buf.Linef(") -> Result<(), (&'me AccountInfo<'info>, ProgramError)> {")
	if len(writables) > 0 {
		buf.Linef("%s(accounts)?;", writableFnIdent)
	}
	if len(signers) > 0 {
		buf.Linef("%s(accounts)?;", signerFnIdent)
	}
	buf.Linef("Ok(())")
	buf.Linef("}")
}
