package codegen_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solores-go/solores/internal/codegen"
	"github.com/solores-go/solores/internal/dialect"
	"github.com/solores-go/solores/internal/idlmodel"
)

func transferIx(shankDiscm *uint8) idlmodel.Instruction {
	return idlmodel.Instruction{
		Name: "transfer",
		Accounts: []idlmodel.IxAccount{
			{Name: "from", IsMut: true, IsSigner: true},
			{Name: "to", IsMut: true, IsSigner: false},
		},
		Args: []idlmodel.Field{
			{Name: "amount", Type: idlmodel.TypeRef{Kind: idlmodel.KindPrimitive, Primitive: "u64"}},
		},
		ShankDiscriminant: shankDiscm,
	}
}

func TestEmitInstructionsAnchorDiscm8Bytes(t *testing.T) {
	m := codegen.EmitInstructions(dialect.Anchor, "example", []idlmodel.Instruction{transferIx(nil)})
	require.Contains(t, m.Source, "pub const TRANSFER_IX_DISCM: [u8; 8] =")
	require.Contains(t, m.Source, "pub struct TransferAccounts<'me, 'info> {")
	require.Contains(t, m.Source, "pub struct TransferKeys {")
	require.Contains(t, m.Source, "pub struct TransferIxArgs {")
	require.Contains(t, m.Source, "pub amount: u64,")
	require.Contains(t, m.Source, "pub fn transfer_ix_with_program_id(program_id: Pubkey,")
	require.Contains(t, m.Source, "pub fn transfer_invoke(")
	require.Contains(t, m.Source, "pub fn transfer_invoke_signed(")
	require.Contains(t, m.Source, "pub fn transfer_verify_account_keys(")
	require.Contains(t, m.Source, "pub fn transfer_verify_writable_privileges")
	require.Contains(t, m.Source, "pub fn transfer_verify_signer_privileges")
	require.Contains(t, m.Source, "pub enum ExampleProgramIx {")
	require.Contains(t, m.Source, "Transfer(TransferIxArgs),")
	require.Contains(t, m.Source, "impl ExampleProgramIx {")
	require.Contains(t, m.Source, "TRANSFER_IX_DISCM => Ok(Self::Transfer(TransferIxArgs::deserialize(&mut reader)?)),")
	require.Contains(t, m.Source, `_ => Err(std::io::Error::new(std::io::ErrorKind::Other, format!("discm {:?} not found", maybe_discm))),`)
}

func TestEmitInstructionsShankDiscm1Byte(t *testing.T) {
	v := uint8(5)
	m := codegen.EmitInstructions(dialect.Shank, "example", []idlmodel.Instruction{transferIx(&v)})
	require.Contains(t, m.Source, "pub const TRANSFER_IX_DISCM: u8 = 5;")
	require.Contains(t, m.Source, "Self::Transfer(args) => {")
	require.Contains(t, m.Source, "writer.write_all(&[TRANSFER_IX_DISCM])?;")
}

func TestEmitInstructionsBincodeDiscmIsDeclarationIndex(t *testing.T) {
	m := codegen.EmitInstructions(dialect.Bincode, "example", []idlmodel.Instruction{
		{Name: "initialize"},
		transferIx(nil),
	})
	require.Contains(t, m.Source, "pub const INITIALIZE_IX_DISCM: [u8; 4] = [0, 0, 0, 0];")
	require.Contains(t, m.Source, "pub const TRANSFER_IX_DISCM: [u8; 4] = [1, 0, 0, 0];")
	require.Contains(t, m.Source, "Initialize,")
	require.Contains(t, m.Source, "Self::Initialize => writer.write_all(&INITIALIZE_IX_DISCM),")
}

func TestEmitInstructionsNoAccountsSkipsAccountStructsAndVerifyFns(t *testing.T) {
	m := codegen.EmitInstructions(dialect.Anchor, "example", []idlmodel.Instruction{
		{Name: "ping"},
	})
	require.NotContains(t, m.Source, "PingAccounts")
	require.NotContains(t, m.Source, "ping_verify_account_keys")
	require.Contains(t, m.Source, "pub struct PingIxData;")
	require.Contains(t, m.Source, "pub enum ExampleProgramIx {")
	require.Contains(t, m.Source, "Ping,")
}
