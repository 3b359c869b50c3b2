package idlmodel

// IxAccount is one entry of an instruction's declared accounts list.
// Two accounts sharing the same Name are aliases of one
// logical account; the original positional list remains the wire order
// for the transaction's AccountMeta array.
type IxAccount struct {
	Name     string
	IsMut    bool
	IsSigner bool
	Desc     string
}

// IsPrivileged reports whether this account requires a writable or
// signer privilege check to be emitted.
func (a IxAccount) IsPrivileged() bool {
	return a.IsMut || a.IsSigner
}

// Instruction models a named set of accounts, ordered args,
// and a discriminant (dialect-dependent: explicit for Shank, derived for
// Anchor, declaration-index for Bincode — see internal/discm).
type Instruction struct {
	Name     string
	Accounts []IxAccount
	Args     []Field

	// ShankDiscriminant is only meaningful for the Shank dialect, which
	// declares it explicitly in the IDL.
	ShankDiscriminant *uint8
}

// HasArgs reports whether this instruction has a non-empty argument
// payload.
func (ix Instruction) HasArgs() bool {
	return len(ix.Args) > 0
}

// HasAccounts reports whether this instruction references any accounts.
func (ix Instruction) HasAccounts() bool {
	return len(ix.Accounts) > 0
}

// ArgsContainPubkey/ArgsContainDefined report whether the instruction's
// IxArgs fields reference the public-key type or a defined type.
// ArgsContainDefined drives the instructions module's conditional
// `use crate::*;`; that module imports Pubkey unconditionally.
func (ix Instruction) ArgsContainPubkey() bool {
	for _, f := range ix.Args {
		if f.Type.ContainsPubkey() {
			return true
		}
	}
	return false
}

func (ix Instruction) ArgsContainDefined() bool {
	for _, f := range ix.Args {
		if f.Type.ContainsDefined() {
			return true
		}
	}
	return false
}
