package idlmodel

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// Program is the IDL's top-level metadata: name, version,
// and an optional base58 program address used to seed the generated
// crate's `declare_id!` constant.
type Program struct {
	Name    string
	Version string
	Address string // base58, may be empty
}

// ValidateAddress checks that Address, if present, decodes to a valid
// 32-byte Solana public key, using solana.PublicKeyFromBase58 instead of
// hand-rolling base58 + length checks. Returns the zero key and no error
// when Address is empty (unset program id).
func (p Program) ValidateAddress() (solana.PublicKey, error) {
	if p.Address == "" {
		return solana.PublicKey{}, nil
	}
	key, err := solana.PublicKeyFromBase58(p.Address)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("program metadata.address %q is not a valid base58 public key: %w", p.Address, err)
	}
	return key, nil
}

// InterfaceCrateName derives the default output crate name:
// "<program-name>_interface".
func (p Program) InterfaceCrateName() string {
	return p.Name + "_interface"
}
