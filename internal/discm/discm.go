// Package discm implements discriminator derivation: the
// dialect-specific rule that prefixes an account's or instruction's
// serialized bytes so a deserializer can tell wire-compatible types
// apart.
package discm

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/solores-go/solores/internal/casing"
)

// Account derives an Anchor account's 8-byte discriminator: the first 8
// bytes of sha256("account:" + PascalCase(name)). Grounded on the
// original tool's anchor/accounts/account.rs pre-image comment.
func Account(name string) [8]byte {
	return sha256Prefix8("account:" + casing.ToPascalCase(name))
}

// Instruction derives an Anchor instruction's 8-byte discriminator: the
// first 8 bytes of sha256("global:" + snake_case(name)), the Anchor
// wire-format convention for top-level instruction dispatch.
func Instruction(name string) [8]byte {
	return sha256Prefix8("global:" + casing.ToSnakeCase(name))
}

// Event derives an Anchor event's 8-byte discriminator: the first 8
// bytes of sha256("event:" + name), using the event's name EXACTLY as
// declared — unlike Account, the pre-image is never PascalCased.
// Grounded on the original tool's anchor/events/event.rs pre-image
// comment, which reads `self.0.name` directly rather than
// `name.to_pascal_case()`.
func Event(name string) [8]byte {
	return sha256Prefix8("event:" + name)
}

func sha256Prefix8(preimage string) [8]byte {
	sum := sha256.Sum256([]byte(preimage))
	var out [8]byte
	copy(out[:], sum[:8])
	return out
}

// Bincode derives an instruction's 4-byte little-endian discriminator
// from its zero-based declaration index in the IDL's instructions list —
// there is no hashing involved, just the ordinal encoded as a u32.
func Bincode(declarationIndex uint32) [4]byte {
	var out [4]byte
	binary.LittleEndian.PutUint32(out[:], declarationIndex)
	return out
}

// Shank passes the IDL's explicit single-byte discriminant through
// unchanged; Shank IDLs declare it directly rather than deriving it.
func Shank(value uint8) [1]byte {
	return [1]byte{value}
}
