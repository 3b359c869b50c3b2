package codegen_test

import (
	"testing"

	bin "github.com/gagliardetto/binary"
	"github.com/stretchr/testify/require"

	"github.com/solores-go/solores/internal/discm"
)

// vaultLayout mirrors the field order EmitTypedefs would produce for a
// struct typedef with fields [owner: publicKey, amount: u64] — used as a
// Borsh roundtrip oracle (there is no Rust toolchain here to compile the
// generated crate against) to confirm that declaration order is
// preserved byte-for-byte through serialization, the same invariant the
// emitted Rust struct relies on.
type vaultLayout struct {
	Owner  [32]byte
	Amount uint64
}

func TestBorshFieldOrderRoundtrips(t *testing.T) {
	original := vaultLayout{Amount: 42}
	for i := range original.Owner {
		original.Owner[i] = byte(i)
	}

	buf := []byte{}
	enc := bin.NewBorshEncoder(writerTo(&buf))
	require.NoError(t, enc.Encode(original))

	var decoded vaultLayout
	dec := bin.NewBorshDecoder(buf)
	require.NoError(t, dec.Decode(&decoded))

	require.Equal(t, original, decoded)
}

// TestAccountDiscriminatorPrefixesStructBytes confirms the layout an
// Anchor account wrapper's serialize() produces: 8 discriminator bytes
// followed immediately by the struct's own Borsh encoding, with no
// padding or length prefix in between.
func TestAccountDiscriminatorPrefixesStructBytes(t *testing.T) {
	original := vaultLayout{Amount: 7}

	buf := []byte{}
	enc := bin.NewBorshEncoder(writerTo(&buf))
	require.NoError(t, enc.Encode(original))

	discmBytes := discm.Account("Vault")
	wire := append(append([]byte{}, discmBytes[:]...), buf...)

	require.Len(t, wire, 8+len(buf))
	require.Equal(t, discmBytes[:], wire[:8])

	var decoded vaultLayout
	dec := bin.NewBorshDecoder(wire[8:])
	require.NoError(t, dec.Decode(&decoded))
	require.Equal(t, original, decoded)
}

type byteSliceWriter struct {
	buf *[]byte
}

func (w byteSliceWriter) Write(p []byte) (int, error) {
	*w.buf = append(*w.buf, p...)
	return len(p), nil
}

func writerTo(buf *[]byte) byteSliceWriter {
	return byteSliceWriter{buf: buf}
}
