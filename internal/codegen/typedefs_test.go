package codegen_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solores-go/solores/internal/codegen"
	"github.com/solores-go/solores/internal/idlmodel"
)

func TestEmitTypedefsStruct(t *testing.T) {
	m := codegen.EmitTypedefs([]idlmodel.Typedef{
		{
			Name: "Vault",
			Kind: idlmodel.TypedefKindStruct,
			Fields: []idlmodel.Field{
				{Name: "owner", Type: idlmodel.TypeRef{Kind: idlmodel.KindPrimitive, Primitive: "publicKey"}},
				{Name: "amount", Type: idlmodel.TypeRef{Kind: idlmodel.KindPrimitive, Primitive: "u64"}},
			},
		},
	})
	require.Equal(t, "typedefs", m.Name)
	require.Contains(t, m.Source, "pub struct Vault {")
	require.Contains(t, m.Source, "pub owner: Pubkey,")
	require.Contains(t, m.Source, "pub amount: u64,")
	require.Contains(t, m.Source, "BorshDeserialize, BorshSerialize")
	require.Contains(t, m.Source, "use solana_program::pubkey::Pubkey;")
}

func TestEmitTypedefsEnumVariantShapes(t *testing.T) {
	m := codegen.EmitTypedefs([]idlmodel.Typedef{
		{
			Name: "Side",
			Kind: idlmodel.TypedefKindEnum,
			Variants: []idlmodel.Variant{
				{Name: "Buy", FieldsKind: idlmodel.VariantFieldsNone},
				{
					Name:       "Limit",
					FieldsKind: idlmodel.VariantFieldsStruct,
					NamedFields: []idlmodel.Field{
						{Name: "price", Type: idlmodel.TypeRef{Kind: idlmodel.KindPrimitive, Primitive: "u64"}},
					},
				},
				{
					Name:       "Tagged",
					FieldsKind: idlmodel.VariantFieldsTuple,
					TupleFields: []idlmodel.TypeRef{
						{Kind: idlmodel.KindPrimitive, Primitive: "u8"},
					},
				},
			},
		},
	})
	require.Contains(t, m.Source, "pub enum Side {")
	require.Contains(t, m.Source, "Buy,")
	require.Contains(t, m.Source, "Limit {")
	require.Contains(t, m.Source, "price: u64,")
	require.Contains(t, m.Source, "Tagged(u8),")
}

func TestEmitTypedefsEmpty(t *testing.T) {
	m := codegen.EmitTypedefs(nil)
	require.Equal(t, "", m.Source)
}
