package dialect_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solores-go/solores/internal/dialect"
	"github.com/solores-go/solores/internal/idlmodel"
)

const anchorIdl = `{
	"name": "example",
	"version": "0.1.0",
	"metadata": {"address": "11111111111111111111111111111111"},
	"accounts": [
		{"name": "Vault", "type": {"kind": "struct", "fields": [
			{"name": "owner", "type": "publicKey"},
			{"name": "amount", "type": "u64"}
		]}}
	],
	"types": [
		{"name": "Side", "type": {"kind": "enum", "variants": [
			{"name": "Buy"},
			{"name": "Sell"}
		]}}
	],
	"instructions": [
		{"name": "createVault", "accounts": [
			{"name": "vault", "isMut": true, "isSigner": false},
			{"name": "owner", "isMut": false, "isSigner": true}
		], "args": [
			{"name": "amount", "type": "u64"}
		]}
	],
	"errors": [
		{"code": 6000, "name": "Unauthorized", "msg": "not authorized"}
	],
	"events": [
		{"name": "VaultCreated", "fields": [
			{"name": "vault", "type": "publicKey"}
		]}
	]
}`

func TestParseAnchor(t *testing.T) {
	ast, err := dialect.Parse([]byte(anchorIdl))
	require.NoError(t, err)
	require.Equal(t, dialect.Anchor, ast.Dialect)
	require.Equal(t, "example", ast.Program.Name)
	require.Equal(t, "11111111111111111111111111111111", ast.Program.Address)
	require.Len(t, ast.Accounts, 1)
	require.Equal(t, "Vault", ast.Accounts[0].Typedef.Name)
	require.Len(t, ast.Types, 1)
	require.Equal(t, idlmodel.TypedefKindEnum, ast.Types[0].Kind)
	require.Len(t, ast.Types[0].Variants, 2)
	require.Equal(t, idlmodel.VariantFieldsNone, ast.Types[0].Variants[0].FieldsKind)
	require.Len(t, ast.Instructions, 1)
	require.Equal(t, "createVault", ast.Instructions[0].Name)
	require.Nil(t, ast.Instructions[0].ShankDiscriminant)
	require.Len(t, ast.Errors, 1)
	require.Len(t, ast.Events, 1)
}

const shankIdl = `{
	"name": "example_shank",
	"version": "0.1.0",
	"metadata": {"address": "11111111111111111111111111111111", "origin": "shank"},
	"accounts": [
		{"name": "Counter", "type": {"kind": "struct", "fields": [
			{"name": "count", "type": "u64"}
		]}}
	],
	"instructions": [
		{"name": "increment", "discriminant": {"type": "u8", "value": 0}, "accounts": [
			{"name": "counter", "isMut": true, "isSigner": false}
		], "args": []}
	]
}`

func TestParseShank(t *testing.T) {
	ast, err := dialect.Parse([]byte(shankIdl))
	require.NoError(t, err)
	require.Equal(t, dialect.Shank, ast.Dialect)
	require.Len(t, ast.Accounts, 1)
	require.Len(t, ast.Instructions, 1)
	require.NotNil(t, ast.Instructions[0].ShankDiscriminant)
	require.Equal(t, uint8(0), *ast.Instructions[0].ShankDiscriminant)
	require.Empty(t, ast.Events)
}

const bincodeIdl = `{
	"name": "example_bincode",
	"version": "0.1.0",
	"metadata": {"address": "11111111111111111111111111111111", "origin": "bincode"},
	"instructions": [
		{"name": "initialize", "accounts": [], "args": []},
		{"name": "transfer", "accounts": [], "args": [
			{"name": "amount", "type": "u64"}
		]}
	]
}`

func TestParseBincode(t *testing.T) {
	ast, err := dialect.Parse([]byte(bincodeIdl))
	require.NoError(t, err)
	require.Equal(t, dialect.Bincode, ast.Dialect)
	require.Empty(t, ast.Accounts)
	require.Empty(t, ast.Types)
	require.Len(t, ast.Instructions, 2)
	require.Equal(t, "transfer", ast.Instructions[1].Name)
}

func TestParseEnumVariantTupleFields(t *testing.T) {
	idl := `{
		"name": "tuple_enum",
		"version": "0.1.0",
		"types": [
			{"name": "Either", "type": {"kind": "enum", "variants": [
				{"name": "Left", "fields": ["u64"]},
				{"name": "Right", "fields": [{"defined": "Side"}]}
			]}}
		]
	}`
	ast, err := dialect.Parse([]byte(idl))
	require.NoError(t, err)
	require.Len(t, ast.Types, 1)
	variants := ast.Types[0].Variants
	require.Equal(t, idlmodel.VariantFieldsTuple, variants[0].FieldsKind)
	require.Len(t, variants[0].TupleFields, 1)
	require.Equal(t, idlmodel.VariantFieldsTuple, variants[1].FieldsKind)
	require.Equal(t, idlmodel.KindDefined, variants[1].TupleFields[0].Kind)
}

func TestParseUnknownTypedefKindErrors(t *testing.T) {
	idl := `{
		"name": "bad",
		"version": "0.1.0",
		"types": [{"name": "Bad", "type": {"kind": "union"}}]
	}`
	_, err := dialect.Parse([]byte(idl))
	require.Error(t, err)
}
