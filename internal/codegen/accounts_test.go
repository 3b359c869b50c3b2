package codegen_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solores-go/solores/internal/codegen"
	"github.com/solores-go/solores/internal/dialect"
	"github.com/solores-go/solores/internal/discm"
	"github.com/solores-go/solores/internal/idlmodel"
)

func vaultTypedef() idlmodel.Typedef {
	return idlmodel.Typedef{
		Name: "Vault",
		Kind: idlmodel.TypedefKindStruct,
		Fields: []idlmodel.Field{
			{Name: "amount", Type: idlmodel.TypeRef{Kind: idlmodel.KindPrimitive, Primitive: "u64"}},
		},
	}
}

func TestEmitAccountsAnchorWrapsWithDiscriminator(t *testing.T) {
	m := codegen.EmitAccounts(dialect.Anchor, []idlmodel.Account{{Typedef: vaultTypedef()}})
	require.Contains(t, m.Source, "pub struct VaultAccount(pub Vault);")
	require.Contains(t, m.Source, "VAULT_ACCOUNT_DISCM")

	want := discm.Account("Vault")
	require.Contains(t, m.Source, arrayLiteralForTest(want[:]))
}

func TestEmitAccountsShankHasNoDiscriminator(t *testing.T) {
	m := codegen.EmitAccounts(dialect.Shank, []idlmodel.Account{{Typedef: vaultTypedef()}})
	require.Contains(t, m.Source, "pub struct Vault {")
	require.NotContains(t, m.Source, "ACCOUNT_DISCM")
	require.NotContains(t, m.Source, "VaultAccount")
}

func arrayLiteralForTest(b []byte) string {
	s := "["
	for i, v := range b {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%d", v)
	}
	return s + "]"
}
