package scaffold_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solores-go/solores/internal/dialect"
	"github.com/solores-go/solores/internal/genconfig"
	"github.com/solores-go/solores/internal/scaffold"
)

func TestCargoTomlAnchorIncludesBorshAndBytemuck(t *testing.T) {
	opts := genconfig.DefaultOptions()
	manifest, err := scaffold.CargoToml(opts, dialect.Anchor, "pump", "0.1.0", false)
	require.NoError(t, err)
	require.Contains(t, manifest, `name = "pump_interface"`)
	require.Contains(t, manifest, `version = "0.1.0"`)
	require.Contains(t, manifest, `borsh = "^0.9"`)
	require.Contains(t, manifest, "[dependencies.bytemuck]")
	require.Contains(t, manifest, `solana-program = "^1.9"`)
	require.NotContains(t, manifest, "thiserror")
}

func TestCargoTomlBincodeOmitsBorsh(t *testing.T) {
	opts := genconfig.DefaultOptions()
	manifest, err := scaffold.CargoToml(opts, dialect.Bincode, "router", "2.0.0", false)
	require.NoError(t, err)
	require.NotContains(t, manifest, "borsh =")
	require.NotContains(t, manifest, "[dependencies.bytemuck]")
	require.Contains(t, manifest, "[dependencies.serde]")
}

func TestCargoTomlWithErrorsAddsThiserrorStack(t *testing.T) {
	opts := genconfig.DefaultOptions()
	manifest, err := scaffold.CargoToml(opts, dialect.Shank, "vault", "1.3.0", true)
	require.NoError(t, err)
	require.Contains(t, manifest, `thiserror = "^1"`)
	require.Contains(t, manifest, `num-derive = "^0.4"`)
	require.Contains(t, manifest, `num-traits = "^0.2"`)
}

func TestCargoTomlRespectsExplicitCrateName(t *testing.T) {
	opts := genconfig.DefaultOptions()
	opts.OutputCrateName = "my_custom_crate"
	manifest, err := scaffold.CargoToml(opts, dialect.Anchor, "pump", "0.1.0", false)
	require.NoError(t, err)
	require.Contains(t, manifest, `name = "my_custom_crate"`)
}

func TestCargoTomlDefaultsVersionWhenProgramVersionEmpty(t *testing.T) {
	opts := genconfig.DefaultOptions()
	manifest, err := scaffold.CargoToml(opts, dialect.Anchor, "pump", "", false)
	require.NoError(t, err)
	require.Contains(t, manifest, `version = "0.1.0"`)
}
