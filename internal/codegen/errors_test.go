package codegen_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solores-go/solores/internal/codegen"
	"github.com/solores-go/solores/internal/idlmodel"
)

func TestEmitErrors(t *testing.T) {
	m := codegen.EmitErrors("example", []idlmodel.ErrorVariant{
		{Code: 6000, Name: "Unauthorized", Msg: "not authorized"},
		{Code: 6001, Name: "Unauthorized2", Msg: "not authorized"},
		{Code: 6002, Name: "NoMessage"},
	})
	require.Contains(t, m.Source, "pub enum ExampleError {")
	require.Contains(t, m.Source, `#[error("not authorized")]`)
	require.Contains(t, m.Source, "Unauthorized = 6000u32,")
	require.Contains(t, m.Source, "Unauthorized2 = 6001u32,")
	require.Contains(t, m.Source, `#[error("NoMessage")]`)
	require.Contains(t, m.Source, "NoMessage = 6002u32,")
	require.Contains(t, m.Source, "impl From<ExampleError> for ProgramError {")
	require.Contains(t, m.Source, "num_derive::FromPrimitive")
}

func TestEmitErrorsEmpty(t *testing.T) {
	m := codegen.EmitErrors("example", nil)
	require.Equal(t, "", m.Source)
}
