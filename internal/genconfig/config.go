// Package genconfig aggregates the codegen pipeline's runtime settings —
// output location, dependency version requirements — into one struct,
// one constructor of production-safe defaults, validated before use.
package genconfig

import (
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/rs/zerolog"

	"github.com/solores-go/solores/internal/generrors"
)

// DefaultOutputCrateName is the sentinel the CLI replaces with
// "<program-name>_interface" once the program's name is known, mirroring
// the original tool's DEFAULT_OUTPUT_CRATE_NAME.
const DefaultOutputCrateName = "<name-of-program>_interface"

// Options aggregates the generated crate's output location and its
// dependency version requirements.
type Options struct {
	OutputDir            string
	OutputCrateName      string
	KeepPartialArtifacts bool

	SolanaProgramVers string
	BorshVers         string
	SerdeVers         string
	ThiserrorVers     string
	NumDeriveVers     string
	NumTraitsVers     string

	Logger zerolog.Logger
}

// DefaultOptions mirrors the original tool's CLI flag defaults.
func DefaultOptions() Options {
	return Options{
		OutputDir:            "./",
		OutputCrateName:      DefaultOutputCrateName,
		KeepPartialArtifacts: false,
		SolanaProgramVers:    "^1.9",
		BorshVers:            "^0.9",
		SerdeVers:            "^1",
		ThiserrorVers:        "^1",
		NumDeriveVers:        "^0.4",
		NumTraitsVers:        "^0.2",
		Logger:               zerolog.Nop(),
	}
}

// Validate checks every dependency version string is a well-formed
// semver requirement, reusing
// Masterminds/semver instead of hand-rolling a parser.
func (o Options) Validate() error {
	for _, v := range []struct {
		name  string
		value string
	}{
		{"solana-program", o.SolanaProgramVers},
		{"borsh", o.BorshVers},
		{"serde", o.SerdeVers},
		{"thiserror", o.ThiserrorVers},
		{"num-derive", o.NumDeriveVers},
		{"num-traits", o.NumTraitsVers},
	} {
		if _, err := semver.NewConstraint(v.value); err != nil {
			return generrors.NewInputError(
				"validate "+v.name+" version requirement",
				generrors.ErrInvalidSemver,
			)
		}
	}
	if o.OutputDir == "" {
		return generrors.NewInputError("validate output dir", generrors.ErrEmptyOutputDir)
	}
	return nil
}

// ResolveCrateName substitutes DefaultOutputCrateName with
// "<programName>_interface" once the IDL's program name is known, the
// same deferred substitution as the original tool's main().
func (o Options) ResolveCrateName(programName string) string {
	if o.OutputCrateName == DefaultOutputCrateName {
		return programName + "_interface"
	}
	return o.OutputCrateName
}

// ResolveOutputDir joins OutputDir with the resolved crate name, the
// directory generated source actually gets written under.
func (o Options) ResolveOutputDir(programName string) string {
	return filepath.Join(o.OutputDir, o.ResolveCrateName(programName))
}
