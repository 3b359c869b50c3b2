// Package scaffold emits the non-source files a generated crate needs
// (Cargo.toml, .gitignore) and writes the whole output tree to disk.
package scaffold

import (
	"bytes"

	"github.com/BurntSushi/toml"

	"github.com/solores-go/solores/internal/dialect"
	"github.com/solores-go/solores/internal/genconfig"
)

type cargoToml struct {
	Package      cargoPackage      `toml:"package"`
	Dependencies cargoDependencies `toml:"dependencies"`
}

type cargoPackage struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
	Edition string `toml:"edition"`
}

// cargoDependencies carries every domain dependency a generated crate
// might need; dialect and error-presence gate which fields actually
// serialize. A zero-value DependencyVers is omitted.
type cargoDependencies struct {
	Borsh         DependencyVers `toml:"borsh,omitempty"`
	Bytemuck      *FeaturesDependency `toml:"bytemuck,omitempty"`
	SolanaProgram DependencyVers `toml:"solana-program,omitempty"`
	Serde         *OptionalDependency `toml:"serde,omitempty"`
	Thiserror     DependencyVers `toml:"thiserror,omitempty"`
	NumDerive     DependencyVers `toml:"num-derive,omitempty"`
	NumTraits     DependencyVers `toml:"num-traits,omitempty"`
}

// DependencyVers is a bare `"^1.9"`-style version requirement string.
type DependencyVers string

// FeaturesDependency renders `{ version = "...", features = [...] }`,
// grounded on the original tool's bytemuck dependency shape (anchor
// struct typedefs derive bytemuck traits for zero-copy account access).
type FeaturesDependency struct {
	Version  string   `toml:"version"`
	Features []string `toml:"features"`
}

// OptionalDependency renders `{ version = "...", optional = true }`,
// used for the crate's "serde" cfg-gated feature.
type OptionalDependency struct {
	Version  string `toml:"version"`
	Optional bool   `toml:"optional"`
}

// CargoToml renders the output crate's manifest. Grounded on
// write_cargotoml.rs's CargoToml/GeneratedCrateDependencies shape,
// extended with the error-only dependencies (thiserror, num-derive,
// num-traits), added only when the IDL has errors, and with bytemuck
// (Anchor/Shank) and an optional serde (every dialect).
func CargoToml(opts genconfig.Options, d dialect.Dialect, programName, programVersion string, hasErrors bool) (string, error) {
	crateName := opts.ResolveCrateName(programName)
	if programVersion == "" {
		programVersion = "0.1.0"
	}

	deps := cargoDependencies{
		SolanaProgram: DependencyVers(opts.SolanaProgramVers),
	}

	if d != dialect.Bincode {
		deps.Borsh = DependencyVers(opts.BorshVers)
		deps.Bytemuck = &FeaturesDependency{Version: opts.BorshVers, Features: []string{"derive"}}
		deps.Serde = &OptionalDependency{Version: opts.SerdeVers, Optional: true}
	} else {
		deps.Serde = &OptionalDependency{Version: opts.SerdeVers, Optional: true}
	}

	if hasErrors {
		deps.Thiserror = DependencyVers(opts.ThiserrorVers)
		deps.NumDerive = DependencyVers(opts.NumDeriveVers)
		deps.NumTraits = DependencyVers(opts.NumTraitsVers)
	}

	manifest := cargoToml{
		Package: cargoPackage{
			Name:    crateName,
			Version: programVersion,
			Edition: "2021",
		},
		Dependencies: deps,
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(manifest); err != nil {
		return "", err
	}
	return buf.String(), nil
}
