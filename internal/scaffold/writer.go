package scaffold

import (
	"os"
	"path/filepath"

	"github.com/solores-go/solores/internal/codegen"
	"github.com/solores-go/solores/internal/dialect"
	"github.com/solores-go/solores/internal/genconfig"
)

// Write lays out the generated crate on disk: .gitignore, Cargo.toml,
// src/lib.rs, and one src/<section>.rs per populated module. Grounded on
// main.rs's create_dir_all(output_dir/src/) + sequential
// write_gitignore/write_cargotoml/write_lib/write_accounts/write_typedefs
// calls, generalized from that fixed five-call sequence to the
// orchestrator's variable module list.
//
// On any write failure, the partial output directory is removed unless
// opts.KeepPartialArtifacts is set, the same debugging escape hatch the original CLI flag names.
func Write(opts genconfig.Options, ast *dialect.AST, out codegen.Output) (outputDir string, err error) {
	outputDir = opts.ResolveOutputDir(ast.Program.Name)

	if err = opts.Validate(); err != nil {
		return outputDir, err
	}

	srcDir := filepath.Join(outputDir, "src")

	if mkErr := os.MkdirAll(srcDir, 0o755); mkErr != nil {
		return outputDir, mkErr
	}

	defer func() {
		if err != nil && !opts.KeepPartialArtifacts {
			_ = os.RemoveAll(outputDir)
		}
	}()

	if err = os.WriteFile(filepath.Join(outputDir, ".gitignore"), []byte(Gitignore()), 0o644); err != nil {
		return outputDir, err
	}

	manifest, err := CargoToml(opts, ast.Dialect, ast.Program.Name, ast.Program.Version, len(ast.Errors) > 0)
	if err != nil {
		return outputDir, err
	}
	if err = os.WriteFile(filepath.Join(outputDir, "Cargo.toml"), []byte(manifest), 0o644); err != nil {
		return outputDir, err
	}

	if err = os.WriteFile(filepath.Join(srcDir, "lib.rs"), []byte(out.LibRS), 0o644); err != nil {
		return outputDir, err
	}

	for _, m := range out.Modules {
		path := filepath.Join(outputDir, codegen.ModuleFileName(m))
		opts.Logger.Debug().Str("module", m.Name).Str("path", path).Msg("writing generated module")
		if err = os.WriteFile(path, []byte(m.Source), 0o644); err != nil {
			return outputDir, err
		}
	}

	return outputDir, nil
}
