// Command solores turns a Solana program IDL (Anchor, Shank, or Bincode
// dialect) into a standalone Rust client crate: typedefs, accounts,
// instructions, events, and errors, wired with Borsh/bincode
// (de)serialization and CPI helpers.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/solores-go/solores/internal/codegen"
	"github.com/solores-go/solores/internal/dialect"
	"github.com/solores-go/solores/internal/genconfig"
	"github.com/solores-go/solores/internal/generrors"
	"github.com/solores-go/solores/internal/scaffold"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := genconfig.DefaultOptions()
	var logLevel string

	root := &cobra.Command{
		Use:   "solores idl_path",
		Short: "Generate a Rust client crate from a Solana program IDL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Logger = zerolog.New(cmd.ErrOrStderr()).Level(parseLogLevel(logLevel)).With().Timestamp().Logger()
			return run(cmd, args[0], opts)
		},
	}

	root.Flags().StringVarP(&opts.OutputDir, "output-dir", "o", opts.OutputDir, "directory to output generated crate to")
	root.Flags().BoolVarP(&opts.KeepPartialArtifacts, "keep-partial-artifacts", "k", false, "keep partially built output instead of deleting everything on error")
	root.Flags().StringVarP(&opts.SolanaProgramVers, "solana-program-vers", "s", opts.SolanaProgramVers, "solana-program dependency version for generated crate")
	root.Flags().StringVarP(&opts.BorshVers, "borsh-vers", "b", opts.BorshVers, "borsh dependency version for generated crate")
	root.Flags().StringVar(&opts.SerdeVers, "serde-vers", opts.SerdeVers, "serde dependency version for generated crate")
	root.Flags().StringVar(&opts.ThiserrorVers, "thiserror-vers", opts.ThiserrorVers, "thiserror dependency version for generated crate")
	root.Flags().StringVar(&opts.NumDeriveVers, "num-derive-vers", opts.NumDeriveVers, "num-derive dependency version for generated crate")
	root.Flags().StringVar(&opts.NumTraitsVers, "num-traits-vers", opts.NumTraitsVers, "num-traits dependency version for generated crate")
	root.Flags().StringVar(&opts.OutputCrateName, "output-crate-name", opts.OutputCrateName, "output crate name")
	root.Flags().StringVar(&logLevel, "log-level", "info", "log level (debug|info|warn|error)")

	return root
}

func run(cmd *cobra.Command, idlPath string, opts genconfig.Options) error {
	if idlPath == "" {
		return generrors.NewInputError("read idl path", generrors.ErrEmptyIDLPath)
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	data, err := os.ReadFile(idlPath)
	if err != nil {
		return generrors.NewInputError("open idl file", err)
	}

	ast, err := dialect.Parse(data)
	if err != nil {
		return generrors.NewInputError("parse idl", err)
	}
	if ast.Program.Name == "" {
		return generrors.NewInputError("read program name", generrors.ErrNoProgramName)
	}
	if _, err := ast.Program.ValidateAddress(); err != nil {
		return generrors.NewInputError("validate program address", err)
	}

	opts.Logger.Info().
		Str("program", ast.Program.Name).
		Str("dialect", ast.Dialect.String()).
		Int("accounts", len(ast.Accounts)).
		Int("instructions", len(ast.Instructions)).
		Int("types", len(ast.Types)).
		Int("events", len(ast.Events)).
		Int("errors", len(ast.Errors)).
		Msg("parsed idl")

	for _, ix := range ast.Instructions {
		seen := make(map[string]bool, len(ix.Accounts))
		for _, acc := range ix.Accounts {
			if seen[acc.Name] {
				opts.Logger.Warn().Str("instruction", ix.Name).Str("account", acc.Name).Msg("duplicate account name in instruction")
			}
			seen[acc.Name] = true
		}
	}

	out, err := codegen.Generate(ast)
	if err != nil {
		return generrors.NewSemanticError(ast.Program.Name, err)
	}

	outputDir, err := scaffold.Write(opts, ast, out)
	if err != nil {
		return fmt.Errorf("write generated crate: %w", err)
	}

	opts.Logger.Info().Str("output_dir", outputDir).Msg("wrote generated crate")
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", outputDir)
	return nil
}

func parseLogLevel(lvl string) zerolog.Level {
	switch strings.ToLower(lvl) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
