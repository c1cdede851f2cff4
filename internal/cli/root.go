// Package cli wires the extraction engine into the receiptext command.
// All observability lives out here: the engine itself stays log-free.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/oboegaki/receiptext/internal/config"
	"github.com/oboegaki/receiptext/internal/extraction"
)

type rootOptions struct {
	configPath string
	verbose    bool
}

// NewRootCmd builds the receiptext command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "receiptext",
		Short:        "Extract bookkeeping fields from OCR receipt transcripts",
		Long:         "receiptext reads raw OCR transcripts of purchase receipts and extracts a transaction date, total amount and merchant note.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if opts.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a TOML config file")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newExtractCmd(opts))
	cmd.AddCommand(newBatchCmd(opts))
	cmd.AddCommand(newEvalCmd(opts))

	return cmd
}

// Execute runs the CLI.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newExtractor builds an engine from the configured options.
func (o *rootOptions) newExtractor() (*extraction.Extractor, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	return extraction.New(cfg), nil
}
