package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/oboegaki/receiptext/internal/transcript"
)

// extractOutput is one line of extract/batch JSON output.
type extractOutput struct {
	Source string `json:"source"`
	Date   string `json:"date"`
	Amount *int64 `json:"amount,omitempty"`
	Notes  string `json:"notes,omitempty"`
	Error  string `json:"error,omitempty"`
}

func newExtractCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "extract FILE...",
		Short: "Extract fields from one or more transcripts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ex, err := opts.newExtractor()
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			failures := 0
			for _, path := range args {
				out := extractOutput{Source: path}

				tr, err := transcript.Load(path)
				if err != nil {
					slog.Error("load transcript", "path", path, "err", err)
					out.Error = err.Error()
					failures++
				} else {
					res := ex.Extract(tr.Text)
					out.Date = res.Date
					out.Amount = res.Amount
					out.Notes = res.Notes
					slog.Debug("extracted", "path", path, "date", res.Date)
				}

				if err := enc.Encode(out); err != nil {
					return err
				}
			}

			if failures == len(args) {
				return fmt.Errorf("all %d transcripts failed to load", failures)
			}
			return nil
		},
	}
}
