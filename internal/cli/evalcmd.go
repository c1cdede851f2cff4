package cli

import (
	"github.com/spf13/cobra"

	"github.com/oboegaki/receiptext/internal/extraction/eval"
)

func newEvalCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "eval",
		Short: "Score the engine against the built-in ground-truth fixtures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ex, err := opts.newExtractor()
			if err != nil {
				return err
			}
			summary := eval.Run(ex, eval.Fixtures())
			summary.WriteReport(cmd.OutOrStdout())
			return nil
		},
	}
}
