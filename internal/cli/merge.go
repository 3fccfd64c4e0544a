package cli

import (
	"github.com/joonwoolee/subweave/internal/pipeline"
	"github.com/spf13/cobra"
)

var mergeCmd = &cobra.Command{
	Use:   "merge [dir]",
	Short: "Merge time and sentence streams back into SRT files",
	Long: `Merge each time/sentence stream pair produced by split back into a
renumbered SRT file under updatedSrt/. Sentence entries that span
multiple lines are given proportional slices of the original time
range, weighted by character count.

Examples:
  subweave merge ./episodes`,
	Args: cobra.ExactArgs(1),
	RunE: runMerge,
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	p := pipeline.New(pipeline.Config{Dir: args[0]}, nil, logger)

	summary, err := p.MergeAll(cmd.Context())
	if err != nil {
		return err
	}

	logger.Infow("Merge complete",
		"total", summary.Total,
		"succeeded", summary.Succeeded,
		"failed", summary.Failed,
	)
	return nil
}
