package cli

import (
	"github.com/joonwoolee/subweave/internal/pipeline"
	"github.com/spf13/cobra"
)

var splitCmd = &cobra.Command{
	Use:   "split [dir]",
	Short: "Split SRT files into time and sentence streams",
	Long: `Split every .srt file in a folder into two numbered text streams:
one carrying the time ranges (txtWithTime/) and one carrying the
sentence text (txtWithSentence/). Entries in the two streams pair up
by position, so a translated sentence stream can later be merged back
against the untouched time stream.

Examples:
  subweave split ./episodes
  subweave split ./episodes --legacy-hour-shift`,
	Args: cobra.ExactArgs(1),
	RunE: runSplit,
}

func init() {
	rootCmd.AddCommand(splitCmd)

	splitCmd.Flags().
		Bool("legacy-hour-shift", false, "Subtract one hour from block 2 onward while splitting")
}

func runSplit(cmd *cobra.Command, args []string) error {
	legacyShift, _ := cmd.Flags().GetBool("legacy-hour-shift")

	p := pipeline.New(pipeline.Config{
		Dir:             args[0],
		LegacyHourShift: legacyShift,
	}, nil, logger)

	summary, err := p.SplitAll(cmd.Context())
	if err != nil {
		return err
	}

	logger.Infow("Split complete",
		"total", summary.Total,
		"succeeded", summary.Succeeded,
		"failed", summary.Failed,
	)
	return nil
}
