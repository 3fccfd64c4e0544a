package cli

import (
	"fmt"

	"github.com/joonwoolee/subweave/internal/pipeline"
	"github.com/spf13/cobra"
)

var shiftCmd = &cobra.Command{
	Use:   "shift [dir]",
	Short: "Shift subtitle timings by a fixed offset",
	Long: `Shift the time ranges of every .srt file in a folder by a fixed
number of seconds, starting from a given block index. Results are
written beside each source as <name>_shifted.srt; shifted timestamps
never go below zero, and lines whose timestamps cannot be parsed are
copied through untouched.

Examples:
  subweave shift ./episodes --seconds -3600
  subweave shift ./episodes --seconds 2.5 --from-index 10`,
	Args: cobra.ExactArgs(1),
	RunE: runShift,
}

func init() {
	rootCmd.AddCommand(shiftCmd)

	shiftCmd.Flags().
		Float64P("seconds", "s", 0, "Offset in seconds, negative shifts earlier (required)")
	shiftCmd.Flags().
		Int("from-index", 1, "First block index the shift applies to")

	_ = shiftCmd.MarkFlagRequired("seconds")
}

func runShift(cmd *cobra.Command, args []string) error {
	seconds, _ := cmd.Flags().GetFloat64("seconds")
	fromIndex, _ := cmd.Flags().GetInt("from-index")

	if fromIndex < 1 {
		return fmt.Errorf("from-index must be at least 1, got %d", fromIndex)
	}

	p := pipeline.New(pipeline.Config{Dir: args[0]}, nil, logger)

	summary, err := p.ShiftAll(cmd.Context(), fromIndex, seconds)
	if err != nil {
		return err
	}

	logger.Infow("Shift complete",
		"seconds", seconds,
		"from_index", fromIndex,
		"total", summary.Total,
		"succeeded", summary.Succeeded,
		"failed", summary.Failed,
	)
	return nil
}
