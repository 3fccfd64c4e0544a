package cli

import (
	"fmt"

	"github.com/joonwoolee/subweave/internal/pipeline"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [dir]",
	Short: "Run the full split-translate-merge pipeline over a folder",
	Long: `Process every .srt file in a folder end to end: split into time and
sentence streams, translate the sentences, validate the result, and
merge the pair into updatedSrt/<name>_updated.srt. Files are handled
independently on a worker pool, and a file that fails any stage is
quarantined under failed_srt/ without stopping the rest.

Examples:
  subweave run ./episodes
  subweave run ./episodes --concurrency 4 --provider openai
  subweave run ./episodes --legacy-hour-shift --timeout 5m`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	addTranslationFlags(runCmd)
	runCmd.Flags().
		Int("concurrency", 2, "Number of files processed in parallel")
	runCmd.Flags().
		Bool("legacy-hour-shift", false, "Subtract one hour from block 2 onward while splitting")
}

func runRun(cmd *cobra.Command, args []string) error {
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	legacyShift, _ := cmd.Flags().GetBool("legacy-hour-shift")

	if concurrency <= 0 {
		return fmt.Errorf("concurrency must be positive, got %d", concurrency)
	}

	runner, err := buildRunner(cmd)
	if err != nil {
		return err
	}

	p := pipeline.New(pipeline.Config{
		Dir:             args[0],
		LegacyHourShift: legacyShift,
		Concurrency:     concurrency,
	}, runner, logger)

	summary, err := p.RunAll(cmd.Context())
	if err != nil {
		return err
	}

	logger.Infow("Pipeline complete",
		"total", summary.Total,
		"succeeded", summary.Succeeded,
		"failed", summary.Failed,
	)

	if summary.Failed > 0 {
		fmt.Printf(
			"%d of %d files failed; originals preserved under %s\n",
			summary.Failed,
			summary.Total,
			pipeline.DefaultQuarantineDir,
		)
	}
	return nil
}
