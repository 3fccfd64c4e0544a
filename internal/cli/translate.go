package cli

import (
	"github.com/joonwoolee/subweave/internal/pipeline"
	"github.com/spf13/cobra"
)

var translateCmd = &cobra.Command{
	Use:   "translate [dir]",
	Short: "Translate the sentence streams of previously split files",
	Long: `Translate every sentence stream under txtWithSentence/ in place.
Each file is sent whole to the translator; the response must keep the
numbered format and the exact entry sequence, or the attempt is
rejected and the fallback model is tried. Files that exhaust every
attempt are quarantined under failed_srt/.

Examples:
  subweave translate ./episodes
  subweave translate ./episodes --provider anthropic
  subweave translate ./episodes --provider gemini-cli --model gemini-2.5-flash`,
	Args: cobra.ExactArgs(1),
	RunE: runTranslateCmd,
}

func init() {
	rootCmd.AddCommand(translateCmd)
	addTranslationFlags(translateCmd)
}

func runTranslateCmd(cmd *cobra.Command, args []string) error {
	runner, err := buildRunner(cmd)
	if err != nil {
		return err
	}

	p := pipeline.New(pipeline.Config{Dir: args[0]}, runner, logger)

	summary, err := p.TranslateAll(cmd.Context())
	if err != nil {
		return err
	}

	logger.Infow("Translation complete",
		"total", summary.Total,
		"succeeded", summary.Succeeded,
		"failed", summary.Failed,
	)
	return nil
}
