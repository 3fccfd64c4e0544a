package cli

import (
	"github.com/joho/godotenv"
	"github.com/joonwoolee/subweave/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "subweave",
	Short: "Round-trip SRT subtitle translation pipeline",
	Long: `Subweave splits SRT subtitle files into paired time and sentence
streams, sends the sentences through an external translator, validates
the result, and merges the pair back into renumbered SRT output.

Each stage is also available on its own for manual workflows.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}
