package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joonwoolee/subweave/internal/srt"
	"github.com/joonwoolee/subweave/internal/translate"
	"github.com/spf13/cobra"
)

// default gemini CLI models, primary and retry
const (
	defaultCLIModel         = "gemini-2.5-pro"
	defaultCLIFallbackModel = "gemini-2.5-flash"
)

func addTranslationFlags(cmd *cobra.Command) {
	cmd.Flags().
		StringP("provider", "p", "gemini-cli", "Translation provider (gemini-cli, gemini, anthropic, openai)")
	cmd.Flags().
		String("model", "", "Model to use for translation (provider-specific defaults)")
	cmd.Flags().
		String("fallback-model", "", "Model retried when the primary attempt fails validation")
	cmd.Flags().
		StringP("api-key", "k", "", "API key (or set the provider's environment variable)")
	cmd.Flags().
		Duration("timeout", 10*time.Minute, "Per-attempt translation timeout")
	cmd.Flags().
		String("prompt-file", "", "File holding the instruction prompt (defaults to the built-in prompt)")
}

// buildRunner assembles the attempt runner from the translation flags.
// The fallback model, when set, becomes a second profile on the same
// provider; output is gated on the round-trip format and sequence
// checks.
func buildRunner(cmd *cobra.Command) (*translate.Runner, error) {
	providerStr, _ := cmd.Flags().GetString("provider")
	model, _ := cmd.Flags().GetString("model")
	fallbackModel, _ := cmd.Flags().GetString("fallback-model")
	apiKey, _ := cmd.Flags().GetString("api-key")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	promptFile, _ := cmd.Flags().GetString("prompt-file")

	provider := translate.Provider(providerStr)

	if provider == translate.ProviderGeminiCLI {
		if model == "" {
			model = defaultCLIModel
		}
		if fallbackModel == "" && !cmd.Flags().Changed("fallback-model") {
			fallbackModel = defaultCLIFallbackModel
		}
	}

	if envVar := translate.EnvKeyName(provider); envVar != "" {
		if apiKey == "" {
			apiKey = os.Getenv(envVar)
		}
		if apiKey == "" {
			return nil, fmt.Errorf(
				"API key is required: use --api-key flag or set %s environment variable",
				envVar,
			)
		}
	}

	prompt := translate.BuildPrompt(translate.BasePrompt, translate.DefaultPolicies())
	if promptFile != "" {
		content, err := os.ReadFile(promptFile)
		if err != nil {
			return nil, fmt.Errorf("read prompt file: %w", err)
		}
		prompt = string(content)
	}

	profiles := []translate.Profile{{Provider: provider, Model: model}}
	if fallbackModel != "" && fallbackModel != model {
		profiles = append(profiles, translate.Profile{
			Provider: provider,
			Model:    fallbackModel,
		})
	}

	return &translate.Runner{
		Profiles: profiles,
		New: func(ctx context.Context, p translate.Profile) (translate.Translator, error) {
			return translate.Factory(ctx, p.Provider, apiKey, translate.Options{
				Model:  p.Model,
				Prompt: prompt,
			})
		},
		Validate: srt.ValidateTranslation,
		Timeout:  timeout,
		Logger:   logger,
	}, nil
}
