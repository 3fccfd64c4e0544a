package translate

import (
	"context"
	"fmt"
	"strings"
)

// Translator turns one sentence-stream text blob into its translated
// counterpart. The output is untrusted until it passes the validation
// gate downstream.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// translation service provider
type Provider string

const (
	ProviderGeminiCLI Provider = "gemini-cli"
	ProviderGemini    Provider = "gemini"
	ProviderAnthropic Provider = "anthropic"
	ProviderOpenAI    Provider = "openai"
)

type Options struct {
	Model  string
	Prompt string // instruction prompt prepended to every request
}

// marker separating instructions from the payload, kept stable so the
// model treats everything after it as content to translate
const payloadMarker = "[TEXT TO TRANSLATE]"

// creates a Translator based on provider
func Factory(
	ctx context.Context,
	provider Provider,
	apiKey string,
	opts Options,
) (Translator, error) {
	switch provider {
	case ProviderGeminiCLI:
		return NewCLITranslator(opts), nil
	case ProviderGemini:
		return NewGeminiTranslator(ctx, apiKey, opts)
	case ProviderAnthropic:
		return NewAnthropicTranslator(apiKey, opts)
	case ProviderOpenAI:
		return NewOpenAITranslator(apiKey, opts)
	default:
		return nil, fmt.Errorf("unsupported translation provider: %s", provider)
	}
}

// EnvKeyName returns the environment variable a provider reads its API
// key from. The CLI provider authenticates on its own.
func EnvKeyName(provider Provider) string {
	switch provider {
	case ProviderGemini:
		return "GEMINI_API_KEY"
	case ProviderAnthropic:
		return "ANTHROPIC_API_KEY"
	case ProviderOpenAI:
		return "OPENAI_API_KEY"
	default:
		return ""
	}
}

// BuildRequest assembles the full request: instructions, marker, then
// the sentence-stream payload.
func BuildRequest(prompt, text string) string {
	var sb strings.Builder
	if prompt != "" {
		sb.WriteString(strings.TrimSpace(prompt))
		sb.WriteString("\n\n")
	}
	sb.WriteString(payloadMarker)
	sb.WriteString("\n\n")
	sb.WriteString(text)
	return sb.String()
}
