package translate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

// translatorFunc adapts a function to the Translator interface for
// stubbing attempts
type translatorFunc func(ctx context.Context, text string) (string, error)

func (f translatorFunc) Translate(ctx context.Context, text string) (string, error) {
	return f(ctx, text)
}

func stubRunner(outputs map[string]translatorFunc, validate func(string) error) *Runner {
	return &Runner{
		Profiles: []Profile{
			{Provider: ProviderGeminiCLI, Model: "primary"},
			{Provider: ProviderGeminiCLI, Model: "fallback"},
		},
		New: func(_ context.Context, p Profile) (Translator, error) {
			fn, ok := outputs[p.Model]
			if !ok {
				return nil, fmt.Errorf("no stub for %s", p.Model)
			}
			return fn, nil
		},
		Validate: validate,
	}
}

func TestRunnerAcceptsFirstValidResult(t *testing.T) {
	runner := stubRunner(map[string]translatorFunc{
		"primary": func(context.Context, string) (string, error) {
			return "translated", nil
		},
	}, nil)

	result, attempts, err := runner.Run(context.Background(), "source")
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result != "translated" {
		t.Errorf("unexpected result %q", result)
	}
	if len(attempts) != 1 {
		t.Errorf("expected 1 attempt, got %d", len(attempts))
	}
}

func TestRunnerFallsBackOnTranslatorError(t *testing.T) {
	runner := stubRunner(map[string]translatorFunc{
		"primary": func(context.Context, string) (string, error) {
			return "", errors.New("model unavailable")
		},
		"fallback": func(context.Context, string) (string, error) {
			return "rescued", nil
		},
	}, nil)

	result, attempts, err := runner.Run(context.Background(), "source")
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result != "rescued" {
		t.Errorf("unexpected result %q", result)
	}
	if len(attempts) != 2 {
		t.Fatalf("expected 2 attempts, got %d", len(attempts))
	}
	if attempts[0].Err == nil {
		t.Error("first attempt should record its error")
	}
	if attempts[1].Err != nil {
		t.Errorf("second attempt should be clean, got %v", attempts[1].Err)
	}
}

func TestRunnerFallsBackOnValidationFailure(t *testing.T) {
	validate := func(content string) error {
		if strings.Contains(content, "broken") {
			return errors.New("not sequential")
		}
		return nil
	}

	runner := stubRunner(map[string]translatorFunc{
		"primary": func(context.Context, string) (string, error) {
			return "broken output", nil
		},
		"fallback": func(context.Context, string) (string, error) {
			return "good output", nil
		},
	}, validate)

	result, _, err := runner.Run(context.Background(), "source")
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result != "good output" {
		t.Errorf("unexpected result %q", result)
	}
}

func TestRunnerExhaustsAllProfiles(t *testing.T) {
	fail := func(context.Context, string) (string, error) {
		return "", errors.New("down")
	}
	runner := stubRunner(map[string]translatorFunc{
		"primary":  fail,
		"fallback": fail,
	}, nil)

	_, attempts, err := runner.Run(context.Background(), "source")
	if err == nil {
		t.Fatal("expected error after exhausting profiles")
	}

	var exhausted *ExhaustedError
	if !errors.As(err, &exhausted) {
		t.Fatalf("expected *ExhaustedError, got %T", err)
	}
	if len(exhausted.Attempts) != 2 || len(attempts) != 2 {
		t.Errorf("expected 2 recorded attempts, got %d", len(exhausted.Attempts))
	}
}

func TestRunnerFiltersNoiseBeforeValidation(t *testing.T) {
	validate := func(content string) error {
		if strings.Contains(content, "Loaded cached credentials.") {
			return errors.New("banner reached the gate")
		}
		return nil
	}

	runner := stubRunner(map[string]translatorFunc{
		"primary": func(context.Context, string) (string, error) {
			return "Loaded cached credentials.\n1\nhello", nil
		},
	}, validate)

	result, _, err := runner.Run(context.Background(), "source")
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result != "1\nhello" {
		t.Errorf("expected banner stripped, got %q", result)
	}
}

func TestRunnerStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := stubRunner(map[string]translatorFunc{}, nil)

	_, _, err := runner.Run(ctx, "source")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestFilterNoise(t *testing.T) {
	input := "Loaded cached credentials.\n1\nhello\n\n2\nworld"
	want := "1\nhello\n\n2\nworld"

	if got := FilterNoise(input); got != want {
		t.Errorf("FilterNoise = %q, want %q", got, want)
	}

	clean := "1\nhello"
	if got := FilterNoise(clean); got != clean {
		t.Errorf("clean input changed: %q", got)
	}
}
