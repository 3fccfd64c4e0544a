package translate

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"unicode/utf8"
)

const defaultCLICommand = "gemini"

// CLITranslator shells out to the gemini command-line client. The
// prompt goes to stdin and the translation comes back on stdout; a
// non-zero exit, a missing executable, or a context timeout is a hard
// failure for the attempt.
type CLITranslator struct {
	Command string
	options Options
}

func NewCLITranslator(opts Options) *CLITranslator {
	return &CLITranslator{
		Command: defaultCLICommand,
		options: opts,
	}
}

func (t *CLITranslator) Translate(ctx context.Context, text string) (string, error) {
	args := []string{}
	if t.options.Model != "" {
		args = append(args, "-m", t.options.Model)
	}

	cmd := exec.CommandContext(ctx, t.command(), args...)
	cmd.Stdin = strings.NewReader(BuildRequest(t.options.Prompt, text))

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("translation timed out: %w", ctx.Err())
		}
		return "", fmt.Errorf(
			"%s failed: %w (stderr: %s)",
			t.command(),
			err,
			truncateString(strings.TrimSpace(stderr.String()), 200),
		)
	}

	return stdout.String(), nil
}

func (t *CLITranslator) command() string {
	if t.Command != "" {
		return t.Command
	}
	return defaultCLICommand
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	// back up to a rune boundary so the cut never splits a character
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
