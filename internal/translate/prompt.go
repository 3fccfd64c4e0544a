package translate

import (
	"fmt"
	"strings"
)

// Policy contributes zero or one instruction line to the assembled
// prompt. Policies are validated at construction, so assembly itself
// cannot fail.
type Policy interface {
	PromptLine() (string, bool)
}

// BoolPolicy emits its text when enabled and nothing otherwise.
type BoolPolicy struct {
	Name    string
	Text    string
	Enabled bool
}

func (p BoolPolicy) PromptLine() (string, bool) {
	if !p.Enabled {
		return "", false
	}
	return p.Text, true
}

// ChoicePolicy emits the text of its selected option.
type ChoicePolicy struct {
	Name     string
	Options  map[string]string
	Selected string
}

// NewChoicePolicy rejects selections that name no option, so a typo in
// configuration surfaces before any translation runs.
func NewChoicePolicy(name string, options map[string]string, selected string) (ChoicePolicy, error) {
	if _, ok := options[selected]; !ok {
		return ChoicePolicy{}, fmt.Errorf(
			"policy %s: unknown option %q", name, selected,
		)
	}
	return ChoicePolicy{Name: name, Options: options, Selected: selected}, nil
}

func (p ChoicePolicy) PromptLine() (string, bool) {
	return p.Options[p.Selected], true
}

// BasePrompt is the instruction every assembled prompt starts from.
const BasePrompt = `You are a skilled translator of film and drama subtitles. You will be shown subtitle text in a numbered, blank-line-separated format. Translate each numbered entry naturally, and follow the requirements below.

1. Replace only the sentence text under each number. Keep the existing format: the number line, then the text, then exactly one blank line between entries.`

// BuildPrompt folds the policy list into the base prompt, numbering
// the contributed requirement lines after the base requirements.
func BuildPrompt(base string, policies []Policy) string {
	var sb strings.Builder
	sb.WriteString(strings.TrimSpace(base))

	next := 2
	for _, policy := range policies {
		line, ok := policy.PromptLine()
		if !ok {
			continue
		}
		fmt.Fprintf(&sb, "\n%d. %s", next, line)
		next++
	}

	return sb.String()
}

// DefaultPolicies mirrors the policy set the tool historically shipped
// with: metadata cues are dropped, trailing periods are omitted for
// spoken dialogue, quotes are stripped, wrapped sentences are joined,
// and simultaneous dialogue keeps one speaker per line without dashes.
func DefaultPolicies() []Policy {
	sentenceEnding, _ := NewChoicePolicy("sentence_ending", map[string]string{
		"omit_period": "Drop the sentence-final period, since this is spoken dialogue; keep every other mark such as '?' and '!'.",
		"keep_all":    "Keep all sentence-final punctuation ('.', '?', '!') as written.",
	}, "omit_period")

	multiLine, _ := NewChoicePolicy("multi_line_sentence", map[string]string{
		"combine":    "If one sentence is wrapped across multiple lines, translate it as a single line even when the source used two.",
		"keep_lines": "If the source text is split across multiple lines, keep the same line split in the translation.",
	}, "combine")

	dashDialogue, _ := NewChoicePolicy("dash_dialogue", map[string]string{
		"split_no_dash":   "When two speakers share one entry, the lines are marked with a leading '-'. Keep one speaker per line but drop the '-' marks.",
		"split_with_dash": "When two speakers share one entry, keep the leading '-' marks that separate the lines.",
	}, "split_no_dash")

	return []Policy{
		BoolPolicy{
			Name:    "omit_metadata",
			Text:    "Omit non-dialogue cues such as [dramatic music] or STORY:/LANG: markers; keep only the entry number for those.",
			Enabled: true,
		},
		sentenceEnding,
		BoolPolicy{
			Name:    "quote_handling",
			Text:    "Do not wrap dialogue in quotation marks; remove them even when the source has them.",
			Enabled: true,
		},
		multiLine,
		dashDialogue,
	}
}
