package translate

import (
	"strings"
	"testing"
)

func TestNewChoicePolicyValidatesSelection(t *testing.T) {
	options := map[string]string{"a": "do a", "b": "do b"}

	if _, err := NewChoicePolicy("p", options, "a"); err != nil {
		t.Errorf("valid selection rejected: %v", err)
	}
	if _, err := NewChoicePolicy("p", options, "c"); err == nil {
		t.Error("expected error for unknown option")
	}
}

func TestBuildPromptFoldsPolicies(t *testing.T) {
	choice, err := NewChoicePolicy("ending", map[string]string{
		"keep": "Keep punctuation.",
	}, "keep")
	if err != nil {
		t.Fatalf("NewChoicePolicy: %v", err)
	}

	policies := []Policy{
		BoolPolicy{Name: "on", Text: "Enabled rule.", Enabled: true},
		BoolPolicy{Name: "off", Text: "Disabled rule.", Enabled: false},
		choice,
	}

	prompt := BuildPrompt("Base instructions.\n\n1. First rule.", policies)

	if !strings.HasPrefix(prompt, "Base instructions.") {
		t.Errorf("base prompt missing: %q", prompt)
	}
	if !strings.Contains(prompt, "2. Enabled rule.") {
		t.Errorf("enabled policy missing or misnumbered:\n%s", prompt)
	}
	if strings.Contains(prompt, "Disabled rule.") {
		t.Errorf("disabled policy leaked into prompt:\n%s", prompt)
	}
	if !strings.Contains(prompt, "3. Keep punctuation.") {
		t.Errorf("choice policy missing or misnumbered:\n%s", prompt)
	}
}

func TestDefaultPoliciesAssemble(t *testing.T) {
	prompt := BuildPrompt(BasePrompt, DefaultPolicies())

	// all five default policies contribute a line
	for _, n := range []string{"2.", "3.", "4.", "5.", "6."} {
		if !strings.Contains(prompt, "\n"+n+" ") {
			t.Errorf("requirement %s missing from default prompt", n)
		}
	}
}
