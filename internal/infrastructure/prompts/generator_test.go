package prompts

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateSystemPrompt(t *testing.T) {
	now := time.Date(2026, time.October, 14, 9, 30, 0, 0, time.UTC)

	result, err := GenerateSystemPrompt(SystemPrompt, now)
	if err != nil {
		t.Fatalf("GenerateSystemPrompt failed: %v", err)
	}

	if !strings.Contains(result, "Today's date is Wednesday, October 14, 2026.") {
		t.Error("Result should contain the formatted current date")
	}

	if !strings.Contains(result, "<SEARCH>your search query here</SEARCH>") {
		t.Error("Result should describe the search marker")
	}

	if !strings.Contains(result, "Weather or forecasts") {
		t.Error("Result should list when to search")
	}

	if !strings.Contains(result, "Pure coding/programming help") {
		t.Error("Result should list when not to search")
	}

	if strings.Contains(result, "{{") {
		t.Error("Result should not contain template actions")
	}
}

func TestGenerateSystemPromptChangesWithDate(t *testing.T) {
	a, err := GenerateSystemPrompt(SystemPrompt, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("GenerateSystemPrompt failed: %v", err)
	}
	b, err := GenerateSystemPrompt(SystemPrompt, time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("GenerateSystemPrompt failed: %v", err)
	}

	if a == b {
		t.Error("Prompts for different days should differ")
	}
}

func TestGenerateSystemPromptInvalidTemplate(t *testing.T) {
	invalidTemplate := `Test {{.InvalidField}}`

	_, err := GenerateSystemPrompt(invalidTemplate, time.Now())
	if err == nil {
		t.Error("Expected error for invalid template, got nil")
	}
}
