package prompts

import (
	"bytes"
	"strings"
	"text/template"
	"time"
)

// DateLayout renders dates like "Wednesday, October 14, 2026".
const DateLayout = "Monday, January 2, 2006"

type SystemPromptData struct {
	Date string
}

// GenerateSystemPrompt renders the system prompt for a request started at now.
func GenerateSystemPrompt(baseTemplate string, now time.Time) (string, error) {
	data := SystemPromptData{
		Date: now.Format(DateLayout),
	}

	tmpl, err := template.New("system").Option("missingkey=error").Parse(baseTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return strings.TrimRight(buf.String(), "\n"), nil
}
