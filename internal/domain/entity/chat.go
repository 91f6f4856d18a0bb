package entity

import (
	"encoding/json"
	"strings"
)

type Provider string

const (
	ProviderOpenRouter Provider = "openrouter"
	ProviderGemini     Provider = "gemini"
)

// ParseProvider maps a settings value to a provider. Anything that is not
// "gemini" falls back to OpenRouter.
func ParseProvider(s string) Provider {
	if strings.EqualFold(strings.TrimSpace(s), string(ProviderGemini)) {
		return ProviderGemini
	}
	return ProviderOpenRouter
}

// Label is the human name used in user-facing messages.
func (p Provider) Label() string {
	if p == ProviderGemini {
		return "Gemini"
	}
	return "OpenRouter"
}

// Config is resolved by the caller for each request and is never modified by the core.
type Config struct {
	Provider     Provider `json:"provider"`
	APIKey       string   `json:"api_key"`
	ModelName    string   `json:"model_name"`
	SearchAPIKey string   `json:"search_api_key"`
}

// Normalized returns a copy with trimmed strings and a known provider.
func (c Config) Normalized() Config {
	return Config{
		Provider:     ParseProvider(string(c.Provider)),
		APIKey:       strings.TrimSpace(c.APIKey),
		ModelName:    strings.TrimSpace(c.ModelName),
		SearchAPIKey: strings.TrimSpace(c.SearchAPIKey),
	}
}

// Validate checks the normalized config. Model credentials are checked before
// the search key.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return &ConfigError{Field: "api_key", Provider: c.Provider}
	}
	if c.ModelName == "" {
		return &ConfigError{Field: "model_name", Provider: c.Provider}
	}
	if c.SearchAPIKey == "" {
		return &ConfigError{Field: "search_api_key", Provider: c.Provider}
	}
	return nil
}

// Result carries either Content or Error, never both.
type Result struct {
	Content string `json:"content,omitempty"`
	Error   string `json:"error,omitempty"`
}

// MarshalJSON always writes exactly one key, so an empty answer still encodes
// as {"content":""}.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.Failed() {
		return json.Marshal(struct {
			Error string `json:"error"`
		}{r.Error})
	}
	return json.Marshal(struct {
		Content string `json:"content"`
	}{r.Content})
}

func ContentResult(content string) Result {
	return Result{Content: content}
}

func ErrorResult(err error) Result {
	msg := err.Error()
	if msg == "" {
		msg = defaultProviderMessage
	}
	return Result{Error: msg}
}

func (r Result) Failed() bool {
	return r.Error != ""
}

// Round is one model invocation, optionally followed by one search.
type Round struct {
	Index         int
	ModelOutput   string
	DetectedQuery string
}
