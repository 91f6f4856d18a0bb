package entity

import (
	"fmt"
	"time"
)

const defaultProviderMessage = "Failed to get response from LLM."

// ConfigError means a required credential or model identifier is blank.
type ConfigError struct {
	Field    string
	Provider Provider
}

func (e *ConfigError) Error() string {
	if e.Field == "search_api_key" {
		return "Please set your Tavily API key in Settings → AI Settings to enable web search."
	}
	return fmt.Sprintf("Please set your %s API key and model in Settings → AI Settings.", e.Provider.Label())
}

// TimeoutError means the model did not answer before the invocation deadline.
type TimeoutError struct {
	After time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("LLM request timed out after %s. The model may be overloaded, try a different one in Settings.",
		formatAfter(e.After))
}

// formatAfter prints whole seconds as "60 seconds" and anything finer as a
// duration, e.g. "20ms".
func formatAfter(d time.Duration) string {
	if d >= time.Second && d%time.Second == 0 {
		return fmt.Sprintf("%d seconds", int(d/time.Second))
	}
	return d.String()
}

// ProviderError is any other model backend failure. Message is what the
// provider said, when it said anything.
type ProviderError struct {
	Provider Provider
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil && e.Err.Error() != "" {
		return e.Err.Error()
	}
	return defaultProviderMessage
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
