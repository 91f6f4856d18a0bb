package openrouter

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"orbit-assistant/internal/application/port/output"
	"orbit-assistant/internal/domain/entity"
	"orbit-assistant/internal/infrastructure/transport"

	"github.com/sashabaranov/go-openai"
)

var _ output.ModelBackend = (*OpenRouterAdapter)(nil)

const (
	defaultBaseURL = "https://openrouter.ai/api/v1"
	defaultTimeout = 60 * time.Second
)

type OpenRouterAdapter struct {
	client *openai.Client
	model  string
	logger output.LoggerPort
}

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
	Logger  output.LoggerPort
}

func DefaultConfig(apiKey, model string) Config {
	return Config{
		APIKey:  apiKey,
		Model:   model,
		BaseURL: defaultBaseURL,
		Timeout: defaultTimeout,
	}
}

func NewOpenRouterAdapter(cfg Config) *OpenRouterAdapter {
	config := openai.DefaultConfig(cfg.APIKey)
	config.BaseURL = cfg.BaseURL
	if config.BaseURL == "" {
		config.BaseURL = defaultBaseURL
	}
	config.HTTPClient = transport.NewClient(cfg.Logger, cfg.Timeout)

	return &OpenRouterAdapter{
		client: openai.NewClientWithConfig(config),
		model:  cfg.Model,
		logger: cfg.Logger,
	}
}

func (a *OpenRouterAdapter) Invoke(ctx context.Context, messages []entity.Message) (string, error) {
	a.debug("OpenRouter request", "model", a.model, "messages", len(messages))

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    a.model,
		Messages: convertMessages(messages),
	})
	if err != nil {
		return "", providerError(err)
	}

	if len(resp.Choices) == 0 {
		return "", &entity.ProviderError{
			Provider: entity.ProviderOpenRouter,
			Message:  "The model returned no choices.",
		}
	}

	a.debug("OpenRouter response",
		"model", a.model,
		"finishReason", string(resp.Choices[0].FinishReason),
		"promptTokens", resp.Usage.PromptTokens,
		"completionTokens", resp.Usage.CompletionTokens,
	)
	return resp.Choices[0].Message.Content, nil
}

func (a *OpenRouterAdapter) debug(msg string, args ...any) {
	if a.logger != nil {
		a.logger.Debug(msg, args...)
	}
}

// providerError keeps the provider's own message when the API sent one.
func providerError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return &entity.ProviderError{Provider: entity.ProviderOpenRouter, Message: apiErr.Message, Err: err}
	}
	return &entity.ProviderError{
		Provider: entity.ProviderOpenRouter,
		Err:      fmt.Errorf("chat completion failed: %w", err),
	}
}

func convertMessages(messages []entity.Message) []openai.ChatCompletionMessage {
	result := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, msg := range messages {
		oaiMsg := openai.ChatCompletionMessage{
			Role: string(msg.Role),
		}

		if msg.HasParts() {
			oaiMsg.MultiContent = convertParts(msg)
		} else {
			oaiMsg.Content = msg.Content
		}

		result = append(result, oaiMsg)
	}
	return result
}

// convertParts builds the multi-part body. Content, when also set, goes first
// as a text part because the API rejects messages that carry both.
func convertParts(msg entity.Message) []openai.ChatMessagePart {
	parts := make([]openai.ChatMessagePart, 0, len(msg.Parts)+1)
	if msg.Content != "" {
		parts = append(parts, openai.ChatMessagePart{Type: openai.ChatMessagePartTypeText, Text: msg.Content})
	}

	for _, part := range msg.Parts {
		switch part.Type {
		case entity.ContentTypeImage:
			url := part.URL
			if url == "" {
				url = dataURL(part.MIMEType, part.Data)
			}
			parts = append(parts, openai.ChatMessagePart{
				Type:     openai.ChatMessagePartTypeImageURL,
				ImageURL: &openai.ChatMessageImageURL{URL: url},
			})
		case entity.ContentTypeFile:
			parts = append(parts, openai.ChatMessagePart{Type: openai.ChatMessagePartTypeText, Text: fileText(part)})
		default:
			parts = append(parts, openai.ChatMessagePart{Type: openai.ChatMessagePartTypeText, Text: part.Text})
		}
	}
	return parts
}

func fileText(part entity.ContentPart) string {
	header := fmt.Sprintf("[Attached file: %s]", part.Name)
	if part.Text != "" {
		return header + "\n" + part.Text
	}
	if strings.HasPrefix(part.MIMEType, "text/") && len(part.Data) > 0 {
		return header + "\n" + string(part.Data)
	}
	return header
}

func dataURL(mimeType string, data []byte) string {
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
