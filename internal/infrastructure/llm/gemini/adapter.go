package gemini

import (
	"context"
	"fmt"
	"io"

	"orbit-assistant/internal/application/port/output"
	"orbit-assistant/internal/domain/entity"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

var (
	_ output.ModelBackend = (*GeminiAdapter)(nil)
	_ io.Closer           = (*GeminiAdapter)(nil)
)

// contentGenerator is the part of googleai.GoogleAI the adapter uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error)
}

type GeminiAdapter struct {
	llm    contentGenerator
	model  string
	logger output.LoggerPort
}

type Config struct {
	APIKey string
	Model  string
	Logger output.LoggerPort
}

func DefaultConfig(apiKey, model string) Config {
	return Config{
		APIKey: apiKey,
		Model:  model,
	}
}

func NewGeminiAdapter(ctx context.Context, cfg Config) (*GeminiAdapter, error) {
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(cfg.APIKey),
		googleai.WithDefaultModel(cfg.Model),
	)
	if err != nil {
		return nil, &entity.ProviderError{
			Provider: entity.ProviderGemini,
			Err:      fmt.Errorf("create gemini client: %w", err),
		}
	}

	return &GeminiAdapter{
		llm:    llm,
		model:  cfg.Model,
		logger: cfg.Logger,
	}, nil
}

func (a *GeminiAdapter) Invoke(ctx context.Context, messages []entity.Message) (string, error) {
	a.debug("Gemini request", "model", a.model, "messages", len(messages))

	resp, err := a.llm.GenerateContent(ctx, convertMessages(messages), llms.WithModel(a.model))
	if err != nil {
		return "", &entity.ProviderError{Provider: entity.ProviderGemini, Message: err.Error(), Err: err}
	}

	if len(resp.Choices) == 0 {
		return "", &entity.ProviderError{
			Provider: entity.ProviderGemini,
			Message:  "The model returned no candidates.",
		}
	}

	a.debug("Gemini response", "model", a.model, "stopReason", resp.Choices[0].StopReason, "candidates", len(resp.Choices))
	return resp.Choices[0].Content, nil
}

// Close releases the underlying client. The client is built per request, so
// the caller closes it once the request is over.
func (a *GeminiAdapter) Close() error {
	if closer, ok := a.llm.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (a *GeminiAdapter) debug(msg string, args ...any) {
	if a.logger != nil {
		a.logger.Debug(msg, args...)
	}
}

func convertMessages(messages []entity.Message) []llms.MessageContent {
	result := make([]llms.MessageContent, 0, len(messages))
	for _, msg := range messages {
		content := llms.MessageContent{Role: messageType(msg.Role)}

		if msg.Content != "" || !msg.HasParts() {
			content.Parts = append(content.Parts, llms.TextContent{Text: msg.Content})
		}
		for _, part := range msg.Parts {
			content.Parts = append(content.Parts, convertPart(part))
		}

		result = append(result, content)
	}
	return result
}

func messageType(role entity.MessageRole) llms.ChatMessageType {
	switch role {
	case entity.RoleSystem:
		return llms.ChatMessageTypeSystem
	case entity.RoleAssistant:
		return llms.ChatMessageTypeAI
	default:
		return llms.ChatMessageTypeHuman
	}
}

func convertPart(part entity.ContentPart) llms.ContentPart {
	switch part.Type {
	case entity.ContentTypeImage, entity.ContentTypeFile:
		if len(part.Data) > 0 {
			return llms.BinaryContent{MIMEType: part.MIMEType, Data: part.Data}
		}
		if part.URL != "" {
			return llms.ImageURLContent{URL: part.URL}
		}
		if part.Text != "" {
			return llms.TextContent{Text: part.Text}
		}
		return llms.TextContent{Text: fmt.Sprintf("[Attached file: %s]", part.Name)}
	default:
		return llms.TextContent{Text: part.Text}
	}
}
