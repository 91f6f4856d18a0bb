package orchestrator

import (
	"context"
	"fmt"
	"io"
	"time"

	"orbit-assistant/internal/application/port/input"
	"orbit-assistant/internal/application/port/output"
	"orbit-assistant/internal/application/service"
	"orbit-assistant/internal/domain/entity"
	"orbit-assistant/internal/infrastructure/prompts"

	"github.com/google/uuid"
)

const (
	// MaxRounds is how many searching rounds run before the forced final call.
	MaxRounds = 3

	previewLen = 120
)

var _ input.ChatService = (*UseCase)(nil)

type UseCase struct {
	backends             output.BackendFactory
	search               output.SearchPort
	logger               output.LoggerPort
	systemPromptTemplate string
	now                  func() time.Time
}

func New(
	backends output.BackendFactory,
	search output.SearchPort,
	logger output.LoggerPort,
	systemPromptTemplate string,
) *UseCase {
	return &UseCase{
		backends:             backends,
		search:               search,
		logger:               logger,
		systemPromptTemplate: systemPromptTemplate,
		now:                  time.Now,
	}
}

// WithClock overrides the clock used for the date in the system prompt.
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

func (uc *UseCase) Chat(ctx context.Context, history []entity.Message, cfg entity.Config) entity.Result {
	cfg = cfg.Normalized()
	log := uc.logger.WithFields(map[string]any{
		"request_id": uuid.NewString(),
		"provider":   string(cfg.Provider),
		"model":      cfg.ModelName,
	})

	if err := cfg.Validate(); err != nil {
		log.Warn("Config rejected", "error", err)
		return entity.ErrorResult(err)
	}

	result := uc.run(ctx, log, history, cfg)
	if result.Failed() {
		log.Error("Chat failed", "error", result.Error)
	} else {
		log.Info("Final answer", "length", len(result.Content))
	}
	return result
}

func (uc *UseCase) run(ctx context.Context, log output.LoggerPort, history []entity.Message, cfg entity.Config) entity.Result {
	backend, err := uc.backends.New(ctx, cfg)
	if err != nil {
		return entity.ErrorResult(err)
	}
	defer closeBackend(log, backend)

	systemPrompt, err := prompts.GenerateSystemPrompt(uc.systemPromptTemplate, uc.now())
	if err != nil {
		return entity.ErrorResult(fmt.Errorf("failed to generate system prompt: %w", err))
	}

	conversation, dropped := entity.NewConversation(systemPrompt, history)
	if dropped > 0 {
		log.Warn("Dropped caller system messages", "count", dropped)
	}

	for index := 0; index < MaxRounds; index++ {
		round := entity.Round{Index: index}

		round.ModelOutput, err = uc.invoke(ctx, log, backend, conversation, index)
		if err != nil {
			return entity.ErrorResult(err)
		}

		detection := service.DetectSearch(round.ModelOutput)
		if !detection.WantsSearch() {
			log.Info("No search requested", "round", index+1)
			return entity.ContentResult(detection.Answer)
		}
		round.DetectedQuery = detection.Query

		uc.searchRound(ctx, log, conversation, round, cfg.SearchAPIKey)
	}

	log.Info("Max search rounds reached, doing final call", "rounds", MaxRounds)
	final, err := uc.invoke(ctx, log, backend, conversation, MaxRounds)
	if err != nil {
		return entity.ErrorResult(err)
	}
	return entity.ContentResult(final)
}

// searchRound grows the conversation by exactly two messages: the assistant's
// raw output and a user turn carrying the search results.
func (uc *UseCase) searchRound(ctx context.Context, log output.LoggerPort, conversation *entity.Conversation, round entity.Round, apiKey string) {
	log.Info("Search requested", "round", round.Index+1, "query", round.DetectedQuery)

	results := uc.search.Search(ctx, round.DetectedQuery, apiKey)

	conversation.Append(entity.AssistantMessage(round.ModelOutput))
	conversation.Append(entity.UserMessage(searchResultsPrompt(round.DetectedQuery, results)))
}

func (uc *UseCase) invoke(ctx context.Context, log output.LoggerPort, backend output.ModelBackend, conversation *entity.Conversation, index int) (string, error) {
	log.Debug("LLM call",
		"round", index+1,
		"messagesCount", conversation.Len(),
		"totalChars", conversation.Chars(),
	)

	start := time.Now()
	text, err := backend.Invoke(ctx, conversation.Messages())
	if err != nil {
		log.Error("LLM call failed", "round", index+1, "error", err, "duration_ms", time.Since(start).Milliseconds())
		return "", err
	}

	log.Debug("LLM responded",
		"round", index+1,
		"duration_ms", time.Since(start).Milliseconds(),
		"preview", preview(text),
	)
	return text, nil
}

// closeBackend releases per-request clients of backends that hold any.
func closeBackend(log output.LoggerPort, backend output.ModelBackend) {
	closer, ok := backend.(io.Closer)
	if !ok {
		return
	}
	if err := closer.Close(); err != nil {
		log.Warn("Failed to close backend", "error", err)
	}
}

func searchResultsPrompt(query, results string) string {
	return fmt.Sprintf("Here are the web search results for \"%s\":\n\n%s\n\nNow answer the original question using these results.", query, results)
}

func preview(s string) string {
	runes := []rune(s)
	if len(runes) <= previewLen {
		return s
	}
	return string(runes[:previewLen])
}
