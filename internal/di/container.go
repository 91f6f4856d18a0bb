package di

import (
	"context"
	"fmt"
	"time"

	"orbit-assistant/internal/application/port/input"
	"orbit-assistant/internal/application/port/output"
	"orbit-assistant/internal/application/service"
	"orbit-assistant/internal/domain/entity"
	"orbit-assistant/internal/infrastructure/llm"
	"orbit-assistant/internal/infrastructure/llm/gemini"
	"orbit-assistant/internal/infrastructure/llm/openrouter"
	"orbit-assistant/internal/infrastructure/logger"
	"orbit-assistant/internal/infrastructure/prompts"
	"orbit-assistant/internal/infrastructure/search/tavily"
	"orbit-assistant/internal/usecase/orchestrator"
)

type Container struct {
	Logger   output.LoggerPort
	Backends *service.BackendRegistry
	Search   output.SearchPort
	Chat     input.ChatService
}

type Config struct {
	LogName  string
	LogLevel string
	LogDir   string
	// SystemPrompt overrides the embedded prompt template.
	SystemPrompt  string
	InvokeTimeout time.Duration
	// SearchTimeout is zero by default: searches are bounded by the request context.
	SearchTimeout time.Duration
}

func NewContainer(ctx context.Context, cfg Config) (*Container, error) {
	logCfg := logger.DefaultConfig(cfg.LogName)
	if cfg.LogLevel != "" {
		logCfg.Level = cfg.LogLevel
	}
	if cfg.LogDir != "" {
		logCfg.Dir = cfg.LogDir
	}

	log, err := logger.NewLoggerAdapter(logCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	timeout := cfg.InvokeTimeout
	if timeout <= 0 {
		timeout = llm.InvokeTimeout
	}

	backends := service.NewBackendRegistry(llm.Decorator(timeout))
	registerBackends(backends, log)

	search := tavily.NewClient(tavily.Config{Logger: log, Timeout: cfg.SearchTimeout})

	systemPrompt := cfg.SystemPrompt
	if systemPrompt == "" {
		systemPrompt = prompts.SystemPrompt
	}

	uc := orchestrator.New(backends, search, log, systemPrompt)

	log.Info("Container ready", "providers", backends.Providers(), "invoke_timeout", timeout.String())

	return &Container{
		Logger:   log,
		Backends: backends,
		Search:   search,
		Chat:     uc,
	}, nil
}

func (c *Container) Close() {
	if c.Logger != nil {
		c.Logger.Close()
	}
}

func registerBackends(registry *service.BackendRegistry, log output.LoggerPort) {
	registry.Register(entity.ProviderOpenRouter, func(ctx context.Context, cfg entity.Config) (output.ModelBackend, error) {
		orCfg := openrouter.DefaultConfig(cfg.APIKey, cfg.ModelName)
		orCfg.Logger = log
		return openrouter.NewOpenRouterAdapter(orCfg), nil
	})

	registry.Register(entity.ProviderGemini, func(ctx context.Context, cfg entity.Config) (output.ModelBackend, error) {
		gCfg := gemini.DefaultConfig(cfg.APIKey, cfg.ModelName)
		gCfg.Logger = log
		return gemini.NewGeminiAdapter(ctx, gCfg)
	})
}
