package service

import (
	"context"
	"fmt"
	"sync"

	"orbit-assistant/internal/application/port/output"
	"orbit-assistant/internal/domain/entity"
)

// BackendConstructor builds one provider variant from a validated config.
type BackendConstructor func(ctx context.Context, cfg entity.Config) (output.ModelBackend, error)

// BackendDecorator wraps every backend the registry builds.
type BackendDecorator func(output.ModelBackend) output.ModelBackend

var _ output.BackendFactory = (*BackendRegistry)(nil)

type BackendRegistry struct {
	mu           sync.RWMutex
	constructors map[entity.Provider]BackendConstructor
	decorators   []BackendDecorator
}

func NewBackendRegistry(decorators ...BackendDecorator) *BackendRegistry {
	return &BackendRegistry{
		constructors: make(map[entity.Provider]BackendConstructor),
		decorators:   decorators,
	}
}

func (r *BackendRegistry) Register(provider entity.Provider, ctor BackendConstructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.constructors[provider] = ctor
}

func (r *BackendRegistry) Get(provider entity.Provider) (BackendConstructor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ctor, ok := r.constructors[provider]
	return ctor, ok
}

func (r *BackendRegistry) Providers() []entity.Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]entity.Provider, 0, len(r.constructors))
	for p := range r.constructors {
		result = append(result, p)
	}
	return result
}

func (r *BackendRegistry) New(ctx context.Context, cfg entity.Config) (output.ModelBackend, error) {
	ctor, ok := r.Get(cfg.Provider)
	if !ok {
		return nil, &entity.ProviderError{
			Provider: cfg.Provider,
			Message:  fmt.Sprintf("Provider %q is not available.", cfg.Provider),
		}
	}

	backend, err := ctor(ctx, cfg)
	if err != nil {
		return nil, err
	}

	for _, decorate := range r.decorators {
		backend = decorate(backend)
	}
	return backend, nil
}
