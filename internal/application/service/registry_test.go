package service

import (
	"context"
	"errors"
	"testing"

	"orbit-assistant/internal/application/port/output"
	"orbit-assistant/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type namedBackend struct {
	name string
}

func (b *namedBackend) Invoke(ctx context.Context, messages []entity.Message) (string, error) {
	return b.name, nil
}

type prefixBackend struct {
	next output.ModelBackend
}

func (b *prefixBackend) Invoke(ctx context.Context, messages []entity.Message) (string, error) {
	text, err := b.next.Invoke(ctx, messages)
	return "wrapped:" + text, err
}

func TestBackendRegistry_SelectsByProvider(t *testing.T) {
	registry := NewBackendRegistry()
	registry.Register(entity.ProviderOpenRouter, func(ctx context.Context, cfg entity.Config) (output.ModelBackend, error) {
		return &namedBackend{name: "openrouter:" + cfg.ModelName}, nil
	})
	registry.Register(entity.ProviderGemini, func(ctx context.Context, cfg entity.Config) (output.ModelBackend, error) {
		return &namedBackend{name: "gemini:" + cfg.ModelName}, nil
	})

	for _, provider := range []entity.Provider{entity.ProviderOpenRouter, entity.ProviderGemini} {
		backend, err := registry.New(context.Background(), entity.Config{Provider: provider, ModelName: "m"})
		require.NoError(t, err)

		text, err := backend.Invoke(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, string(provider)+":m", text)
	}

	assert.Len(t, registry.Providers(), 2)
}

func TestBackendRegistry_AppliesDecorators(t *testing.T) {
	registry := NewBackendRegistry(func(next output.ModelBackend) output.ModelBackend {
		return &prefixBackend{next: next}
	})
	registry.Register(entity.ProviderGemini, func(ctx context.Context, cfg entity.Config) (output.ModelBackend, error) {
		return &namedBackend{name: "g"}, nil
	})

	backend, err := registry.New(context.Background(), entity.Config{Provider: entity.ProviderGemini})
	require.NoError(t, err)

	text, err := backend.Invoke(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "wrapped:g", text)
}

func TestBackendRegistry_UnknownProvider(t *testing.T) {
	registry := NewBackendRegistry()

	_, err := registry.New(context.Background(), entity.Config{Provider: entity.ProviderGemini})
	require.Error(t, err)

	var providerErr *entity.ProviderError
	assert.True(t, errors.As(err, &providerErr))
	assert.Contains(t, err.Error(), "gemini")
}

func TestBackendRegistry_ConstructorError(t *testing.T) {
	registry := NewBackendRegistry()
	boom := errors.New("boom")
	registry.Register(entity.ProviderOpenRouter, func(ctx context.Context, cfg entity.Config) (output.ModelBackend, error) {
		return nil, boom
	})

	_, err := registry.New(context.Background(), entity.Config{Provider: entity.ProviderOpenRouter})
	assert.ErrorIs(t, err, boom)
}
