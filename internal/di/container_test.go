package di

import (
	"context"
	"os"
	"testing"

	"orbit-assistant/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContainer_RegistersBothProviders(t *testing.T) {
	dir := t.TempDir()
	c, err := NewContainer(context.Background(), Config{LogName: "di-test", LogDir: dir})
	require.NoError(t, err)
	defer c.Close()

	assert.ElementsMatch(t, []entity.Provider{entity.ProviderOpenRouter, entity.ProviderGemini}, c.Backends.Providers())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestNewContainer_ChatRejectsMissingKeys(t *testing.T) {
	c, err := NewContainer(context.Background(), Config{LogName: "di-test", LogDir: t.TempDir()})
	require.NoError(t, err)
	defer c.Close()

	result := c.Chat.Chat(context.Background(),
		[]entity.Message{entity.UserMessage("hi")},
		entity.Config{Provider: entity.ProviderGemini, ModelName: "gemini-2.5-flash", SearchAPIKey: "s"})

	assert.Equal(t, "Please set your Gemini API key and model in Settings → AI Settings.", result.Error)
	assert.Empty(t, result.Content)
}

func TestNewContainer_OpenRouterBackendBuildsWithoutNetwork(t *testing.T) {
	c, err := NewContainer(context.Background(), Config{LogName: "di-test", LogDir: t.TempDir()})
	require.NoError(t, err)
	defer c.Close()

	backend, err := c.Backends.New(context.Background(), entity.Config{
		Provider: entity.ProviderOpenRouter, APIKey: "k", ModelName: "m", SearchAPIKey: "s",
	})
	require.NoError(t, err)
	assert.NotNil(t, backend)
}
