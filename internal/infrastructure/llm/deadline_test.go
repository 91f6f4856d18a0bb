package llm

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"orbit-assistant/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type funcBackend func(ctx context.Context, messages []entity.Message) (string, error)

func (f funcBackend) Invoke(ctx context.Context, messages []entity.Message) (string, error) {
	return f(ctx, messages)
}

func TestDeadlineBackend_FastCallWins(t *testing.T) {
	backend := WithDeadline(funcBackend(func(ctx context.Context, _ []entity.Message) (string, error) {
		return "answer", nil
	}), time.Second)

	text, err := backend.Invoke(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "answer", text)
}

func TestDeadlineBackend_ErrorPassesThrough(t *testing.T) {
	boom := &entity.ProviderError{Message: "rate limited"}
	backend := WithDeadline(funcBackend(func(ctx context.Context, _ []entity.Message) (string, error) {
		return "", boom
	}), time.Second)

	_, err := backend.Invoke(context.Background(), nil)
	assert.Same(t, boom, err)
}

func TestDeadlineBackend_TimerWins(t *testing.T) {
	var cancelled atomic.Bool
	release := make(chan struct{})
	defer close(release)

	backend := WithDeadline(funcBackend(func(ctx context.Context, _ []entity.Message) (string, error) {
		select {
		case <-ctx.Done():
			cancelled.Store(true)
		case <-release:
		}
		return "too late", nil
	}), 20*time.Millisecond)

	start := time.Now()
	text, err := backend.Invoke(context.Background(), nil)

	assert.Empty(t, text)
	var timeoutErr *entity.TimeoutError
	require.True(t, errors.As(err, &timeoutErr))
	assert.Contains(t, err.Error(), "timed out")
	assert.Contains(t, err.Error(), "try a different one")
	assert.Less(t, time.Since(start), time.Second)

	assert.Eventually(t, cancelled.Load, time.Second, 5*time.Millisecond, "abandoned call should see its context cancelled")
}

func TestDeadlineBackend_CallerCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	backend := WithDeadline(funcBackend(func(ctx context.Context, _ []entity.Message) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	}), time.Minute)

	cancel()
	_, err := backend.Invoke(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWithDeadline_DefaultTimeout(t *testing.T) {
	backend := WithDeadline(nil, 0)
	assert.Equal(t, InvokeTimeout, backend.timeout)
}

func TestTimeoutErrorMessage(t *testing.T) {
	err := &entity.TimeoutError{After: InvokeTimeout}
	assert.Equal(t,
		"LLM request timed out after 60 seconds. The model may be overloaded, try a different one in Settings.",
		err.Error())
}

type closerBackend struct {
	funcBackend
	closed bool
}

func (b *closerBackend) Close() error {
	b.closed = true
	return nil
}

func TestDeadlineBackend_CloseForwards(t *testing.T) {
	inner := &closerBackend{funcBackend: func(ctx context.Context, _ []entity.Message) (string, error) { return "", nil }}

	require.NoError(t, WithDeadline(inner, time.Second).Close())
	assert.True(t, inner.closed)
}

func TestDeadlineBackend_CloseWithoutCloser(t *testing.T) {
	backend := WithDeadline(funcBackend(func(ctx context.Context, _ []entity.Message) (string, error) {
		return "", nil
	}), time.Second)

	assert.NoError(t, backend.Close())
}
