package llm

import (
	"context"
	"io"
	"time"

	"orbit-assistant/internal/application/port/output"
	"orbit-assistant/internal/domain/entity"
)

// InvokeTimeout bounds every model invocation.
const InvokeTimeout = 60 * time.Second

var (
	_ output.ModelBackend = (*DeadlineBackend)(nil)
	_ io.Closer           = (*DeadlineBackend)(nil)
)

// DeadlineBackend races each call against a timer. When the timer wins the
// caller gets a TimeoutError right away and the abandoned call's context is
// cancelled; its late result is dropped.
type DeadlineBackend struct {
	next    output.ModelBackend
	timeout time.Duration
}

func WithDeadline(next output.ModelBackend, timeout time.Duration) *DeadlineBackend {
	if timeout <= 0 {
		timeout = InvokeTimeout
	}
	return &DeadlineBackend{next: next, timeout: timeout}
}

// Decorator adapts WithDeadline for the backend registry.
func Decorator(timeout time.Duration) func(output.ModelBackend) output.ModelBackend {
	return func(next output.ModelBackend) output.ModelBackend {
		return WithDeadline(next, timeout)
	}
}

type reply struct {
	text string
	err  error
}

func (b *DeadlineBackend) Invoke(ctx context.Context, messages []entity.Message) (string, error) {
	callCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Buffered so the goroutine can always finish, even after we stop waiting.
	done := make(chan reply, 1)
	go func() {
		text, err := b.next.Invoke(callCtx, messages)
		done <- reply{text: text, err: err}
	}()

	timer := time.NewTimer(b.timeout)
	defer timer.Stop()

	select {
	case r := <-done:
		return r.text, r.err
	case <-timer.C:
		return "", &entity.TimeoutError{After: b.timeout}
	case <-ctx.Done():
		return "", &entity.ProviderError{Err: ctx.Err()}
	}
}

// Close forwards to the wrapped backend when it holds resources.
func (b *DeadlineBackend) Close() error {
	if closer, ok := b.next.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
