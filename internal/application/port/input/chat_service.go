package input

import (
	"context"

	"orbit-assistant/internal/domain/entity"
)

// ChatService answers one request. It never returns a Go error: fatal
// failures are reported through Result.Error.
type ChatService interface {
	Chat(ctx context.Context, history []entity.Message, cfg entity.Config) entity.Result
}
