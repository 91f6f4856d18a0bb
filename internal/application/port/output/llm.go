package output

import (
	"context"

	"orbit-assistant/internal/domain/entity"
)

// ModelBackend invokes one provider's model with the whole conversation and
// returns its raw text output.
type ModelBackend interface {
	Invoke(ctx context.Context, messages []entity.Message) (string, error)
}

// BackendFactory builds the backend selected by cfg.Provider. Building must not
// touch the network.
type BackendFactory interface {
	New(ctx context.Context, cfg entity.Config) (ModelBackend, error)
}
