package output

import "context"

type UserInteractionPort interface {
	AskQuestion(ctx context.Context, question string) (string, error)

	ShowAnswer(ctx context.Context, content string)
	ShowError(ctx context.Context, message string)
}
