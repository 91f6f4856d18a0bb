package output

import "context"

// SearchPort runs one web search and always returns text for the model:
// formatted results on success, a degraded notice on failure.
type SearchPort interface {
	Search(ctx context.Context, query, apiKey string) string
}
