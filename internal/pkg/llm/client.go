package llm

import "context"

// Client sends one prompt to a model and returns the raw text it produced.
//
// GenerateText asks the provider for JSON output. GenerateChatResponse asks
// for plain text. Neither retries; callers decide what a failure means.
type Client interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	GenerateChatResponse(ctx context.Context, prompt string) (string, error)
	ModelID() string
}
