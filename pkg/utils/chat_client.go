package utils

import "context"

// ChatClientInterface is the minimal surface the assistant loop needs from
// an LLM provider. Implementations must be safe for concurrent use.
type ChatClientInterface interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
