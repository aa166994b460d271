package port

import "context"

// CompletionOptions tune a single completion call.
type CompletionOptions struct {
	Temperature float64
	MaxTokens   int
}

// LLM represents a chat language model.
type LLM interface {
	// Complete generates text from a system instruction and a user message.
	Complete(ctx context.Context, systemPrompt, userPrompt string, opts CompletionOptions) (string, error)

	// ModelName returns the name of the model.
	ModelName() string
}
