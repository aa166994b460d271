package chain

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"shopbot/internal/domain"
	"shopbot/internal/port"
)

// FallbackAnswer is returned when retrieval finds no context at all.
// Skipping the LLM here saves a round trip and removes any chance of a
// hallucinated answer.
const FallbackAnswer = "I don't know."

// FAQChain answers support questions by retrieving the closest stored
// answers and asking the LLM to respond strictly from them.
type FAQChain struct {
	store port.FAQStore
	llm   port.LLM
	topK  int
	opts  port.CompletionOptions
}

func NewFAQChain(store port.FAQStore, llm port.LLM, topK int, opts port.CompletionOptions) *FAQChain {
	if topK <= 0 {
		topK = 2
	}
	return &FAQChain{store: store, llm: llm, topK: topK, opts: opts}
}

// Answer returns a grounded answer for the query, or FallbackAnswer when
// the store has no context for it.
func (c *FAQChain) Answer(ctx context.Context, query string) (string, error) {
	answers, err := c.store.Query(ctx, query, c.topK)
	if err != nil {
		return "", fmt.Errorf("faq retrieval: %w", err)
	}

	if len(answers) == 0 {
		slog.Debug("no FAQ context found", "query", query)
		return FallbackAnswer, nil
	}

	contextStr := strings.Join(answers, "\n\n")
	userPrompt := fmt.Sprintf("QUESTION: %s\n\nCONTEXT: %s", query, contextStr)

	response, err := c.llm.Complete(ctx, faqSystemPrompt, userPrompt, c.opts)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGenerationUnavailable, err)
	}
	return response, nil
}
