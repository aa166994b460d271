package chain

import (
	"context"
	"errors"
	"strings"
	"testing"

	"shopbot/internal/domain"
	"shopbot/internal/port"
)

type llmCall struct {
	system string
	user   string
	opts   port.CompletionOptions
}

// scriptedLLM returns canned responses in order and records every call.
type scriptedLLM struct {
	responses []string
	err       error
	calls     []llmCall
}

func (l *scriptedLLM) Complete(_ context.Context, system, user string, opts port.CompletionOptions) (string, error) {
	l.calls = append(l.calls, llmCall{system: system, user: user, opts: opts})
	if l.err != nil {
		return "", l.err
	}
	if len(l.responses) == 0 {
		return "", errors.New("scriptedLLM: no responses left")
	}
	resp := l.responses[0]
	l.responses = l.responses[1:]
	return resp, nil
}

func (l *scriptedLLM) ModelName() string { return "scripted" }

type fakeFAQStore struct {
	answers []string
	err     error
}

func (s *fakeFAQStore) Ingest(context.Context, []domain.FAQ) error { return nil }
func (s *fakeFAQStore) Count() int                                 { return len(s.answers) }

func (s *fakeFAQStore) Query(context.Context, string, int) ([]string, error) {
	return s.answers, s.err
}

func TestFAQAnswerGrounded(t *testing.T) {
	store := &fakeFAQStore{answers: []string{
		"Returns are accepted within 30 days.",
		"Refunds take 5-7 business days.",
	}}
	llm := &scriptedLLM{responses: []string{"You can return products within 30 days."}}

	c := NewFAQChain(store, llm, 2, port.CompletionOptions{Temperature: 0.2, MaxTokens: 512})
	got, err := c.Answer(context.Background(), "What is the return policy?")
	if err != nil {
		t.Fatal(err)
	}
	if got != "You can return products within 30 days." {
		t.Errorf("unexpected answer: %q", got)
	}

	if len(llm.calls) != 1 {
		t.Fatalf("expected 1 LLM call, got %d", len(llm.calls))
	}
	call := llm.calls[0]
	if !strings.Contains(call.user, "Returns are accepted within 30 days.") ||
		!strings.Contains(call.user, "Refunds take 5-7 business days.") {
		t.Errorf("prompt missing retrieved context: %q", call.user)
	}
	if !strings.Contains(call.system, "context only") {
		t.Errorf("system prompt is not grounding-strict: %q", call.system)
	}
}

func TestFAQAnswerNoContext(t *testing.T) {
	llm := &scriptedLLM{responses: []string{"should not be used"}}
	c := NewFAQChain(&fakeFAQStore{}, llm, 2, port.CompletionOptions{})

	got, err := c.Answer(context.Background(), "What is the return policy?")
	if err != nil {
		t.Fatal(err)
	}
	if got != FallbackAnswer {
		t.Errorf("expected %q, got %q", FallbackAnswer, got)
	}
	if len(llm.calls) != 0 {
		t.Errorf("expected no LLM call when retrieval is empty, got %d", len(llm.calls))
	}
}

func TestFAQAnswerLLMDown(t *testing.T) {
	store := &fakeFAQStore{answers: []string{"some context"}}
	llm := &scriptedLLM{err: errors.New("timeout")}
	c := NewFAQChain(store, llm, 2, port.CompletionOptions{})

	_, err := c.Answer(context.Background(), "anything")
	if !errors.Is(err, domain.ErrGenerationUnavailable) {
		t.Errorf("expected ErrGenerationUnavailable, got %v", err)
	}
}

func TestFAQAnswerRetrievalError(t *testing.T) {
	store := &fakeFAQStore{err: errors.New("store down")}
	llm := &scriptedLLM{}
	c := NewFAQChain(store, llm, 2, port.CompletionOptions{})

	if _, err := c.Answer(context.Background(), "anything"); err == nil {
		t.Error("expected error when retrieval fails")
	}
	if len(llm.calls) != 0 {
		t.Errorf("expected no LLM call when retrieval fails, got %d", len(llm.calls))
	}
}
