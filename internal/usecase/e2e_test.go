package usecase_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	_ "modernc.org/sqlite"

	"shopbot/internal/adapter/faqstore"
	"shopbot/internal/adapter/productdb"
	"shopbot/internal/chain"
	"shopbot/internal/domain"
	"shopbot/internal/port"
	"shopbot/internal/router"
	"shopbot/internal/usecase"
)

// e2eEmbedder places FAQ-like texts, product-like texts and everything
// else in three separate regions of a 3-dimensional space.
type e2eEmbedder struct{}

func (e2eEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		switch {
		case containsAny(t, "policy", "refund", "track", "payment", "discount with", "cancel"):
			out[i] = []float32{1, 0.1, 0}
		case containsAny(t, "shoes", "Nike", "Puma", "price"):
			out[i] = []float32{0.1, 1, 0}
		default:
			out[i] = []float32{0, 0, 1}
		}
	}
	return out, nil
}

func (e2eEmbedder) Dimension() int    { return 3 }
func (e2eEmbedder) ModelName() string { return "e2e" }

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(strings.ToLower(s), strings.ToLower(sub)) {
			return true
		}
	}
	return false
}

// e2eLLM answers by prompt kind: SQL generation, summarization or
// grounded FAQ answering.
type e2eLLM struct {
	summaryPrompts []string
}

func (l *e2eLLM) Complete(_ context.Context, system, user string, _ port.CompletionOptions) (string, error) {
	switch {
	case strings.Contains(system, "<schema>"):
		return "<SQL>SELECT * FROM product WHERE brand LIKE '%nike%' AND price < 3000</SQL>", nil
	case strings.Contains(system, "product catalog"):
		l.summaryPrompts = append(l.summaryPrompts, user)
		return "1. Nike Court Vision: Rs. 2795 (20% off), Rated 4.3 - https://example.com/nike-court", nil
	default:
		return "Products can be returned within 30 days of delivery.", nil
	}
}

func (l *e2eLLM) ModelName() string { return "e2e" }

func seedCatalog(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "db.sqlite")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	if _, err := db.Exec(`CREATE TABLE product (
		product_link TEXT, title TEXT, brand TEXT,
		price INTEGER, discount REAL, avg_rating REAL, total_ratings INTEGER
	)`); err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec(`INSERT INTO product VALUES
		('https://example.com/nike-court', 'Nike Court Vision', 'NIKE', 2795, 0.2, 4.3, 812)`); err != nil {
		t.Fatal(err)
	}
	return path
}

func buildAssistant(t *testing.T) (*usecase.Assistant, *e2eLLM) {
	t.Helper()
	ctx := context.Background()
	embedder := e2eEmbedder{}

	store, err := faqstore.New(t.TempDir(), "faqs", embedder)
	if err != nil {
		t.Fatal(err)
	}
	corpus := []domain.FAQ{
		{Question: "What is the return policy of the products?", Answer: "Products can be returned within 30 days of delivery."},
		{Question: "How long does it take to process a refund?", Answer: "Refunds are processed within 5-7 business days."},
	}
	if err := store.Ingest(ctx, corpus); err != nil {
		t.Fatal(err)
	}

	products, err := productdb.Open(seedCatalog(t))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { products.Close() })

	intents, err := router.New(ctx, embedder, router.DefaultRoutes(), 0.5)
	if err != nil {
		t.Fatal(err)
	}

	model := &e2eLLM{}
	faqChain := chain.NewFAQChain(store, model, 2, port.CompletionOptions{Temperature: 0.2, MaxTokens: 512})
	sqlChain := chain.NewSQLChain(products, model)
	return usecase.NewAssistant(intents, faqChain, sqlChain), model
}

func TestEndToEndFAQ(t *testing.T) {
	assistant, _ := buildAssistant(t)

	got := assistant.Ask(context.Background(), "What is the return policy?")
	if got != "Products can be returned within 30 days of delivery." {
		t.Errorf("unexpected answer: %q", got)
	}
}

func TestEndToEndSQL(t *testing.T) {
	assistant, model := buildAssistant(t)

	got := assistant.Ask(context.Background(), "Nike shoes under 3000")
	if !strings.Contains(got, "Nike Court Vision") {
		t.Errorf("unexpected answer: %q", got)
	}

	if len(model.summaryPrompts) != 1 {
		t.Fatalf("expected 1 summarization call, got %d", len(model.summaryPrompts))
	}
	prompt := model.summaryPrompts[0]
	if !strings.Contains(prompt, "2795") {
		t.Errorf("summary prompt missing price: %q", prompt)
	}
	if !strings.Contains(prompt, "20%") {
		t.Errorf("summary prompt missing discount percentage: %q", prompt)
	}
}

func TestEndToEndUnmatchedRoute(t *testing.T) {
	assistant, _ := buildAssistant(t)

	got := assistant.Ask(context.Background(), "Tell me a joke")
	if got != "Route none not implemented yet" {
		t.Errorf("expected fallback naming the route, got %q", got)
	}
}
