package port

import (
	"context"

	"shopbot/internal/domain"
)

// FAQStore persists embedded question/answer pairs and serves
// nearest-neighbour lookups over the questions.
type FAQStore interface {
	// Ingest embeds every question and persists the corpus. It is
	// idempotent: if the collection already exists it is a no-op.
	Ingest(ctx context.Context, corpus []domain.FAQ) error

	// Query returns the answers of the k questions closest to text,
	// best match first. A missing or empty collection yields an empty
	// slice, not an error.
	Query(ctx context.Context, text string, k int) ([]string, error)

	// Count returns the number of stored pairs.
	Count() int
}

// ProductStore executes read-only queries against the product catalog.
type ProductStore interface {
	Query(ctx context.Context, query string) ([]domain.ProductRow, error)
}
