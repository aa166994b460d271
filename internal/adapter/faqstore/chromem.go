package faqstore

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/philippgille/chromem-go"

	"shopbot/internal/domain"
	"shopbot/internal/port"
)

// Store keeps the FAQ corpus in a persisted chromem collection: the
// question is the embedded document, the answer rides along as metadata.
type Store struct {
	db    *chromem.DB
	name  string
	embed chromem.EmbeddingFunc

	// Progress, when set, is called after each ingested pair.
	Progress func(done, total int)

	mu sync.Mutex
}

// New opens (or creates) the vector store under vectorsDir.
func New(vectorsDir, collection string, embedder port.Embedder) (*Store, error) {
	db, err := chromem.NewPersistentDB(vectorsDir, false)
	if err != nil {
		return nil, fmt.Errorf("open vector db: %w", err)
	}

	embedFunc := func(ctx context.Context, text string) ([]float32, error) {
		vecs, err := embedder.Embed(ctx, []string{text})
		if err != nil {
			return nil, err
		}
		if len(vecs) == 0 {
			return nil, fmt.Errorf("empty embedding response")
		}
		return vecs[0], nil
	}

	return &Store{db: db, name: collection, embed: embedFunc}, nil
}

// Ingest persists the corpus with stable sequential ids. If the collection
// already exists this is a no-op: the store never merges or deduplicates.
func (s *Store) Ingest(ctx context.Context, corpus []domain.FAQ) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.db.ListCollections()[s.name]; ok {
		slog.Info("collection already exists, skipping ingestion", "collection", s.name)
		return nil
	}

	col, err := s.db.GetOrCreateCollection(s.name, nil, s.embed)
	if err != nil {
		return fmt.Errorf("create collection %q: %w", s.name, err)
	}

	for i, pair := range corpus {
		doc := chromem.Document{
			ID:      fmt.Sprintf("id_%d", i),
			Content: pair.Question,
			Metadata: map[string]string{
				"answer": pair.Answer,
			},
		}
		if err := col.AddDocument(ctx, doc); err != nil {
			return fmt.Errorf("add document %s: %w", doc.ID, err)
		}
		if s.Progress != nil {
			s.Progress(i+1, len(corpus))
		}
	}

	slog.Info("FAQ corpus ingested", "collection", s.name, "count", col.Count())
	return nil
}

// Query returns the answers of the k nearest questions, best match first.
// A missing or empty collection yields no results rather than an error.
func (s *Store) Query(ctx context.Context, text string, k int) ([]string, error) {
	col := s.db.GetCollection(s.name, s.embed)
	if col == nil || col.Count() == 0 || k <= 0 {
		return nil, nil
	}

	if k > col.Count() {
		k = col.Count()
	}

	results, err := col.Query(ctx, text, k, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("query collection %q: %w", s.name, err)
	}

	answers := make([]string, 0, len(results))
	for _, r := range results {
		answers = append(answers, r.Metadata["answer"])
	}
	return answers, nil
}

// Count returns the number of stored pairs.
func (s *Store) Count() int {
	col := s.db.GetCollection(s.name, s.embed)
	if col == nil {
		return 0
	}
	return col.Count()
}
