package ingest

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCorpus(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "faq_data.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeCorpus(t, `question,answer
What is the return policy?,"Returns are accepted within 30 days, with receipt."
How can I track my order?,Use the tracking link in your confirmation email.
`)

	corpus, err := LoadCSV(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(corpus) != 2 {
		t.Fatalf("expected 2 pairs, got %d", len(corpus))
	}
	if corpus[0].Question != "What is the return policy?" {
		t.Errorf("unexpected question: %q", corpus[0].Question)
	}
	if corpus[0].Answer != "Returns are accepted within 30 days, with receipt." {
		t.Errorf("unexpected answer: %q", corpus[0].Answer)
	}
	if corpus[0].ID != "" {
		t.Errorf("loader must not assign ids, got %q", corpus[0].ID)
	}
}

func TestLoadCSVBadHeader(t *testing.T) {
	path := writeCorpus(t, "q,a\nfoo,bar\n")
	if _, err := LoadCSV(path); err == nil {
		t.Error("expected error for wrong header")
	}
}

func TestLoadCSVEmptyRow(t *testing.T) {
	path := writeCorpus(t, "question,answer\nWhat is this?,\n")
	if _, err := LoadCSV(path); err == nil {
		t.Error("expected error for empty answer")
	}
}

func TestLoadCSVMissing(t *testing.T) {
	if _, err := LoadCSV(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Error("expected error for missing file")
	}
}
