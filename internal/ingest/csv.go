package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"shopbot/internal/domain"
)

// LoadCSV reads a question/answer corpus from a CSV file with a
// "question,answer" header row. IDs are left empty; the FAQ store
// assigns them at ingestion.
func LoadCSV(path string) ([]domain.FAQ, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse corpus: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("corpus %s is empty", path)
	}

	header := records[0]
	if len(header) < 2 ||
		!strings.EqualFold(strings.TrimSpace(header[0]), "question") ||
		!strings.EqualFold(strings.TrimSpace(header[1]), "answer") {
		return nil, fmt.Errorf("corpus %s: expected header question,answer, got %v", path, header)
	}

	corpus := make([]domain.FAQ, 0, len(records)-1)
	for i, rec := range records[1:] {
		question := strings.TrimSpace(rec[0])
		answer := strings.TrimSpace(rec[1])
		if question == "" || answer == "" {
			return nil, fmt.Errorf("corpus %s: row %d has an empty question or answer", path, i+2)
		}
		corpus = append(corpus, domain.FAQ{Question: question, Answer: answer})
	}

	return corpus, nil
}
