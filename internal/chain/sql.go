package chain

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"shopbot/internal/domain"
	"shopbot/internal/port"
)

// NoMatchesAnswer is returned when the generated query runs fine but
// matches nothing; summarizing an empty result would invite invention.
const NoMatchesAnswer = "Sorry, I couldn't find any products matching your question."

// sqlTagRe extracts delimiter-tagged statements from model output.
// When the model emits several, only the first is used.
var sqlTagRe = regexp.MustCompile(`(?s)<SQL>(.*?)</SQL>`)

// SQLChain translates a product question into a single SELECT, executes it
// against the catalog and summarizes the rows into a readable answer.
type SQLChain struct {
	products port.ProductStore
	llm      port.LLM
	genOpts  port.CompletionOptions
}

func NewSQLChain(products port.ProductStore, llm port.LLM) *SQLChain {
	return &SQLChain{
		products: products,
		llm:      llm,
		// Low temperature biases toward reproducible, well-formed SQL.
		genOpts: port.CompletionOptions{Temperature: 0.2, MaxTokens: 1024},
	}
}

// Answer runs the generate → extract → execute → summarize pipeline.
func (c *SQLChain) Answer(ctx context.Context, question string) (string, error) {
	response, err := c.llm.Complete(ctx, sqlSystemPrompt, question, c.genOpts)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGenerationUnavailable, err)
	}

	matches := sqlTagRe.FindAllStringSubmatch(response, -1)
	if len(matches) == 0 {
		return "", fmt.Errorf("%w: response had no <SQL> tags", domain.ErrSQLGenerationFailed)
	}

	stmt := strings.TrimSpace(matches[0][1])
	if !strings.HasPrefix(strings.ToUpper(stmt), "SELECT") {
		return "", fmt.Errorf("%w: refusing to run non-SELECT statement", domain.ErrSQLExecutionFailed)
	}
	slog.Debug("executing generated query", "sql", stmt)

	rows, err := c.products.Query(ctx, stmt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrSQLExecutionFailed, err)
	}

	if len(rows) == 0 {
		return NoMatchesAnswer, nil
	}

	userPrompt := fmt.Sprintf("QUESTION: %s\n\nDATA:\n%s", question, renderRows(rows))
	summary, err := c.llm.Complete(ctx, summarySystemPrompt, userPrompt, c.genOpts)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGenerationUnavailable, err)
	}
	return summary, nil
}

// renderRows flattens result rows into "column: value" records. Discounts
// are stored as fractions but rendered as percentages so the summary can
// quote them directly.
func renderRows(rows []domain.ProductRow) string {
	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteString("\n\n")
		}
		for j, f := range row {
			if j > 0 {
				b.WriteString("\n")
			}
			if f.Column == "discount" {
				if frac, ok := asFloat(f.Value); ok {
					fmt.Fprintf(&b, "discount: %g%%", frac*100)
					continue
				}
			}
			fmt.Fprintf(&b, "%s: %v", f.Column, f.Value)
		}
	}
	return b.String()
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
