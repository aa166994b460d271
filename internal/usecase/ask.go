package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"shopbot/internal/domain"
)

// User-facing messages. Exactly one per failure kind; raw errors never
// cross this boundary.
const (
	MsgRoutingFailed       = "Sorry, something went wrong while reading your question. Please try again."
	MsgSQLGenerationFailed = "Sorry, I couldn't generate a SQL query for your question."
	MsgSQLExecutionFailed  = "Sorry, there was a problem executing SQL query."
	MsgGenerationFailed    = "Sorry, I'm having trouble generating an answer right now. Please try again."
)

// Classifier decides which chain should handle a query.
type Classifier interface {
	Classify(ctx context.Context, query string) (domain.Match, error)
}

// Chain produces a final answer for a query.
type Chain interface {
	Answer(ctx context.Context, query string) (string, error)
}

// Assistant routes each query to the matching chain and converts every
// downstream failure into a user-safe message.
type Assistant struct {
	router Classifier
	faq    Chain
	sql    Chain
}

func NewAssistant(router Classifier, faq, sql Chain) *Assistant {
	return &Assistant{router: router, faq: faq, sql: sql}
}

// Ask handles one query end to end. It never returns an error: whatever
// happens below, the caller gets a displayable string.
func (a *Assistant) Ask(ctx context.Context, query string) string {
	match, err := a.router.Classify(ctx, query)
	if err != nil {
		slog.Error("classification failed", "query", query, "error", err)
		return MsgRoutingFailed
	}
	slog.Debug("query classified", "route", match.Route, "score", match.Score)

	var answer string
	switch match.Route {
	case domain.RouteFAQ:
		answer, err = a.faq.Answer(ctx, query)
	case domain.RouteSQL:
		answer, err = a.sql.Answer(ctx, query)
	default:
		return fmt.Sprintf("Route %s not implemented yet", match.Route)
	}

	if err != nil {
		slog.Error("chain failed", "route", match.Route, "error", err)
		switch {
		case errors.Is(err, domain.ErrSQLGenerationFailed):
			return MsgSQLGenerationFailed
		case errors.Is(err, domain.ErrSQLExecutionFailed):
			return MsgSQLExecutionFailed
		default:
			return MsgGenerationFailed
		}
	}
	return answer
}
