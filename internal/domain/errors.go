package domain

import "errors"

// Component-level failures. Each maps to exactly one user-facing message
// at the dispatcher boundary; nothing below the dispatcher talks to the user.
var (
	// ErrRouterUnavailable means the embedding backend behind the intent
	// router could not be reached.
	ErrRouterUnavailable = errors.New("intent router unavailable")

	// ErrGenerationUnavailable means an LLM call failed or timed out.
	ErrGenerationUnavailable = errors.New("answer generation unavailable")

	// ErrSQLGenerationFailed means the model output contained no
	// delimiter-tagged SQL statement.
	ErrSQLGenerationFailed = errors.New("no SQL statement in model output")

	// ErrSQLExecutionFailed means the generated statement was rejected or
	// failed to execute against the product catalog.
	ErrSQLExecutionFailed = errors.New("SQL execution failed")
)
