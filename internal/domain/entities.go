package domain

// Route labels a query with the downstream chain that should handle it.
type Route string

const (
	RouteFAQ  Route = "faq"
	RouteSQL  Route = "sql"
	RouteNone Route = "none"
)

// FAQ is one question/answer pair from the support corpus.
// IDs are assigned by the FAQ store at ingestion time.
type FAQ struct {
	ID       string
	Question string
	Answer   string
}

// Match is the result of classifying a query against the route catalog.
type Match struct {
	Route Route
	Score float64
}

// Field is a single column/value pair from a catalog query result.
type Field struct {
	Column string
	Value  any
}

// ProductRow preserves the column order of the executed statement,
// which a plain map would not.
type ProductRow []Field
