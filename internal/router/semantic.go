package router

import (
	"context"
	"fmt"
	"math"

	"shopbot/internal/domain"
	"shopbot/internal/port"
)

// Route is a labelled set of example utterances.
type Route struct {
	Name       domain.Route
	Utterances []string
}

// Router classifies queries by embedding them and comparing against the
// example utterances of each registered route. All example embeddings are
// computed once at construction; Classify is read-only and safe for
// concurrent use.
type Router struct {
	embedder  port.Embedder
	routes    []embeddedRoute
	threshold float64
}

type embeddedRoute struct {
	name    domain.Route
	vectors [][]float32
}

// New embeds every utterance of every route. Routes keep their
// registration order, which decides exact ties in Classify.
func New(ctx context.Context, embedder port.Embedder, routes []Route, threshold float64) (*Router, error) {
	r := &Router{embedder: embedder, threshold: threshold}

	for _, route := range routes {
		if len(route.Utterances) == 0 {
			return nil, fmt.Errorf("route %q has no example utterances", route.Name)
		}
		vectors, err := embedder.Embed(ctx, route.Utterances)
		if err != nil {
			return nil, fmt.Errorf("%w: embed %q examples: %v", domain.ErrRouterUnavailable, route.Name, err)
		}
		r.routes = append(r.routes, embeddedRoute{name: route.Name, vectors: vectors})
	}

	return r, nil
}

// Classify returns the route whose examples are most similar to the query.
// The per-route score is the maximum cosine similarity over that route's
// examples; a best score below the acceptance threshold yields RouteNone.
// Exact ties go to the earlier-registered route.
func (r *Router) Classify(ctx context.Context, query string) (domain.Match, error) {
	embeddings, err := r.embedder.Embed(ctx, []string{query})
	if err != nil {
		return domain.Match{}, fmt.Errorf("%w: embed query: %v", domain.ErrRouterUnavailable, err)
	}
	if len(embeddings) == 0 {
		return domain.Match{}, fmt.Errorf("%w: embedding returned empty result", domain.ErrRouterUnavailable)
	}
	qv := embeddings[0]

	best := domain.Match{Route: domain.RouteNone, Score: math.Inf(-1)}
	for _, route := range r.routes {
		score := math.Inf(-1)
		for _, v := range route.vectors {
			if sim := cosineSimilarity(qv, v); sim > score {
				score = sim
			}
		}
		// Strict comparison keeps the first-registered route on ties.
		if score > best.Score {
			best = domain.Match{Route: route.name, Score: score}
		}
	}

	if best.Score < r.threshold {
		return domain.Match{Route: domain.RouteNone, Score: best.Score}, nil
	}
	return best, nil
}

// cosineSimilarity calculates the cosine similarity between two vectors.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}
