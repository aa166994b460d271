package cli

import (
	"context"
	"fmt"

	"shopbot/internal/adapter/embedding"
	"shopbot/internal/adapter/faqstore"
	"shopbot/internal/adapter/llm"
	"shopbot/internal/adapter/productdb"
	"shopbot/internal/chain"
	"shopbot/internal/port"
	"shopbot/internal/router"
	"shopbot/internal/usecase"
)

// buildAssistant wires the full pipeline: embedder, LLM, stores, router,
// chains, dispatcher. Missing credentials or an unreachable catalog fail
// here, before the first question is accepted.
func buildAssistant(ctx context.Context) (*usecase.Assistant, func(), error) {
	cfg := GetConfig()

	embedder, err := embedding.NewFromConfig(cfg.Embedding)
	if err != nil {
		return nil, nil, fmt.Errorf("configure embedder: %w", err)
	}

	model, err := llm.NewFromConfig(cfg.LLM)
	if err != nil {
		return nil, nil, fmt.Errorf("configure LLM: %w", err)
	}

	store, err := faqstore.New(cfg.FAQ.VectorsDir, cfg.FAQ.Collection, embedder)
	if err != nil {
		return nil, nil, fmt.Errorf("open FAQ store: %w", err)
	}

	products, err := productdb.Open(cfg.Database.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open product catalog: %w", err)
	}

	intents, err := router.New(ctx, embedder, router.DefaultRoutes(), cfg.Router.Threshold)
	if err != nil {
		products.Close()
		return nil, nil, fmt.Errorf("build intent router: %w", err)
	}

	opts := port.CompletionOptions{Temperature: cfg.LLM.Temperature, MaxTokens: cfg.LLM.MaxTokens}
	faqChain := chain.NewFAQChain(store, model, cfg.FAQ.TopK, opts)
	sqlChain := chain.NewSQLChain(products, model)

	cleanup := func() { products.Close() }
	return usecase.NewAssistant(intents, faqChain, sqlChain), cleanup, nil
}
