package router

import "shopbot/internal/domain"

// DefaultRoutes returns the built-in route catalog: support questions go
// to the FAQ chain, product lookups go to the SQL chain.
func DefaultRoutes() []Route {
	return []Route{
		{
			Name: domain.RouteFAQ,
			Utterances: []string{
				"What is the return policy of the products?",
				"Do I get discount with the HDFC credit card?",
				"How can I track my order?",
				"What payment methods are accepted?",
				"How long does it take to process a refund?",
			},
		},
		{
			Name: domain.RouteSQL,
			Utterances: []string{
				"I want to buy Nike shoes that have 50% discount.",
				"Are there any shoes under Rs. 3000?",
				"Do you have formal shoes in size 9?",
				"Are there any Puma shoes on sale?",
				"What is the price of Puma running shoes?",
			},
		},
	}
}
