package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"shopbot/internal/adapter/embedding"
	"shopbot/internal/router"
)

var routesQuery string

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Show how a query is classified",
	Long: `Classify a query against the route catalog and print the matched
route with its similarity score. Useful for tuning the acceptance threshold.

Example:
  shopbot routes -q "Pink Puma shoes in price range 5000 to 1000"`,
	RunE: runRoutes,
}

func init() {
	rootCmd.AddCommand(routesCmd)
	routesCmd.Flags().StringVarP(&routesQuery, "query", "q", "", "query to classify (required)")
	routesCmd.MarkFlagRequired("query")
}

func runRoutes(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	embedder, err := embedding.NewFromConfig(cfg.Embedding)
	if err != nil {
		return fmt.Errorf("configure embedder: %w", err)
	}

	intents, err := router.New(cmd.Context(), embedder, router.DefaultRoutes(), cfg.Router.Threshold)
	if err != nil {
		return fmt.Errorf("build intent router: %w", err)
	}

	match, err := intents.Classify(cmd.Context(), routesQuery)
	if err != nil {
		return fmt.Errorf("classification failed: %w", err)
	}

	fmt.Printf("route: %s (score %.3f, threshold %.3f)\n", match.Route, match.Score, cfg.Router.Threshold)
	return nil
}
