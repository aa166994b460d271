package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"shopbot/config"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "shopbot",
	Short: "E-commerce chat assistant - routes questions to FAQ retrieval or catalog SQL",
	Long: `Shopbot answers customer questions for an e-commerce store. Each query is
classified by a semantic intent router and dispatched to one of two chains:
FAQ questions are answered from a vector store of support Q&A, product
questions are translated to SQL and run against the catalog.

Example usage:
  shopbot ingest                     # Load the FAQ corpus into the vector store
  shopbot ask -q "return policy?"    # Answer a single question
  shopbot chat                       # Interactive session
  shopbot routes -q "Nike shoes"     # Show how a query is classified`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Credentials may live in a .env file next to the binary.
		_ = godotenv.Load()

		var err error
		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			wd, werr := os.Getwd()
			if werr != nil {
				return fmt.Errorf("failed to get working directory: %w", werr)
			}
			cfg, err = config.LoadFromDir(wd)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		setupLogging(cfg.Logging.Level)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./shopbot.yaml)")
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}

func GetConfig() *config.Config {
	return cfg
}
