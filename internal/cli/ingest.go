package cli

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"shopbot/internal/adapter/embedding"
	"shopbot/internal/adapter/faqstore"
	"shopbot/internal/ingest"
)

var ingestFile string

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Load the FAQ corpus into the vector store",
	Long: `Embed every question of the FAQ corpus and persist the collection.
Ingestion is idempotent: if the collection already exists, nothing happens.

Examples:
  shopbot ingest
  shopbot ingest -f resources/faq_data.csv`,
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
	ingestCmd.Flags().StringVarP(&ingestFile, "file", "f", "", "corpus CSV (default from config)")
}

func runIngest(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	path := cfg.FAQ.CSVPath
	if ingestFile != "" {
		path = ingestFile
	}

	corpus, err := ingest.LoadCSV(path)
	if err != nil {
		return err
	}

	embedder, err := embedding.NewFromConfig(cfg.Embedding)
	if err != nil {
		return fmt.Errorf("configure embedder: %w", err)
	}

	store, err := faqstore.New(cfg.FAQ.VectorsDir, cfg.FAQ.Collection, embedder)
	if err != nil {
		return fmt.Errorf("open FAQ store: %w", err)
	}

	if store.Count() > 0 {
		fmt.Printf("Collection %q already has %d pairs, nothing to do\n", cfg.FAQ.Collection, store.Count())
		return nil
	}

	bar := progressbar.NewOptions(len(corpus),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(false),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("[cyan]Embedding[reset]"),
		progressbar.OptionOnCompletion(func() {
			fmt.Println()
		}),
	)
	store.Progress = func(done, total int) {
		_ = bar.Add(1)
	}

	if err := store.Ingest(cmd.Context(), corpus); err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}

	fmt.Printf("Ingested %d pairs into collection %q\n", store.Count(), cfg.FAQ.Collection)
	return nil
}
