package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var askQuery string

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Answer a single question",
	Long: `Classify the question, run the matching chain and print the answer.

Examples:
  shopbot ask -q "What is the return policy?"
  shopbot ask -q "Nike shoes under 3000"`,
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
	askCmd.Flags().StringVarP(&askQuery, "query", "q", "", "question to answer (required)")
	askCmd.MarkFlagRequired("query")
}

func runAsk(cmd *cobra.Command, args []string) error {
	assistant, cleanup, err := buildAssistant(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	fmt.Println(assistant.Ask(cmd.Context(), askQuery))
	return nil
}
