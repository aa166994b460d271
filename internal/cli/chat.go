package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Interactive question session",
	Long: `Read questions from stdin and answer them until EOF or "exit".
Each question is handled independently; there is no conversation memory.`,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	assistant, cleanup, err := buildAssistant(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	fmt.Println("Ask about products or store policies. Type \"exit\" to quit.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			continue
		}
		if query == "exit" || query == "quit" {
			break
		}
		fmt.Println(assistant.Ask(cmd.Context(), query))
	}
	return scanner.Err()
}
