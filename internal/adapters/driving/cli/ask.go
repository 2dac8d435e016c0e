package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var askShowElapsed bool

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question about the loaded document",
	Args:  cobra.ExactArgs(1),
	RunE:  runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askShowElapsed, "time", false, "print the answer latency")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if askService == nil {
		return errors.New("ask service not configured")
	}

	start := time.Now()
	answer, err := askService.Ask(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("answering question: %w", err)
	}

	cmd.Println(answer)
	if askShowElapsed {
		cmd.Printf("\n(%.1fs)\n", time.Since(start).Seconds())
	}
	return nil
}
