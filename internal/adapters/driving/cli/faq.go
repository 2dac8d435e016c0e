package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/veredicto-labs/autos/internal/core/domain"
)

var faqCmd = &cobra.Command{
	Use:   "faq",
	Short: "Run the fixed FAQ sequence against the loaded document",
	Long: `Answers the three standard questions about the loaded document: case
type, case status and next procedural steps. The first two come from the
classification cached at load time and cost no model call.`,
	Args: cobra.NoArgs,
	RunE: runFAQ,
}

func init() {
	rootCmd.AddCommand(faqCmd)
}

func runFAQ(cmd *cobra.Command, _ []string) error {
	if faqService == nil {
		return errors.New("faq service not configured")
	}

	report, err := faqService.RunFAQ(cmd.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNoActiveCollection) {
			cmd.Println("Por favor, processe um documento jurídico válido antes de executar o FAQ.")
			return nil
		}
		return fmt.Errorf("running FAQ: %w", err)
	}

	cmd.Println(report.Format())
	return nil
}
