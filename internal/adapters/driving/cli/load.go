package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/veredicto-labs/autos/internal/core/domain"
)

var loadMethod string

var loadCmd = &cobra.Command{
	Use:   "load [pdf]",
	Short: "Ingest a legal PDF for questioning",
	Long: `Runs the ingestion pipeline for a legal-case PDF: text extraction,
juridical validation, classification, chunking, embedding and indexing.
A successful load supersedes the previously loaded document.`,
	Args: cobra.ExactArgs(1),
	RunE: runLoad,
}

func init() {
	loadCmd.Flags().StringVarP(&loadMethod, "method", "m", "",
		"extraction strategy: ocrmypdf (default) or pdf2image")
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	if loadMethod != "" {
		if err := ingestService.SetMethod(domain.ExtractionMethod(loadMethod)); err != nil {
			return fmt.Errorf("selecting extraction method: %w", err)
		}
	}

	// On a terminal, show every stage; piped output gets only the outcome.
	interactive := term.IsTerminal(int(os.Stdout.Fd()))

	var last domain.IngestStatus
	for status := range ingestService.Load(cmd.Context(), args[0]) {
		last = status
		if interactive && !status.Done() && !status.Failed() {
			cmd.Printf("  %s\n", status.Message)
		}
	}

	if last.Failed() {
		cmd.PrintErrf("%s\n", last.Message)
		return last.Err
	}

	cmd.Printf("%s\n", last.Message)
	return nil
}
