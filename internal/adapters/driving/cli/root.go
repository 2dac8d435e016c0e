// Package cli provides the command line interface for autos.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/veredicto-labs/autos/internal/core/ports/driving"
	"github.com/veredicto-labs/autos/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// verbose controls debug logging.
var verbose bool

// Injected driving ports. Set by the composition root before Execute.
var (
	ingestService driving.IngestService
	askService    driving.AskService
	faqService    driving.FAQService
)

// Model names shown by the version command, injected with the services.
var (
	chatModelName  string
	embedModelName string
)

// rootCmd is the base command for autos.
var rootCmd = &cobra.Command{
	Use:   "autos",
	Short: "Question legal PDF documents with a local LLM",
	Long: `autos ingests a legal-case PDF (OCR extraction, juridical validation,
classification, chunking, embedding) and answers questions about it with
retrieval-augmented generation against a local Ollama instance.

Typical session:
  autos load acordao.pdf
  autos ask "Qual é a situação atual do processo?"
  autos faq`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

// ServiceConfig carries everything the commands need from the composition
// root.
type ServiceConfig struct {
	Ingest     driving.IngestService
	Ask        driving.AskService
	FAQ        driving.FAQService
	ChatModel  string
	EmbedModel string
}

// SetServices injects the driving ports used by the commands.
func SetServices(cfg ServiceConfig) {
	ingestService = cfg.Ingest
	askService = cfg.Ask
	faqService = cfg.FAQ
	chatModelName = cfg.ChatModel
	embedModelName = cfg.EmbedModel
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
