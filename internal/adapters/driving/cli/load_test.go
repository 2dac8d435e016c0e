package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veredicto-labs/autos/internal/core/domain"
)

func TestLoadCmd_Use(t *testing.T) {
	assert.Equal(t, "load [pdf]", loadCmd.Use)
}

func TestLoadCmd_RequiresExactlyOneArg(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"load"})
	defer func() { rootCmd.SetArgs(nil) }()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestLoadCmd_HasMethodFlag(t *testing.T) {
	flag := loadCmd.Flags().Lookup("method")
	require.NotNil(t, flag)
	assert.Equal(t, "m", flag.Shorthand)
}

func TestLoadCmd_Success(t *testing.T) {
	session, cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"load", "processo.pdf"})
	defer func() { rootCmd.SetArgs(nil) }()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Equal(t, []string{"processo.pdf"}, session.loaded)
	assert.Contains(t, buf.String(), "Contexto criado com sucesso. Pronto para perguntas!")
}

func TestLoadCmd_SelectsMethod(t *testing.T) {
	session, cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"load", "--method", "pdf2image", "processo.pdf"})
	defer func() {
		rootCmd.SetArgs(nil)
		loadMethod = ""
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Equal(t, domain.MethodImage, session.method)
}

func TestLoadCmd_RejectsUnknownMethod(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"load", "--method", "scanner", "processo.pdf"})
	defer func() {
		rootCmd.SetArgs(nil)
		loadMethod = ""
	}()

	err := rootCmd.Execute()

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLoadCmd_FailedStageReturnsError(t *testing.T) {
	session, cleanup := setupTestServices()
	defer cleanup()

	session.statuses = []domain.IngestStatus{
		{Stage: domain.StageExtract, Message: "Iniciando carregamento e validação do documento..."},
		{
			Stage:   domain.StageFailed,
			Message: "Não foi possível extrair texto do PDF.",
			Err:     domain.ErrExtractionFailed,
		},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"load", "vazio.pdf"})
	defer func() { rootCmd.SetArgs(nil) }()

	err := rootCmd.Execute()

	assert.ErrorIs(t, err, domain.ErrExtractionFailed)
	assert.Contains(t, buf.String(), "Não foi possível extrair texto do PDF.")
}

func TestLoadCmd_NotConfigured(t *testing.T) {
	prev := ingestService
	ingestService = nil
	defer func() { ingestService = prev }()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"load", "processo.pdf"})
	defer func() { rootCmd.SetArgs(nil) }()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "ingest service not configured")
}
