package mcp

import (
	"context"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veredicto-labs/autos/internal/core/domain"
)

// mockSession fakes the three driving ports.
type mockSession struct {
	method    domain.ExtractionMethod
	statuses  []domain.IngestStatus
	answer    string
	askErr    error
	report    domain.FAQReport
	faqErr    error
	questions []string
}

func (m *mockSession) Load(_ context.Context, _ string) iter.Seq[domain.IngestStatus] {
	return func(yield func(domain.IngestStatus) bool) {
		for _, status := range m.statuses {
			if !yield(status) {
				return
			}
		}
	}
}

func (m *mockSession) SetMethod(method domain.ExtractionMethod) error {
	if !method.Valid() {
		return domain.ErrInvalidInput
	}
	m.method = method
	return nil
}

func (m *mockSession) Method() domain.ExtractionMethod { return m.method }

func (m *mockSession) Ask(_ context.Context, question string) (string, error) {
	m.questions = append(m.questions, question)
	return m.answer, m.askErr
}

func (m *mockSession) RunFAQ(context.Context) (domain.FAQReport, error) {
	return m.report, m.faqErr
}

func newTestServer(t *testing.T, session *mockSession) *Server {
	t.Helper()
	server, err := NewServer(&Ports{Ingest: session, Ask: session, FAQ: session})
	require.NoError(t, err)
	return server
}

func TestNewServer_RequiresPorts(t *testing.T) {
	session := &mockSession{}

	_, err := NewServer(&Ports{Ask: session, FAQ: session})
	assert.ErrorIs(t, err, ErrMissingIngestService)

	_, err = NewServer(&Ports{Ingest: session, FAQ: session})
	assert.ErrorIs(t, err, ErrMissingAskService)

	_, err = NewServer(&Ports{Ingest: session, Ask: session})
	assert.ErrorIs(t, err, ErrMissingFAQService)
}

func TestHandleLoad_Success(t *testing.T) {
	session := &mockSession{
		method: domain.MethodOCR,
		statuses: []domain.IngestStatus{
			{Stage: domain.StageExtract, Message: "extraindo"},
			{Stage: domain.StageDone, Message: "pronto"},
		},
	}
	server := newTestServer(t, session)

	_, output, err := server.handleLoad(context.Background(), nil, LoadInput{Path: "/tmp/doc.pdf"})
	require.NoError(t, err)
	assert.True(t, output.Success)
	assert.Equal(t, []string{"extraindo", "pronto"}, output.Statuses)
}

func TestHandleLoad_SetsMethod(t *testing.T) {
	session := &mockSession{
		statuses: []domain.IngestStatus{{Stage: domain.StageDone, Message: "pronto"}},
	}
	server := newTestServer(t, session)

	_, _, err := server.handleLoad(context.Background(), nil, LoadInput{
		Path:   "/tmp/doc.pdf",
		Method: "pdf2image",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.MethodImage, session.method)
}

func TestHandleLoad_InvalidMethod(t *testing.T) {
	server := newTestServer(t, &mockSession{})

	_, _, err := server.handleLoad(context.Background(), nil, LoadInput{
		Path:   "/tmp/doc.pdf",
		Method: "mistral",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestHandleLoad_Failure(t *testing.T) {
	session := &mockSession{
		statuses: []domain.IngestStatus{
			{Stage: domain.StageExtract, Message: "extraindo"},
			{Stage: domain.StageFailed, Message: "falhou", Err: domain.ErrExtractionFailed},
		},
	}
	server := newTestServer(t, session)

	_, output, err := server.handleLoad(context.Background(), nil, LoadInput{Path: "/tmp/doc.pdf"})
	require.NoError(t, err)
	assert.False(t, output.Success)
	assert.Contains(t, output.Statuses, "falhou")
}

func TestHandleAsk(t *testing.T) {
	session := &mockSession{answer: "O processo é um habeas corpus."}
	server := newTestServer(t, session)

	_, output, err := server.handleAsk(context.Background(), nil, AskInput{Question: "qual o tipo?"})
	require.NoError(t, err)
	assert.Equal(t, "O processo é um habeas corpus.", output.Answer)
	assert.Equal(t, []string{"qual o tipo?"}, session.questions)
}

func TestHandleFAQ(t *testing.T) {
	session := &mockSession{
		report: domain.FAQReport{
			Questions: []string{"Q1?"},
			Answers:   []string{"A1."},
		},
	}
	server := newTestServer(t, session)

	_, output, err := server.handleFAQ(context.Background(), nil, struct{}{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Q1?"}, output.Questions)
	assert.Equal(t, "P: Q1?\nR: A1.", output.Report)
}

func TestHandleFAQ_NoCollection(t *testing.T) {
	session := &mockSession{faqErr: domain.ErrNoActiveCollection}
	server := newTestServer(t, session)

	_, _, err := server.handleFAQ(context.Background(), nil, struct{}{})
	assert.ErrorIs(t, err, domain.ErrNoActiveCollection)
}

func TestServerInstructions_NameTheTools(t *testing.T) {
	for _, tool := range []string{"load_document", "ask_document", "run_faq"} {
		assert.Contains(t, serverInstructions, tool)
	}
}
