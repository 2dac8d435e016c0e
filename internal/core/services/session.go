package services

import (
	"context"
	"fmt"
	"iter"
	"strings"
	"sync"
	"time"

	"github.com/veredicto-labs/autos/internal/chunker"
	"github.com/veredicto-labs/autos/internal/core/domain"
	"github.com/veredicto-labs/autos/internal/core/ports/driven"
	"github.com/veredicto-labs/autos/internal/core/ports/driving"
	"github.com/veredicto-labs/autos/internal/logger"
)

// Ensure Session implements the driving ports.
var (
	_ driving.IngestService = (*Session)(nil)
	_ driving.AskService    = (*Session)(nil)
	_ driving.FAQService    = (*Session)(nil)
)

// NoCollectionMessage guides the user when a question arrives before any
// successful ingestion.
const NoCollectionMessage = "Por favor, processe um documento jurídico válido antes de fazer perguntas."

// Session is the top-level controller of one interactive session. It owns
// the current collection reference and the extraction-method selection,
// the only mutable state in the core. Ingestion is a sequential pipeline;
// a new load supersedes the previous collection without deleting it.
type Session struct {
	extractor  driven.Extractor
	validator  *Validator
	classifier *Classifier
	splitter   *chunker.Splitter
	embedder   driven.EmbeddingService
	store      driven.CollectionStore
	engine     *Engine
	faq        *FAQRunner

	mu      sync.Mutex
	current driven.Collection
	method  domain.ExtractionMethod

	// now is swappable in tests for deterministic collection names.
	now func() time.Time
}

// NewSession creates a new session controller with the default extraction
// method.
func NewSession(
	extractor driven.Extractor,
	validator *Validator,
	classifier *Classifier,
	splitter *chunker.Splitter,
	embedder driven.EmbeddingService,
	store driven.CollectionStore,
	engine *Engine,
	faq *FAQRunner,
) *Session {
	return &Session{
		extractor:  extractor,
		validator:  validator,
		classifier: classifier,
		splitter:   splitter,
		embedder:   embedder,
		store:      store,
		engine:     engine,
		faq:        faq,
		method:     domain.MethodOCR,
		now:        time.Now,
	}
}

// SetMethod selects the extraction strategy for subsequent loads.
func (s *Session) SetMethod(method domain.ExtractionMethod) error {
	if !method.Valid() {
		return fmt.Errorf("%w: unknown extraction method %q", domain.ErrInvalidInput, method)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.method = method
	logger.Info("Extraction method set to %s", method)
	return nil
}

// Method returns the currently selected extraction strategy.
func (s *Session) Method() domain.ExtractionMethod {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.method
}

// CollectionName returns the name of the active collection, or "" when no
// document has been loaded.
func (s *Session) CollectionName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return ""
	}
	return s.current.Name()
}

// Load runs the ingestion pipeline for the PDF at pdfPath. The returned
// sequence yields one status per stage and is finite: it ends with a done
// event, or with a failed event at the first failing stage. Nothing is
// persisted unless every stage succeeds.
func (s *Session) Load(ctx context.Context, pdfPath string) iter.Seq[domain.IngestStatus] {
	return func(yield func(domain.IngestStatus) bool) {
		logger.Section("Ingestion")
		logger.Info("Loading %s", pdfPath)

		if !yield(domain.IngestStatus{
			Stage:   domain.StageExtract,
			Message: "Iniciando carregamento e validação do documento...",
		}) {
			return
		}

		text, err := s.extractor.Extract(ctx, pdfPath, s.Method())
		if err != nil || strings.TrimSpace(text) == "" {
			if err == nil {
				err = domain.ErrExtractionFailed
			}
			logger.Error("Extraction failed: %v", err)
			yield(domain.IngestStatus{
				Stage:   domain.StageFailed,
				Message: "Não foi possível extrair texto do PDF.",
				Err:     fmt.Errorf("extracting %s: %w", pdfPath, err),
			})
			return
		}

		if !yield(domain.IngestStatus{
			Stage:   domain.StageValidate,
			Message: "Validando o contexto do documento...",
		}) {
			return
		}

		isValid, rationale, err := s.validator.Validate(ctx, text)
		if err != nil {
			yield(domain.IngestStatus{
				Stage:   domain.StageFailed,
				Message: "Não foi possível validar o documento.",
				Err:     fmt.Errorf("validating document: %w", err),
			})
			return
		}
		if !isValid {
			// A dedicated prompt explains the rejection better than the
			// verdict reply; fall back to it when that call fails.
			reason, reasonErr := s.validator.RejectionReason(ctx, text)
			if reasonErr != nil || reason == "" {
				reason = rationale
			}
			yield(domain.IngestStatus{
				Stage:   domain.StageFailed,
				Message: "O documento não está relacionado ao contexto jurídico. Razão: " + reason,
				Err:     fmt.Errorf("%w: %s", domain.ErrValidationRejected, reason),
			})
			return
		}

		if !yield(domain.IngestStatus{
			Stage:   domain.StageClassify,
			Message: "Documento validado. Classificando o processo...",
		}) {
			return
		}

		classification := s.classifier.Classify(ctx, text)
		logger.Info("Classified as %s / %s", classification.CaseType, classification.CaseStatus)

		chunks := s.splitter.Split(text, domain.ChunkMetadata{
			Source:     pdfPath,
			CaseType:   classification.CaseType,
			CaseStatus: classification.CaseStatus,
		})
		if len(chunks) == 0 {
			yield(domain.IngestStatus{
				Stage:   domain.StageFailed,
				Message: "Nenhum documento foi carregado.",
				Err:     domain.ErrExtractionFailed,
			})
			return
		}

		if !yield(domain.IngestStatus{
			Stage:   domain.StageEmbed,
			Message: "Documento validado. Criando embeddings...",
		}) {
			return
		}

		texts := make([]string, len(chunks))
		for i, chunk := range chunks {
			texts[i] = chunk.Content
		}
		embeddings, err := s.embedder.EmbedBatch(ctx, texts)
		if err != nil {
			yield(domain.IngestStatus{
				Stage:   domain.StageFailed,
				Message: "O serviço de embeddings não está disponível.",
				Err:     fmt.Errorf("%w: %v", domain.ErrEmbeddingUnavailable, err),
			})
			return
		}
		for i := range chunks {
			chunks[i].Embedding = embeddings[i]
		}

		if !yield(domain.IngestStatus{
			Stage:   domain.StageIndex,
			Message: "Embeddings criados. Adicionando documentos à coleção...",
		}) {
			return
		}

		name := domain.CollectionName(s.now())
		coll, err := s.store.CreateOrGet(ctx, name)
		if err != nil {
			yield(domain.IngestStatus{
				Stage:   domain.StageFailed,
				Message: "Não foi possível criar a coleção.",
				Err:     fmt.Errorf("creating collection %s: %w", name, err),
			})
			return
		}
		if err := coll.Add(ctx, chunks); err != nil {
			yield(domain.IngestStatus{
				Stage:   domain.StageFailed,
				Message: "Não foi possível indexar o documento.",
				Err:     fmt.Errorf("adding chunks to %s: %w", name, err),
			})
			return
		}

		s.mu.Lock()
		s.current = coll
		s.mu.Unlock()
		logger.Info("Collection %s ready with %d chunks", name, len(chunks))

		yield(domain.IngestStatus{
			Stage:   domain.StageDone,
			Message: "Contexto criado com sucesso. Pronto para perguntas!",
		})
	}
}

// activeCollection returns the collection questions run against. When no
// document was loaded in this process it resumes the newest non-empty
// collection from the store, so load and ask work as separate commands.
func (s *Session) activeCollection(ctx context.Context) driven.Collection {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil {
		return s.current
	}

	names, err := s.store.ListCollections(ctx)
	if err != nil {
		logger.Warn("Listing collections failed: %v", err)
		return nil
	}
	for _, name := range names {
		coll, err := s.store.CreateOrGet(ctx, name)
		if err != nil {
			continue
		}
		count, err := coll.Count(ctx)
		if err != nil || count == 0 {
			continue
		}
		logger.Info("Resumed collection %s with %d chunks", name, count)
		s.current = coll
		return coll
	}
	return nil
}

// Ask answers a free-text question about the loaded document. Without an
// active or resumable collection it returns the user-guidance message and
// makes no backend call.
func (s *Session) Ask(ctx context.Context, question string) (string, error) {
	coll := s.activeCollection(ctx)
	if coll == nil {
		logger.Warn("Question asked before any document was loaded")
		return NoCollectionMessage, nil
	}

	return s.engine.Answer(ctx, question, coll)
}

// RunFAQ runs the fixed question sequence against the loaded document.
func (s *Session) RunFAQ(ctx context.Context) (domain.FAQReport, error) {
	coll := s.activeCollection(ctx)
	if coll == nil {
		return domain.FAQReport{}, domain.ErrNoActiveCollection
	}

	return s.faq.Run(ctx, coll)
}
