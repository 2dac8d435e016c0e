package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/veredicto-labs/autos/internal/core/domain"
	"github.com/veredicto-labs/autos/internal/core/ports/driven"
	"github.com/veredicto-labs/autos/internal/logger"
)

// FAQQuestions is the fixed question sequence run against every document,
// in order.
var FAQQuestions = []string{
	"Qual é o tipo específico de recurso ou processo judicial mencionado nos autos?",
	"Qual é a situação atual do processo?",
	"Quais são os próximos passos processuais ou as consequências imediatas desta decisão para as partes envolvidas?",
}

// UnavailableAnswer replaces empty or degenerate model replies.
const UnavailableAnswer = "Informação não disponível no documento."

const faqPromptTemplate = `Analise cuidadosamente o documento jurídico fornecido e responda à seguinte pergunta:

%s

Contexto adicional:
Tipo de processo: %s
Situação: %s
%s

Instruções:
- Forneça uma resposta clara e concisa, baseada nas informações do documento.
- Se a informação exata não estiver disponível, forneça a informação mais próxima ou relevante que puder encontrar.
- Se não houver absolutamente nenhuma informação relevante, responda "Informação não disponível no documento."

Resposta:`

// FAQRunner walks the fixed question sequence over one collection. The
// first two questions short-circuit on the classification metadata cached
// with the chunks, without a model call. Later questions see the prior
// question/answer pairs, so answers can build on each other.
type FAQRunner struct {
	engine *Engine
}

// NewFAQRunner creates a new FAQ runner.
func NewFAQRunner(engine *Engine) *FAQRunner {
	return &FAQRunner{engine: engine}
}

// Run executes the question sequence against the collection and returns
// the ordered report.
func (f *FAQRunner) Run(ctx context.Context, coll driven.Collection) (domain.FAQReport, error) {
	logger.Section("FAQ")

	caseType, caseStatus, err := cachedClassification(ctx, coll)
	if err != nil {
		return domain.FAQReport{}, err
	}

	report := domain.FAQReport{Questions: FAQQuestions}
	var priorPairs strings.Builder

	for i, question := range FAQQuestions {
		logger.Debug("FAQ question %d", i+1)

		var answer string
		switch {
		case i == 0 && caseType != "":
			answer = "O tipo de processo/recurso identificado é: " + caseType
		case i == 1 && caseStatus != "":
			answer = "A situação atual do processo é: " + caseStatus
		default:
			prompt := fmt.Sprintf(faqPromptTemplate, question, caseType, caseStatus, priorPairs.String())
			raw, err := f.engine.Answer(ctx, prompt, coll)
			if err != nil {
				return domain.FAQReport{}, fmt.Errorf("answering FAQ question %d: %w", i+1, err)
			}
			answer = cleanFAQAnswer(raw)
		}

		report.Answers = append(report.Answers, answer)
		fmt.Fprintf(&priorPairs, "\nPergunta: %s\nResposta: %s\n", question, answer)
	}

	return report, nil
}

// cachedClassification reads the classification labels from the first
// stored chunk. All chunks of a document carry identical labels, so one
// is enough.
func cachedClassification(ctx context.Context, coll driven.Collection) (caseType, caseStatus string, err error) {
	chunks, err := coll.Get(ctx, 1)
	if err != nil {
		return "", "", fmt.Errorf("reading cached classification: %w", err)
	}
	if len(chunks) == 0 {
		return "", "", nil
	}
	return chunks[0].Metadata.CaseType, chunks[0].Metadata.CaseStatus, nil
}

// cleanFAQAnswer strips the leading answer label and replaces degenerate
// replies: empty answers, or answers that echo the question template back.
func cleanFAQAnswer(answer string) string {
	answer = strings.TrimSpace(answer)
	if len(answer) >= 9 && strings.EqualFold(answer[:9], "resposta:") {
		answer = strings.TrimSpace(answer[9:])
	}
	if answer == "" || strings.Contains(strings.ToLower(answer), "pergunta:") {
		return UnavailableAnswer
	}
	return answer
}
