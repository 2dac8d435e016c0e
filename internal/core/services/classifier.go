package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/veredicto-labs/autos/internal/core/domain"
	"github.com/veredicto-labs/autos/internal/core/ports/driven"
	"github.com/veredicto-labs/autos/internal/logger"
)

// classificationSampleSize bounds how much text is sent per label prompt.
const classificationSampleSize = 2000

const classifyPromptTemplate = `Analise o texto jurídico abaixo e escolha, entre as opções listadas, a que melhor o descreve.
Responda APENAS com uma das opções, exatamente como escrita, sem explicações.

Opções:
%s

Texto:
%s

Opção escolhida:`

// Classifier assigns case-type and case-status labels from the closed
// vocabularies in the domain package. It prompts the model constrained to
// the label set and falls back to keyword matching when the reply cannot
// be matched against it.
type Classifier struct {
	llm driven.LLMService
}

// NewClassifier creates a new document classifier.
func NewClassifier(llm driven.LLMService) *Classifier {
	return &Classifier{llm: llm}
}

// Classify returns both labels for the document text.
func (c *Classifier) Classify(ctx context.Context, text string) domain.ClassificationResult {
	return domain.ClassificationResult{
		CaseType:   c.ClassifyType(ctx, text),
		CaseStatus: c.ClassifyStatus(ctx, text),
	}
}

// ClassifyType returns the case-type label for the text.
func (c *Classifier) ClassifyType(ctx context.Context, text string) string {
	label := c.promptForLabel(ctx, text, domain.CaseTypes)
	if label != "" {
		return label
	}
	return fallbackCaseType(text)
}

// ClassifyStatus returns the case-status label for the text.
func (c *Classifier) ClassifyStatus(ctx context.Context, text string) string {
	label := c.promptForLabel(ctx, text, domain.CaseStatuses)
	if label != "" {
		return label
	}
	if match := domain.MatchLabel(text, domain.CaseStatuses); match != "" {
		return match
	}
	return domain.CaseStatusOther
}

// promptForLabel asks the model to pick one label from the vocabulary.
// Returns "" when the call fails or the reply matches no label.
func (c *Classifier) promptForLabel(ctx context.Context, text string, vocabulary []string) string {
	prompt := fmt.Sprintf(classifyPromptTemplate,
		"- "+strings.Join(vocabulary, "\n- "),
		truncateRunes(text, classificationSampleSize),
	)

	response, err := c.llm.Chat(ctx, []driven.ChatMessage{
		{Role: "user", Content: prompt},
	})
	if err != nil {
		logger.Warn("Classification chat failed: %v", err)
		return ""
	}

	return domain.MatchLabel(response, vocabulary)
}

// fallbackCaseType keyword-matches the document text against the type
// vocabulary. Appeal documents get the appeal-specific fallback: when the
// text mentions "recurso" but no specific appeal label matches, the
// generic appeal label is closer than the generic other.
func fallbackCaseType(text string) string {
	lower := strings.ToLower(text)

	if strings.Contains(lower, "recurso") {
		for _, label := range domain.CaseTypes {
			labelLower := strings.ToLower(label)
			if strings.HasPrefix(labelLower, "recurso") && strings.Contains(lower, labelLower) {
				return label
			}
		}
		return domain.CaseTypeOtherAppeal
	}

	if match := domain.MatchLabel(text, domain.CaseTypes); match != "" {
		return match
	}
	return domain.CaseTypeOther
}
