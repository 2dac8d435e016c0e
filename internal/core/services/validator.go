package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/veredicto-labs/autos/internal/core/ports/driven"
	"github.com/veredicto-labs/autos/internal/logger"
)

// validationSampleSize bounds how much text is sent to the model. The
// opening pages of a legal document carry the identifying language.
const validationSampleSize = 2000

// affirmativeToken is the leading token that marks an accepting reply.
const affirmativeToken = "SIM"

const validationPromptTemplate = `Analise cuidadosamente o seguinte texto e determine se ele pertence ao contexto de processos legais, judiciais ou jurídicos.
Responda apenas 'SIM' ou 'NÃO', seguido de uma breve justificativa.

Critérios para considerar o texto como jurídico:
1. Contém terminologia jurídica específica (ex: "habeas corpus", "mandado", "sentença", "réu", "juiz", "recurso", "denúncia").
2. Faz referências a leis, códigos ou procedimentos judiciais.
3. Descreve ou discute processos legais, decisões judiciais ou questões de direito.
4. Menciona instituições jurídicas como tribunais, varas, ou órgãos do judiciário.
5. Cita artigos de leis ou códigos penais.
6. Menciona crimes ou infrações legais.

O texto NÃO é jurídico se:
1. Apenas menciona termos como "lei" ou "justiça" em contextos não legais.
2. É um texto de ficção ou entretenimento que apenas menciona elementos jurídicos superficialmente.
3. É um texto sobre regras de jogos, mesmo que use palavras como "penalidade" ou "julgamento".

Texto para análise:
%s

O texto está relacionado a processos legais, judiciais ou jurídicos? Responda 'SIM' ou 'NÃO' e justifique brevemente.`

const rejectionPromptTemplate = `Analise o seguinte texto e explique brevemente por que ele não está relacionado a processos legais, judiciais ou jurídicos.

Texto para análise:
%s

Por que este texto não está relacionado ao contexto jurídico? Seja conciso em sua explicação.`

// Validator gates ingestion on juridical relevance. It is a strict binary
// gate: only a reply starting with the affirmative token accepts.
type Validator struct {
	llm driven.LLMService
}

// NewValidator creates a new context validator.
func NewValidator(llm driven.LLMService) *Validator {
	return &Validator{llm: llm}
}

// Validate asks the model whether the text is juridically relevant and
// returns the verdict with the model's rationale.
func (v *Validator) Validate(ctx context.Context, text string) (bool, string, error) {
	sample := truncateRunes(text, validationSampleSize)
	prompt := fmt.Sprintf(validationPromptTemplate, sample)

	response, err := v.llm.Chat(ctx, []driven.ChatMessage{
		{Role: "user", Content: prompt},
	})
	if err != nil {
		return false, "", fmt.Errorf("validation chat: %w", err)
	}

	isValid := strings.HasPrefix(strings.ToUpper(strings.TrimSpace(response)), affirmativeToken)
	if isValid {
		logger.Info("Document accepted by context validation")
	} else {
		logger.Warn("Document rejected by context validation")
	}

	return isValid, strings.TrimSpace(response), nil
}

// RejectionReason asks the model to explain why the text is out of the
// legal domain, for the user-facing rejection message.
func (v *Validator) RejectionReason(ctx context.Context, text string) (string, error) {
	sample := truncateRunes(text, validationSampleSize)
	prompt := fmt.Sprintf(rejectionPromptTemplate, sample)

	response, err := v.llm.Chat(ctx, []driven.ChatMessage{
		{Role: "user", Content: prompt},
	})
	if err != nil {
		return "", fmt.Errorf("rejection reason chat: %w", err)
	}

	return strings.TrimSpace(response), nil
}

// truncateRunes returns at most n runes of text.
func truncateRunes(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n])
}
