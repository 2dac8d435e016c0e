package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/veredicto-labs/autos/internal/core/ports/driven"
	"github.com/veredicto-labs/autos/internal/logger"
)

// systemMessage pins the output language regardless of the model's default.
const systemMessage = "Você é um assistente que responde exclusivamente em português do Brasil."

// answerPrefix is the marker some models echo back before the actual
// answer. It is stripped from replies.
const answerPrefix = "Resposta em português do Brasil:"

const generatePromptTemplate = `Instruções: Responda à pergunta com base no contexto fornecido. Responda sempre em português do Brasil.

Contexto: %s

Pergunta: %s

Resposta em português do Brasil:`

// Generator wraps the chat backend with the fixed answer instruction.
// Transport failures are fail-soft: the error detail comes back as a
// user-facing answer string, so the session stays usable.
type Generator struct {
	llm driven.LLMService
}

// NewGenerator creates a new answer generator.
func NewGenerator(llm driven.LLMService) *Generator {
	return &Generator{llm: llm}
}

// Generate produces a cleaned answer to the question over the given
// context.
func (g *Generator) Generate(ctx context.Context, question, contextText string) string {
	prompt := fmt.Sprintf(generatePromptTemplate, contextText, question)

	response, err := g.llm.Chat(ctx, []driven.ChatMessage{
		{Role: "system", Content: systemMessage},
		{Role: "user", Content: prompt},
	})
	if err != nil {
		logger.Error("LLM call failed: %v", err)
		return fmt.Sprintf("Ocorreu um erro ao usar o Ollama: %v", err)
	}

	return cleanAnswer(response)
}

// cleanAnswer strips the echoed answer prefix, keeping only the text after
// its last occurrence.
func cleanAnswer(response string) string {
	if idx := strings.LastIndex(response, answerPrefix); idx >= 0 {
		response = response[idx+len(answerPrefix):]
	}
	return strings.TrimSpace(response)
}
