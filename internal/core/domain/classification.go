package domain

import "strings"

// Closed vocabularies for document classification. The labels are the
// Brazilian legal-proceeding categories the model is constrained to.
var (
	// CaseTypes lists every case-type label, ending with the fallback.
	CaseTypes = []string{
		"Habeas Corpus",
		"Recurso de Habeas Corpus",
		"Mandado de Segurança",
		"Recurso em Mandado de Segurança",
		"Apelação Criminal",
		"Apelação Cível",
		"Agravo de Instrumento",
		"Agravo Regimental",
		"Embargos de Declaração",
		"Recurso Especial",
		"Recurso Extraordinário",
		"Ação Civil Pública",
		"Ação Penal",
		"Inquérito Policial",
		"Medida Cautelar",
		"Liminar",
		"Recurso Ordinário",
		"Conflito de Competência",
		"Suspensão de Segurança",
		"Reclamação",
		"Revisão Criminal",
		"Ação Rescisória",
		"Mandado de Injunção",
		"Ação Direta de Inconstitucionalidade",
		"Ação Declaratória de Constitucionalidade",
		CaseTypeOther,
	}

	// CaseStatuses lists every case-status label, ending with the fallback.
	CaseStatuses = []string{
		"Julgado e deferido",
		"Julgado e indeferido",
		"Condenado",
		"Negado",
		"Acatado",
		"Em trâmite",
		CaseStatusOther,
	}
)

// Fallback labels used when a classification reply cannot be matched
// against the vocabulary.
const (
	CaseTypeOther   = "Outro Processo"
	CaseStatusOther = "Outro"

	// CaseTypeOtherAppeal is returned when the text is recognisably an
	// appeal (recurso) but matches no specific appeal label.
	CaseTypeOtherAppeal = "Outro Recurso"
)

// ClassificationResult holds the per-document case labels.
type ClassificationResult struct {
	CaseType   string
	CaseStatus string
}

// MatchLabel returns the first label from the vocabulary whose lowercase
// form appears verbatim in the text, or "" when none does.
func MatchLabel(text string, vocabulary []string) string {
	lower := strings.ToLower(text)
	for _, label := range vocabulary {
		if strings.Contains(lower, strings.ToLower(label)) {
			return label
		}
	}
	return ""
}
