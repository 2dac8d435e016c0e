package domain

import (
	"fmt"
	"strings"
)

// FAQReport is the terminal state of an FAQ run: every question with its
// answer, in order.
type FAQReport struct {
	Questions []string
	Answers   []string
}

// Format renders the report as question/answer pairs, the shape shown to
// the user.
func (r FAQReport) Format() string {
	pairs := make([]string, 0, len(r.Questions))
	for i, q := range r.Questions {
		answer := ""
		if i < len(r.Answers) {
			answer = r.Answers[i]
		}
		pairs = append(pairs, fmt.Sprintf("P: %s\nR: %s", q, answer))
	}
	return strings.Join(pairs, "\n\n")
}
