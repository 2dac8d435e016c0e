package services

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// Defaults for the widening re-rank pool.
const (
	defaultInitialK            = 5
	defaultStepK               = 5
	defaultMaxK                = 20
	defaultSimilarityThreshold = 0.3
)

// RerankConfig controls the lexical re-ranking pool. The constants are
// empirical tuning values, kept configurable rather than hard-coded.
type RerankConfig struct {
	InitialK            int
	StepK               int
	MaxK                int
	SimilarityThreshold float64
}

// withDefaults fills zero fields with the default pool parameters.
func (c RerankConfig) withDefaults() RerankConfig {
	if c.InitialK <= 0 {
		c.InitialK = defaultInitialK
	}
	if c.StepK <= 0 {
		c.StepK = defaultStepK
	}
	if c.MaxK <= 0 {
		c.MaxK = defaultMaxK
	}
	if c.SimilarityThreshold <= 0 {
		c.SimilarityThreshold = defaultSimilarityThreshold
	}
	return c
}

// termFrequency tokenizes text into lowercase words and counts them.
func termFrequency(text string) map[string]float64 {
	freq := make(map[string]float64)
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	for _, word := range words {
		freq[word]++
	}
	return freq
}

// lexicalSimilarity returns the cosine similarity of the term-frequency
// vectors of a and b, in [0, 1]. Texts sharing no words score 0.
func lexicalSimilarity(a, b string) float64 {
	freqA := termFrequency(a)
	freqB := termFrequency(b)
	if len(freqA) == 0 || len(freqB) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for word, countA := range freqA {
		normA += countA * countA
		if countB, ok := freqB[word]; ok {
			dot += countA * countB
		}
	}
	for _, countB := range freqB {
		normB += countB * countB
	}
	if dot == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// rankBySimilarity returns the indices of texts ordered by descending
// lexical similarity to the question, truncated to k. Ties keep input
// order.
func rankBySimilarity(question string, texts []string, k int) []int {
	indices := make([]int, len(texts))
	scores := make([]float64, len(texts))
	for i, text := range texts {
		indices[i] = i
		scores[i] = lexicalSimilarity(question, text)
	}

	sort.SliceStable(indices, func(i, j int) bool {
		return scores[indices[i]] > scores[indices[j]]
	})

	if len(indices) > k {
		indices = indices[:k]
	}
	return indices
}

// selectRelevant picks the candidate texts most lexically similar to the
// question, progressively widening the pool until the mean similarity to
// the question meets the threshold or the pool cap is reached. The loop
// always terminates: the pool never exceeds MaxK.
func selectRelevant(question string, texts []string, cfg RerankConfig) []string {
	cfg = cfg.withDefaults()
	if len(texts) == 0 {
		return nil
	}

	var selected []string
	for k := cfg.InitialK; k <= cfg.MaxK; k += cfg.StepK {
		indices := rankBySimilarity(question, texts, k)
		selected = make([]string, len(indices))
		for i, idx := range indices {
			selected[i] = texts[idx]
		}

		if meanSimilarity(question, selected) >= cfg.SimilarityThreshold {
			break
		}
	}
	return selected
}

// meanSimilarity averages the lexical similarity between the question and
// each selected text.
func meanSimilarity(question string, texts []string) float64 {
	if len(texts) == 0 {
		return 0
	}
	var total float64
	for _, text := range texts {
		total += lexicalSimilarity(question, text)
	}
	return total / float64(len(texts))
}
