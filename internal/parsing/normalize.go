// Package parsing provides text normalization for resume and job description
// analysis: tokenization, stopword filtering, lemmatization, and sentence
// segmentation. All functions are pure over the read-only lexicons in
// internal/taxonomy.
package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-insight/internal/taxonomy"
)

// wordPattern matches maximal runs of letters and digits. Punctuation-bearing
// units ("c++", "n't") never survive the alphanumeric filter, so splitting on
// non-alphanumeric boundaries up front is equivalent.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}]+`)

// sentencePattern matches sentence-terminating punctuation runs.
var sentencePattern = regexp.MustCompile(`[.!?]+`)

// Normalize lowercases text, tokenizes it into word units, drops stopwords
// and single-character tokens, and lemmatizes the survivors. Empty input
// yields an empty (non-nil) slice.
func Normalize(text string) []string {
	lowered := strings.ToLower(text)
	words := wordPattern.FindAllString(lowered, -1)

	tokens := make([]string, 0, len(words))
	for _, word := range words {
		if len(word) <= 1 || taxonomy.Stopwords[word] {
			continue
		}
		tokens = append(tokens, Lemmatize(word))
	}
	return tokens
}

// TokenSet returns the normalized tokens of text as a set.
func TokenSet(text string) map[string]bool {
	tokens := Normalize(text)
	set := make(map[string]bool, len(tokens))
	for _, token := range tokens {
		set[token] = true
	}
	return set
}

// SentenceCount segments text on terminal punctuation and counts non-empty
// sentences. Text with content but no terminal punctuation counts as one
// sentence.
func SentenceCount(text string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}

	count := 0
	for _, segment := range sentencePattern.Split(text, -1) {
		if strings.TrimSpace(segment) != "" {
			count++
		}
	}
	if count == 0 {
		// Only punctuation; treat the whole text as a single sentence.
		return 1
	}
	return count
}

// WordCount counts whitespace-separated words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
