// Package extract derives structured signals from raw resume text and its
// normalized tokens: skills by category, experience duration, contact fields,
// education markers, and writing-quality metrics. Every extractor is a total
// function over string input; malformed or empty text yields zero-valued
// results, never an error.
package extract

import (
	"strings"

	"github.com/jonathan/resume-insight/internal/taxonomy"
)

// Skills matches every taxonomy skill phrase against both the lowercased raw
// text and the space-joined token sequence, preserving taxonomy order.
// Categories with no matches are omitted. The dual-source check exists
// because multi-word phrases ("machine learning") survive only in raw text,
// while some lemmatized single-word skills appear only in the token form.
func Skills(text string, tokens []string, tax *taxonomy.Taxonomy) map[string][]string {
	textLower := strings.ToLower(text)
	tokensText := strings.Join(tokens, " ")

	found := make(map[string][]string)
	for _, cat := range tax.Categories() {
		var matched []string
		for _, skill := range cat.Skills {
			if strings.Contains(textLower, skill) || strings.Contains(tokensText, skill) {
				matched = append(matched, skill)
			}
		}
		if len(matched) > 0 {
			found[cat.Name] = matched
		}
	}
	return found
}

// FlattenSkills collapses a skills-by-category mapping into a flat list,
// following taxonomy category order.
func FlattenSkills(byCategory map[string][]string, tax *taxonomy.Taxonomy) []string {
	flat := make([]string, 0)
	for _, cat := range tax.Categories() {
		flat = append(flat, byCategory[cat.Name]...)
	}
	return flat
}
