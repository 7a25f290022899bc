package ranking

import (
	"math"
	"strings"

	"github.com/jonathan/resume-insight/internal/parsing"
	"github.com/jonathan/resume-insight/internal/types"
)

// Skill and category bonuses applied on top of the token-overlap percentage.
const (
	skillBonusEach    = 5
	skillBonusCap     = 25
	categoryBonusEach = 2
)

// MatchScore computes a 0-100 similarity score between an analyzed resume
// and a job description. It is a pure function: regenerating suggestions
// with match context is the pipeline's job, not the matcher's.
//
// The score is the token-overlap percentage of job tokens covered by resume
// keywords and skills, plus a bonus per skill literally present in the job
// text (capped) and a small bonus per matched skill category, clamped to 100
// and rounded to 2 decimal places. An empty or stopword-only job description
// scores 0.
func MatchScore(analysis *types.Analysis, jobText string) float64 {
	jobTokens := parsing.TokenSet(jobText)
	if len(jobTokens) == 0 {
		return 0.0
	}

	resumeTerms := make(map[string]bool, len(analysis.Keywords)+len(analysis.Skills))
	for _, keyword := range analysis.Keywords {
		resumeTerms[keyword] = true
	}
	for _, skill := range analysis.Skills {
		resumeTerms[strings.ToLower(skill)] = true
	}

	matching := 0
	for token := range jobTokens {
		if resumeTerms[token] {
			matching++
		}
	}
	matchPercentage := float64(matching) / float64(len(jobTokens)) * 100

	jobTextLower := strings.ToLower(jobText)
	skillMatches := 0
	for _, skill := range analysis.Skills {
		if strings.Contains(jobTextLower, skill) {
			skillMatches++
		}
	}
	skillBonus := skillMatches * skillBonusEach
	if skillBonus > skillBonusCap {
		skillBonus = skillBonusCap
	}

	categoryBonus := len(analysis.SkillsByCategory) * categoryBonusEach

	final := matchPercentage + float64(skillBonus) + float64(categoryBonus)
	if final > 100 {
		final = 100
	}
	return math.Round(final*100) / 100
}
