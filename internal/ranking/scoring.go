// Package ranking computes the standalone resume-quality score and the
// resume-to-job match score. Both functions are pure and deterministic.
package ranking

import (
	"strconv"

	"github.com/jonathan/resume-insight/internal/types"
)

// Score caps per signal. The additive-with-caps design keeps any single
// signal from dominating while rewarding breadth across skills, content,
// experience, education, and category diversity.
const (
	skillPointsPerMatch = 3
	skillScoreCap       = 30

	sufficientContentPoints = 10
	actionVerbPointsEach    = 2
	actionVerbCap           = 10
	quantifiablePointsEach  = 2
	quantifiableCap         = 5

	weakWordPenaltyEach = 2
	weakWordPenaltyCap  = 10

	seniorExperiencePoints = 20
	midExperiencePoints    = 15
	juniorExperiencePoints = 10
	baseExperiencePoints   = 5

	degreePoints           = 15
	educationKeywordPoints = 8

	categoryPointsEach = 2
	categoryCap        = 10
)

func capped(value, perUnit, limit int) int {
	score := value * perUnit
	if score > limit {
		return limit
	}
	return score
}

// ResumeScore combines extractor outputs into a bounded 0-100 quality score.
func ResumeScore(byCategory map[string][]string, quality types.QualityMetrics, education types.Education, experienceYears string) int {
	score := 0

	// Skills (max 30).
	skillCount := 0
	for _, skills := range byCategory {
		skillCount += len(skills)
	}
	score += capped(skillCount, skillPointsPerMatch, skillScoreCap)

	// Content quality (max 25).
	if quality.HasSufficientContent {
		score += sufficientContentPoints
	}
	score += capped(quality.ActionVerbCount, actionVerbPointsEach, actionVerbCap)
	score += capped(quality.QuantifiableAchievements, quantifiablePointsEach, quantifiableCap)

	// Weak-word penalty (max -10).
	score -= capped(quality.WeakWordCount, weakWordPenaltyEach, weakWordPenaltyCap)

	// Experience (max 20). ExperienceYears is a string-encoded non-negative
	// integer; a parse failure counts as zero years.
	years, _ := strconv.Atoi(experienceYears)
	switch {
	case years >= 5:
		score += seniorExperiencePoints
	case years >= 3:
		score += midExperiencePoints
	case years >= 1:
		score += juniorExperiencePoints
	default:
		score += baseExperiencePoints
	}

	// Education (max 15).
	if education.HasDegree {
		score += degreePoints
	} else if len(education.KeywordsFound) > 0 {
		score += educationKeywordPoints
	}

	// Category diversity bonus (max 10).
	score += capped(len(byCategory), categoryPointsEach, categoryCap)

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
