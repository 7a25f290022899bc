package ranking

import (
	"testing"

	"github.com/jonathan/resume-insight/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestResumeScore_ZeroSignalInput(t *testing.T) {
	score := ResumeScore(nil, types.QualityMetrics{}, types.Education{}, "0")

	// Only the base experience floor contributes.
	assert.Equal(t, 5, score)
}

func TestResumeScore_SkillCapAtTen(t *testing.T) {
	nine := map[string][]string{"a": {"1", "2", "3", "4", "5", "6", "7", "8", "9"}}
	ten := map[string][]string{"a": {"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}}
	twenty := map[string][]string{"a": {"1", "2", "3", "4", "5", "6", "7", "8", "9", "10",
		"11", "12", "13", "14", "15", "16", "17", "18", "19", "20"}}

	base := ResumeScore(nil, types.QualityMetrics{}, types.Education{}, "0")
	assert.Equal(t, base+27+2, ResumeScore(nine, types.QualityMetrics{}, types.Education{}, "0"))
	assert.Equal(t, base+30+2, ResumeScore(ten, types.QualityMetrics{}, types.Education{}, "0"))
	// Skill contribution is capped at 30.
	assert.Equal(t, base+30+2, ResumeScore(twenty, types.QualityMetrics{}, types.Education{}, "0"))
}

func TestResumeScore_ExperienceTiers(t *testing.T) {
	score := func(years string) int {
		return ResumeScore(nil, types.QualityMetrics{}, types.Education{}, years)
	}

	assert.Equal(t, 5, score("0"))
	assert.Equal(t, 10, score("1"))
	assert.Equal(t, 10, score("2"))
	assert.Equal(t, 15, score("3"))
	assert.Equal(t, 15, score("4"))
	assert.Equal(t, 20, score("5"))
	assert.Equal(t, 20, score("30"))
}

func TestResumeScore_EducationTiers(t *testing.T) {
	degree := types.Education{KeywordsFound: []string{"bachelor"}, HasDegree: true}
	keywordsOnly := types.Education{KeywordsFound: []string{"certified"}}

	base := ResumeScore(nil, types.QualityMetrics{}, types.Education{}, "0")
	assert.Equal(t, base+15, ResumeScore(nil, types.QualityMetrics{}, degree, "0"))
	assert.Equal(t, base+8, ResumeScore(nil, types.QualityMetrics{}, keywordsOnly, "0"))
}

func TestResumeScore_ContentAndWeakWordBalance(t *testing.T) {
	quality := types.QualityMetrics{
		HasSufficientContent:     true,
		ActionVerbCount:          10, // capped at +10
		QuantifiableAchievements: 10, // capped at +5
		WeakWordCount:            10, // capped at -10
	}

	base := ResumeScore(nil, types.QualityMetrics{}, types.Education{}, "0")
	assert.Equal(t, base+10+10+5-10, ResumeScore(nil, quality, types.Education{}, "0"))
}

func TestResumeScore_CategoryDiversityCap(t *testing.T) {
	five := map[string][]string{"a": {"x"}, "b": {"x"}, "c": {"x"}, "d": {"x"}, "e": {"x"}}
	six := map[string][]string{"a": {"x"}, "b": {"x"}, "c": {"x"}, "d": {"x"}, "e": {"x"}, "f": {"x"}}

	// 5 skills * 3 = 15 skill points in the five-category case.
	assert.Equal(t, 5+15+10, ResumeScore(five, types.QualityMetrics{}, types.Education{}, "0"))
	// Diversity bonus stays capped at 10 while skill points keep growing.
	assert.Equal(t, 5+18+10, ResumeScore(six, types.QualityMetrics{}, types.Education{}, "0"))
}

func TestResumeScore_Bounded(t *testing.T) {
	rich := map[string][]string{
		"a": {"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"},
		"b": {"x"}, "c": {"x"}, "d": {"x"}, "e": {"x"}, "f": {"x"},
	}
	quality := types.QualityMetrics{
		HasSufficientContent:     true,
		ActionVerbCount:          50,
		QuantifiableAchievements: 50,
	}
	degree := types.Education{HasDegree: true}

	score := ResumeScore(rich, quality, degree, "20")
	assert.LessOrEqual(t, score, 100)
	assert.GreaterOrEqual(t, score, 0)
}

func TestResumeScore_UnparsableYearsCountAsZero(t *testing.T) {
	assert.Equal(t, 5, ResumeScore(nil, types.QualityMetrics{}, types.Education{}, "not-a-number"))
}
