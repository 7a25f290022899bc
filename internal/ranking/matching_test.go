package ranking

import (
	"math"
	"testing"

	"github.com/jonathan/resume-insight/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestMatchScore_EmptyJobDescription(t *testing.T) {
	analysis := &types.Analysis{Skills: []string{"python"}}

	assert.Equal(t, 0.0, MatchScore(analysis, ""))
	assert.Equal(t, 0.0, MatchScore(analysis, "   \n "))
	// Stopword-only job text normalizes to zero tokens.
	assert.Equal(t, 0.0, MatchScore(analysis, "the and of with"))
}

func TestMatchScore_SkillAndCategoryBonuses(t *testing.T) {
	analysis := &types.Analysis{
		Skills: []string{"python", "aws", "docker"},
		SkillsByCategory: map[string][]string{
			"programming_languages": {"python"},
			"cloud_devops":          {"aws", "docker"},
		},
		Keywords: []string{"python", "aws", "docker", "engineer"},
	}
	jobText := "Looking for a Python developer with AWS and Docker experience"

	score := MatchScore(analysis, jobText)

	// Job tokens: looking, python, developer, aws, docker, experience.
	// Overlap: python, aws, docker = 3/6 = 50%.
	// Skill bonus: all 3 skills appear literally = 15. Category bonus: 2*2 = 4.
	assert.InDelta(t, 69.0, score, 0.001)
}

func TestMatchScore_ClampedAt100(t *testing.T) {
	analysis := &types.Analysis{
		Skills:   []string{"python", "aws", "docker", "kubernetes", "terraform", "linux"},
		Keywords: []string{"python", "aws", "docker", "kubernetes", "terraform", "linux"},
		SkillsByCategory: map[string][]string{
			"programming_languages": {"python"},
			"cloud_devops":          {"aws", "docker", "kubernetes", "terraform", "linux"},
		},
	}
	jobText := "python aws docker kubernetes terraform linux"

	score := MatchScore(analysis, jobText)
	assert.Equal(t, 100.0, score)
}

func TestMatchScore_RoundedToTwoDecimals(t *testing.T) {
	analysis := &types.Analysis{
		Skills:   []string{"go"},
		Keywords: []string{"go"},
		SkillsByCategory: map[string][]string{
			"programming_languages": {"go"},
		},
	}
	// 7 job tokens, 1 overlap: 1/7*100 = 14.2857... + 5 skill + 2 category.
	jobText := "go developer shipping resilient network tooling daily"

	score := MatchScore(analysis, jobText)

	assert.InDelta(t, 21.29, score, 0.001)
	assert.Equal(t, score, math.Round(score*100)/100)
}

func TestMatchScore_SkillBonusCap(t *testing.T) {
	skills := []string{"python", "java", "ruby", "rust", "scala", "php", "kotlin"}
	analysis := &types.Analysis{
		Skills:           skills,
		Keywords:         []string{},
		SkillsByCategory: map[string][]string{"programming_languages": skills},
	}
	// All 7 skills literally present; bonus is capped at 25, not 35.
	jobText := "python java ruby rust scala php kotlin"

	score := MatchScore(analysis, jobText)

	// Overlap: all 7 of 7 tokens match via lowercased skills = 100, clamped.
	assert.Equal(t, 100.0, score)

	// Remove token overlap to isolate the bonus arithmetic.
	noOverlap := &types.Analysis{
		Skills:           skills,
		SkillsByCategory: map[string][]string{"programming_languages": skills},
	}
	jobWithSkillsEmbedded := "seeking pythonic javallic rubyist rustacean scalable phpish kotlinish engineer"
	bonusScore := MatchScore(noOverlap, jobWithSkillsEmbedded)

	// No token overlap, but each skill is a literal substring of the job
	// text: bonus capped at 25, plus 2 for the single category.
	assert.InDelta(t, 27.0, bonusScore, 0.001)
}
