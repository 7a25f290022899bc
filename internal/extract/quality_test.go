package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuality_ActionVerbOccurrences(t *testing.T) {
	text := "Developed the API. Developed the CLI. Implemented caching."
	quality := Quality(text)

	// Occurrences are counted, not just presence.
	assert.Equal(t, 3, quality.ActionVerbCount)
	assert.ElementsMatch(t, []string{"developed", "implemented"}, quality.ActionVerbsUsed)
}

func TestQuality_WeakPhrases(t *testing.T) {
	text := "Responsible for deployments. Helped with releases. Was responsible for monitoring."
	quality := Quality(text)

	assert.Equal(t, 3, quality.WeakWordCount)
	assert.ElementsMatch(t, []string{"responsible for", "helped"}, quality.WeakWordsFound)
}

func TestQuality_QuantifiableAchievements(t *testing.T) {
	text := "Increased throughput by 40% and saved $10000 while supporting 200 users"
	quality := Quality(text)

	assert.Equal(t, 3, quality.QuantifiableAchievements)
}

func TestQuality_WordAndSentenceCounts(t *testing.T) {
	quality := Quality("One two three. Four five!")

	assert.Equal(t, 5, quality.WordCount)
	assert.Equal(t, 2, quality.SentenceCount)
}

func TestQuality_SufficientContentThreshold(t *testing.T) {
	short := Quality(strings.Repeat("word ", 199))
	long := Quality(strings.Repeat("word ", 200))

	assert.False(t, short.HasSufficientContent)
	assert.True(t, long.HasSufficientContent)
}

func TestQuality_EmptyText(t *testing.T) {
	quality := Quality("")

	assert.Zero(t, quality.WordCount)
	assert.Zero(t, quality.SentenceCount)
	assert.Zero(t, quality.ActionVerbCount)
	assert.Zero(t, quality.WeakWordCount)
	assert.Zero(t, quality.QuantifiableAchievements)
	assert.False(t, quality.HasSufficientContent)
	assert.Empty(t, quality.ActionVerbsUsed)
	assert.Empty(t, quality.WeakWordsFound)
}

func TestEducation_KeywordsAndDegree(t *testing.T) {
	edu := Education("Bachelor of Science in Computer Science, State University")

	assert.True(t, edu.HasDegree)
	assert.Contains(t, edu.KeywordsFound, "bachelor")
	assert.Contains(t, edu.KeywordsFound, "computer science")
	assert.Contains(t, edu.KeywordsFound, "university")
}

func TestEducation_CertificationWithoutDegree(t *testing.T) {
	edu := Education("AWS Certified Solutions Architect")

	assert.False(t, edu.HasDegree)
	assert.Contains(t, edu.KeywordsFound, "certified")
}

func TestEducation_EmptyText(t *testing.T) {
	edu := Education("")

	assert.False(t, edu.HasDegree)
	assert.Empty(t, edu.KeywordsFound)
}
