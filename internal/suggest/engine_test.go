package suggest

import (
	"strings"
	"testing"

	"github.com/jonathan/resume-insight/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// strongProfile triggers as few rules as possible: plenty of skills
// including cloud_devops, strong language metrics, degree present.
func strongProfile() (map[string][]string, types.QualityMetrics, types.Education) {
	byCategory := map[string][]string{
		"programming_languages": {"python", "go", "java"},
		"cloud_devops":          {"aws", "docker", "kubernetes"},
	}
	quality := types.QualityMetrics{
		WordCount:                450,
		SentenceCount:            30,
		ActionVerbCount:          8,
		QuantifiableAchievements: 4,
		HasSufficientContent:     true,
	}
	education := types.Education{KeywordsFound: []string{"bachelor"}, HasDegree: true}
	return byCategory, quality, education
}

func titles(suggestions []types.Suggestion) []string {
	out := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, s.Title)
	}
	return out
}

func TestGenerate_StrongResumeGetsOnlySummarySuggestion(t *testing.T) {
	byCategory, quality, education := strongProfile()

	suggestions := Generate(byCategory, quality, education, "5", nil)

	require.Len(t, suggestions, 1)
	assert.Equal(t, "Add Professional Summary", suggestions[0].Title)
	assert.Equal(t, types.PriorityLow, suggestions[0].Priority)
}

func TestGenerate_ZeroSignalInput(t *testing.T) {
	suggestions := Generate(nil, types.QualityMetrics{}, types.Education{}, "0", nil)

	got := titles(suggestions)
	assert.Contains(t, got, "Add More Technical Skills")
	assert.Contains(t, got, "Add Cloud/DevOps Skills")
	assert.Contains(t, got, "Add Quantifiable Results")
	assert.Contains(t, got, "Expand Resume Content")
	assert.Contains(t, got, "Highlight Education")
	assert.Contains(t, got, "Add Professional Summary")
	// No weak words found, so the weak-phrase rule stays silent.
	assert.NotContains(t, got, "Replace Weak Phrases")
}

func TestGenerate_SortedByPriorityAndCapped(t *testing.T) {
	quality := types.QualityMetrics{
		WeakWordCount:  2,
		WeakWordsFound: []string{"helped", "responsible for"},
	}

	suggestions := Generate(nil, quality, types.Education{}, "0", nil)

	assert.LessOrEqual(t, len(suggestions), 8)
	lastRank := 0
	for _, s := range suggestions {
		rank := priorityRank(s.Priority)
		assert.GreaterOrEqual(t, rank, lastRank, "suggestion %q out of priority order", s.Title)
		lastRank = rank
	}
}

func TestGenerate_WeakPhrasesListsAtMostThree(t *testing.T) {
	quality := types.QualityMetrics{
		WeakWordCount:  5,
		WeakWordsFound: []string{"helped", "assisted", "worked on", "participated", "exposure to"},
	}

	suggestions := Generate(nil, quality, types.Education{}, "0", nil)

	var weak *types.Suggestion
	for i := range suggestions {
		if suggestions[i].Title == "Replace Weak Phrases" {
			weak = &suggestions[i]
		}
	}
	require.NotNil(t, weak)
	assert.Contains(t, weak.Description, "helped, assisted, worked on")
	assert.NotContains(t, weak.Description, "participated")
}

func TestGenerate_MissingKeywordsRule(t *testing.T) {
	byCategory, quality, education := strongProfile()
	job := &JobContext{
		MatchScore: 40,
		JobText:    "Need strong Terraform and Elasticsearch administration background",
	}

	suggestions := Generate(byCategory, quality, education, "5", job)

	var missing *types.Suggestion
	for i := range suggestions {
		if suggestions[i].Title == "Add Missing Keywords" {
			missing = &suggestions[i]
		}
	}
	require.NotNil(t, missing)
	assert.Equal(t, types.PriorityHigh, missing.Priority)
	assert.Contains(t, missing.Description, "terraform")
	assert.Contains(t, missing.Description, "elasticsearch")
}

func TestGenerate_MissingKeywordsSkippedAboveThreshold(t *testing.T) {
	byCategory, quality, education := strongProfile()
	job := &JobContext{
		MatchScore: 85,
		JobText:    "Need strong Terraform and Elasticsearch administration background",
	}

	suggestions := Generate(byCategory, quality, education, "5", job)
	assert.NotContains(t, titles(suggestions), "Add Missing Keywords")
}

func TestGenerate_SummaryAlwaysPresent(t *testing.T) {
	cases := []struct {
		name    string
		quality types.QualityMetrics
	}{
		{"zero signal", types.QualityMetrics{}},
		{"weak heavy", types.QualityMetrics{WeakWordCount: 9, WeakWordsFound: []string{"helped"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			suggestions := Generate(nil, tc.quality, types.Education{}, "0", &JobContext{
				MatchScore: 10,
				JobText:    "Distributed systems engineer with Kafka streaming pipelines expertise",
			})
			assert.LessOrEqual(t, len(suggestions), 8)
			if len(suggestions) < 8 {
				assert.Contains(t, titles(suggestions), "Add Professional Summary")
			}
		})
	}
}

func TestMissingKeywords_TruncatesBeforeFiltering(t *testing.T) {
	// Seven candidate tokens; the first five are taken before the length
	// filter, so later long words never appear and short early words still
	// consume slots.
	jobText := "rare gem talk fast elasticsearch terraform observability"

	missing := missingKeywords(jobText, nil)

	// First five difference entries: rare, gem, talk, fast, elasticsearch.
	// The length filter then drops "gem", leaving four survivors.
	assert.Equal(t, []string{"rare", "talk", "fast", "elasticsearch"}, missing)
	assert.NotContains(t, missing, "terraform")
	assert.NotContains(t, missing, "observability")
}

func TestMissingKeywords_ExcludesSkillTokens(t *testing.T) {
	missing := missingKeywords("python and docker expertise", []string{"python", "docker"})
	assert.Equal(t, []string{"expertise"}, missing)
}

func TestGenerate_SkillCountInDescription(t *testing.T) {
	byCategory := map[string][]string{"programming_languages": {"go", "python"}}

	suggestions := Generate(byCategory, types.QualityMetrics{}, types.Education{}, "0", nil)

	found := false
	for _, s := range suggestions {
		if s.Title == "Add More Technical Skills" {
			found = true
			assert.True(t, strings.Contains(s.Description, "2 skills"), "description: %s", s.Description)
		}
	}
	assert.True(t, found)
}
