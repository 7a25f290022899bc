package extract

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-insight/internal/parsing"
	"github.com/jonathan/resume-insight/internal/taxonomy"
	"github.com/jonathan/resume-insight/internal/types"
)

// sufficientContentWords is the minimum word count for a resume with enough
// substance to describe real accomplishments.
const sufficientContentWords = 200

// quantifiablePattern matches percentages, dollar amounts, or a number
// followed by a unit word, i.e. the shapes quantified achievements take.
var quantifiablePattern = regexp.MustCompile(`\d+%|\$\d+|\d+\s*(users|customers|clients|projects|team|people)`)

// Quality computes writing-quality metrics: word and sentence counts,
// strong-verb and weak-phrase occurrence counts (occurrences, not just
// presence), and the number of quantifiable-achievement mentions.
func Quality(text string) types.QualityMetrics {
	textLower := strings.ToLower(text)

	actionVerbCount := 0
	foundVerbs := make([]string, 0)
	for _, verb := range taxonomy.StrongActionVerbs {
		if strings.Contains(textLower, verb) {
			actionVerbCount += strings.Count(textLower, verb)
			foundVerbs = append(foundVerbs, verb)
		}
	}

	weakWordCount := 0
	foundWeak := make([]string, 0)
	for _, phrase := range taxonomy.WeakPhrases {
		if strings.Contains(textLower, phrase) {
			weakWordCount += strings.Count(textLower, phrase)
			foundWeak = append(foundWeak, phrase)
		}
	}

	wordCount := parsing.WordCount(text)

	return types.QualityMetrics{
		WordCount:                wordCount,
		SentenceCount:            parsing.SentenceCount(text),
		ActionVerbsUsed:          foundVerbs,
		ActionVerbCount:          actionVerbCount,
		WeakWordsFound:           foundWeak,
		WeakWordCount:            weakWordCount,
		QuantifiableAchievements: len(quantifiablePattern.FindAllString(textLower, -1)),
		HasSufficientContent:     wordCount >= sufficientContentWords,
	}
}
