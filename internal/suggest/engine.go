// Package suggest generates prioritized, capped improvement suggestions from
// extracted resume signals and an optional job-match context.
package suggest

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/resume-insight/internal/parsing"
	"github.com/jonathan/resume-insight/internal/types"
)

// maxSuggestions caps the returned list.
const maxSuggestions = 8

// matchScoreThreshold is the match score below which missing-keyword
// suggestions are generated.
const matchScoreThreshold = 70

// JobContext carries the optional job-match inputs for rule evaluation.
type JobContext struct {
	MatchScore float64
	JobText    string
}

// priorityRank orders suggestions for the stable sort; unknown priorities
// sink to the end.
func priorityRank(priority string) int {
	switch priority {
	case types.PriorityHigh:
		return 0
	case types.PriorityMedium:
		return 1
	case types.PriorityLow:
		return 2
	default:
		return 3
	}
}

// Generate evaluates every suggestion rule independently, collects all that
// trigger, sorts them stably by priority, and truncates to the cap. It is a
// pure function; passing a nil job context skips the job-match rule.
func Generate(byCategory map[string][]string, quality types.QualityMetrics, education types.Education, experienceYears string, job *JobContext) []types.Suggestion {
	suggestions := make([]types.Suggestion, 0, maxSuggestions)

	allSkills := make([]string, 0)
	for _, skills := range byCategory {
		allSkills = append(allSkills, skills...)
	}

	if len(allSkills) < 5 {
		suggestions = append(suggestions, types.Suggestion{
			Category:    "Skills",
			Priority:    types.PriorityHigh,
			Title:       "Add More Technical Skills",
			Description: fmt.Sprintf("Your resume only mentions %d skills. Aim for 8-12 relevant skills to improve visibility.", len(allSkills)),
			Impact:      "+10-15% match score",
		})
	}

	if _, ok := byCategory["cloud_devops"]; !ok {
		suggestions = append(suggestions, types.Suggestion{
			Category:    "Skills",
			Priority:    types.PriorityMedium,
			Title:       "Add Cloud/DevOps Skills",
			Description: "Consider adding cloud platforms (AWS, Azure, GCP) or DevOps tools (Docker, Kubernetes) if you have experience with them.",
			Impact:      "+5-10% match score",
		})
	}

	if quality.WeakWordCount > 0 {
		shown := quality.WeakWordsFound
		if len(shown) > 3 {
			shown = shown[:3]
		}
		suggestions = append(suggestions, types.Suggestion{
			Category:    "Language",
			Priority:    types.PriorityHigh,
			Title:       "Replace Weak Phrases",
			Description: fmt.Sprintf("Found weak phrases: %s. Replace with strong action verbs like 'achieved', 'implemented', 'led'.", strings.Join(shown, ", ")),
			Impact:      "+5-8% readability",
		})
	}

	if quality.ActionVerbCount < 5 {
		suggestions = append(suggestions, types.Suggestion{
			Category:    "Language",
			Priority:    types.PriorityMedium,
			Title:       "Use More Action Verbs",
			Description: "Start bullet points with strong action verbs: 'Developed', 'Implemented', 'Optimized', 'Streamlined', 'Delivered'.",
			Impact:      "+5% impact",
		})
	}

	if quality.QuantifiableAchievements < 3 {
		suggestions = append(suggestions, types.Suggestion{
			Category:    "Achievements",
			Priority:    types.PriorityHigh,
			Title:       "Add Quantifiable Results",
			Description: "Include numbers and metrics: 'Increased performance by 40%', 'Managed team of 5', 'Reduced costs by $10K'.",
			Impact:      "+10-20% credibility",
		})
	}

	if !quality.HasSufficientContent {
		suggestions = append(suggestions, types.Suggestion{
			Category:    "Content",
			Priority:    types.PriorityHigh,
			Title:       "Expand Resume Content",
			Description: fmt.Sprintf("Your resume has only %d words. Aim for 400-600 words with detailed descriptions.", quality.WordCount),
			Impact:      "+15% completeness",
		})
	}

	if !education.HasDegree {
		suggestions = append(suggestions, types.Suggestion{
			Category:    "Education",
			Priority:    types.PriorityMedium,
			Title:       "Highlight Education",
			Description: "Ensure your education section clearly states your degree, major, and institution.",
			Impact:      "+3-5% completeness",
		})
	}

	if job != nil && job.JobText != "" && job.MatchScore < matchScoreThreshold {
		if missing := missingKeywords(job.JobText, allSkills); len(missing) > 0 {
			impact := len(missing) * 3
			if impact > 15 {
				impact = 15
			}
			suggestions = append(suggestions, types.Suggestion{
				Category:    "Job Match",
				Priority:    types.PriorityHigh,
				Title:       "Add Missing Keywords",
				Description: fmt.Sprintf("Consider adding these keywords from the job description: %s", strings.Join(missing, ", ")),
				Impact:      fmt.Sprintf("+%d%% match score", impact),
			})
		}
	}

	suggestions = append(suggestions, types.Suggestion{
		Category:    "Format",
		Priority:    types.PriorityLow,
		Title:       "Add Professional Summary",
		Description: "Start with a 2-3 sentence summary highlighting your experience level, key skills, and career goals.",
		Impact:      "+5% first impression",
	})

	sort.SliceStable(suggestions, func(i, j int) bool {
		return priorityRank(suggestions[i].Priority) < priorityRank(suggestions[j].Priority)
	})

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

// missingKeywords computes job tokens absent from the found-skills text.
// The first 5 entries of the difference are taken before the length filter,
// so fewer than 5 may survive; the truncate-then-filter order is kept for
// compatibility with historical output. The difference is ordered by first
// appearance in the job text so results are deterministic.
func missingKeywords(jobText string, foundSkills []string) []string {
	resumeTokens := parsing.TokenSet(strings.Join(foundSkills, " "))

	seen := make(map[string]bool)
	difference := make([]string, 0)
	for _, token := range parsing.Normalize(jobText) {
		if resumeTokens[token] || seen[token] {
			continue
		}
		seen[token] = true
		difference = append(difference, token)
	}

	if len(difference) > 5 {
		difference = difference[:5]
	}

	meaningful := make([]string, 0, len(difference))
	for _, keyword := range difference {
		if len(keyword) > 3 {
			meaningful = append(meaningful, keyword)
		}
	}
	return meaningful
}
