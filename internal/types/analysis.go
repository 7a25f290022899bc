// Package types defines the value objects exchanged between the analysis
// pipeline, the suggestion engine, and the API surface.
package types

// Suggestion priorities, ordered from most to least urgent.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Suggestion is a single actionable improvement recommendation.
type Suggestion struct {
	Category    string `json:"category"`
	Priority    string `json:"priority"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
}

// Education holds the education signals found in a resume.
type Education struct {
	KeywordsFound []string `json:"keywords_found"`
	HasDegree     bool     `json:"has_degree"`
}

// QualityMetrics holds writing-quality signals for resume content.
type QualityMetrics struct {
	WordCount                int      `json:"word_count"`
	SentenceCount            int      `json:"sentence_count"`
	ActionVerbsUsed          []string `json:"action_verbs_used"`
	ActionVerbCount          int      `json:"action_verb_count"`
	WeakWordsFound           []string `json:"weak_words_found"`
	WeakWordCount            int      `json:"weak_word_count"`
	QuantifiableAchievements int      `json:"quantifiable_achievements"`
	HasSufficientContent     bool     `json:"has_sufficient_content"`
}

// Analysis is the aggregate result of analyzing one resume. It is created
// fresh per request and never shared across requests.
type Analysis struct {
	Skills           []string            `json:"skills"`
	SkillsByCategory map[string][]string `json:"skills_by_category"`
	ExperienceYears  string              `json:"experience_years"`
	Keywords         []string            `json:"keywords"`
	Contact          map[string]string   `json:"contact"`
	Education        Education           `json:"education"`
	Quality          QualityMetrics      `json:"quality_analysis"`
	ResumeScore      int                 `json:"resume_score"`
	Suggestions      []Suggestion        `json:"suggestions"`
	WordCount        int                 `json:"word_count"`
}

// SkillCount returns the total number of matched skills.
func (a *Analysis) SkillCount() int {
	return len(a.Skills)
}

// CategoryCount returns the number of skill categories with at least one match.
func (a *Analysis) CategoryCount() int {
	return len(a.SkillsByCategory)
}
