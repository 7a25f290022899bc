package extract

import (
	"strings"

	"github.com/jonathan/resume-insight/internal/taxonomy"
	"github.com/jonathan/resume-insight/internal/types"
)

// Education tests each education keyword against the lowercased text and
// reports the deduplicated matches plus whether an explicit degree marker is
// present. Keyword order in the output follows the lexicon (set semantics;
// callers must not rely on it).
func Education(text string) types.Education {
	textLower := strings.ToLower(text)

	seen := make(map[string]bool)
	found := make([]string, 0)
	for _, keyword := range taxonomy.EducationKeywords {
		if strings.Contains(textLower, keyword) && !seen[keyword] {
			seen[keyword] = true
			found = append(found, keyword)
		}
	}

	hasDegree := false
	for _, marker := range taxonomy.DegreeMarkers {
		if strings.Contains(textLower, marker) {
			hasDegree = true
			break
		}
	}

	return types.Education{
		KeywordsFound: found,
		HasDegree:     hasDegree,
	}
}
