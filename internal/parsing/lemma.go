package parsing

import "strings"

// irregularNouns maps irregular plural forms to their singular base.
var irregularNouns = map[string]string{
	"men":      "man",
	"women":    "woman",
	"children": "child",
	"feet":     "foot",
	"teeth":    "tooth",
	"geese":    "goose",
	"mice":     "mouse",
	"people":   "people",
	"data":     "data",
	"media":    "media",
	"analyses": "analysis",
	"theses":   "thesis",
}

// suffixRules are noun detachment rules tried in order; the first applicable
// rule wins. Modeled on WordNet's noun morphology substitutions.
var suffixRules = []struct {
	suffix      string
	replacement string
}{
	{"ches", "ch"},
	{"shes", "sh"},
	{"sses", "ss"},
	{"xes", "x"},
	{"zes", "z"},
	{"ies", "y"},
	{"s", ""},
}

// Lemmatize reduces a lowercase token to a canonical singular base form.
// Tokens that look already singular pass through unchanged.
func Lemmatize(token string) string {
	if base, ok := irregularNouns[token]; ok {
		return base
	}

	if len(token) < 3 || !strings.HasSuffix(token, "s") {
		return token
	}
	// "ss", "us", "sis" endings ("class", "status", "analysis") are singular.
	if strings.HasSuffix(token, "ss") || strings.HasSuffix(token, "us") || strings.HasSuffix(token, "sis") {
		return token
	}

	for _, rule := range suffixRules {
		if !strings.HasSuffix(token, rule.suffix) {
			continue
		}
		base := token[:len(token)-len(rule.suffix)] + rule.replacement
		if len(base) > 1 {
			return base
		}
	}
	return token
}
