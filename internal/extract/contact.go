package extract

import (
	"regexp"
	"strings"
)

// Contact field patterns. These are deliberately loose: the extractor never
// fails, it only returns fewer fields when formatting varies too much.
var (
	emailPattern    = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phonePattern    = regexp.MustCompile(`[+]?[(]?[0-9]{1,3}[)]?[-\s.]?[(]?[0-9]{1,4}[)]?[-\s.]?[0-9]{1,4}[-\s.]?[0-9]{1,9}`)
	linkedinPattern = regexp.MustCompile(`linkedin\.com/in/[\w-]+`)
	githubPattern   = regexp.MustCompile(`github\.com/[\w-]+`)
)

// Contact extracts email, phone, and profile URLs from text. The returned
// map holds only the fields with at least one match (first match each);
// profile URLs are matched case-insensitively.
func Contact(text string) map[string]string {
	contact := make(map[string]string)
	textLower := strings.ToLower(text)

	if email := emailPattern.FindString(text); email != "" {
		contact["email"] = email
	}
	if phone := phonePattern.FindString(text); phone != "" {
		contact["phone"] = phone
	}
	if linkedin := linkedinPattern.FindString(textLower); linkedin != "" {
		contact["linkedin"] = linkedin
	}
	if github := githubPattern.FindString(textLower); github != "" {
		contact["github"] = github
	}
	return contact
}
