package ingestion

import (
	"regexp"
	"strings"
)

var (
	multiSpacePattern = regexp.MustCompile(`[ \t]+`)
	multiBlankPattern = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes extracted document text: line endings become LF,
// runs of spaces collapse to one, trailing whitespace and excess blank lines
// are dropped. Structure-bearing line breaks are preserved so that section
// headings and bullet lines stay separable downstream.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = multiSpacePattern.ReplaceAllString(strings.TrimRight(line, " \t"), " ")
		cleaned = append(cleaned, line)
	}

	result := strings.Join(cleaned, "\n")
	result = multiBlankPattern.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}
