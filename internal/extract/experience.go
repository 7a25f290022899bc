package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// maxReasonableYears caps extracted experience values. Larger numbers are
// noise from phone numbers or calendar years.
const maxReasonableYears = 50

// experiencePatterns are searched independently over the lowercased text.
// Capture-group semantics:
//
//	duration:  "<n>+ years [of] experience"  — group 1 is the year count
//	labeled:   "experience: <n> years"       — group 2 is the year count
//	range:     "<n>-<n2> years"              — group 1 is the range lower bound
//
// Every numeric capture across every match is considered and the global
// maximum wins; there is no ordering dependency between patterns. On range
// phrases like "3-5 years of experience" the duration pattern also matches
// the upper bound ("5 years"), so the upper bound is what survives.
var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\s*\+?\s*(years?|yrs?)\s*(of\s*)?(experience|exp)?`),
	regexp.MustCompile(`(experience|exp)\s*:?\s*(\d+)\s*(years?|yrs?)`),
	regexp.MustCompile(`(\d+)\s*-\s*\d+\s*(years?|yrs?)`),
}

// digitsOnly reports whether s is a non-empty run of ASCII digits.
func digitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ExperienceYears scans text for experience-duration phrases and returns the
// maximum plausible year count as a string, or "0" when none is found.
func ExperienceYears(text string) string {
	textLower := strings.ToLower(text)
	maxYears := 0

	for _, pattern := range experiencePatterns {
		for _, match := range pattern.FindAllStringSubmatch(textLower, -1) {
			for _, group := range match[1:] {
				if !digitsOnly(group) {
					continue
				}
				years, err := strconv.Atoi(group)
				if err != nil || years > maxReasonableYears {
					continue
				}
				if years > maxYears {
					maxYears = years
				}
			}
		}
	}
	return strconv.Itoa(maxYears)
}
