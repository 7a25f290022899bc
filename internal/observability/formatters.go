// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/resume-insight/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAnalysis outputs a human-readable summary of the resume analysis.
func (p *Printer) PrintAnalysis(analysis *types.Analysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Score:       %d/100\n", analysis.ResumeScore))
	sb.WriteString(fmt.Sprintf("Experience:  %s years\n", analysis.ExperienceYears))
	sb.WriteString(fmt.Sprintf("Words:       %d\n", analysis.WordCount))
	sb.WriteString(fmt.Sprintf("Skills:      %d across %d categories\n",
		len(analysis.Skills), len(analysis.SkillsByCategory)))

	categories := make([]string, 0, len(analysis.SkillsByCategory))
	for name := range analysis.SkillsByCategory {
		categories = append(categories, name)
	}
	sort.Strings(categories)
	for _, name := range categories {
		skills := analysis.SkillsByCategory[name]
		shown := skills
		if len(shown) > maxItemsToShow {
			shown = shown[:maxItemsToShow]
		}
		sb.WriteString(fmt.Sprintf("  %s: %s", name, strings.Join(shown, ", ")))
		if len(skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf(" (+%d more)", len(skills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(analysis.Contact) > 0 {
		fields := make([]string, 0, len(analysis.Contact))
		for field := range analysis.Contact {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		sb.WriteString(fmt.Sprintf("Contact:     %s\n", strings.Join(fields, ", ")))
	}

	p.printBox("Resume Analysis", strings.TrimRight(sb.String(), "\n"))
}

// PrintMatch outputs the job-match score.
func (p *Printer) PrintMatch(score float64) {
	p.printBox("Job Match", fmt.Sprintf("Match score: %.2f%%", score))
}

// PrintSuggestions outputs the prioritized suggestion list.
func (p *Printer) PrintSuggestions(suggestions []types.Suggestion) {
	if len(suggestions) == 0 {
		return
	}

	var sb strings.Builder
	for i, s := range suggestions {
		sb.WriteString(fmt.Sprintf("%d. [%s] %s\n", i+1, strings.ToUpper(s.Priority), s.Title))
		sb.WriteString(fmt.Sprintf("   %s\n", s.Impact))
	}

	p.printBox("Suggestions", strings.TrimRight(sb.String(), "\n"))
}
