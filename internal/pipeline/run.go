// Package pipeline orchestrates the resume analysis flow: normalization,
// extractor fan-out, scoring, suggestion generation, and the optional
// job-description match.
package pipeline

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-insight/internal/extract"
	"github.com/jonathan/resume-insight/internal/parsing"
	"github.com/jonathan/resume-insight/internal/ranking"
	"github.com/jonathan/resume-insight/internal/suggest"
	"github.com/jonathan/resume-insight/internal/taxonomy"
	"github.com/jonathan/resume-insight/internal/types"
)

// keywordSampleSize caps the keyword sample carried on the analysis result.
const keywordSampleSize = 50

// Options configures a single analysis run.
type Options struct {
	// Taxonomy overrides the built-in skill taxonomy; nil uses the default.
	Taxonomy *taxonomy.Taxonomy
	// JobDescription, when non-blank, enables the job-match score and the
	// job-aware suggestion rules.
	JobDescription string
}

// Result aggregates the analysis and, when a job description was supplied,
// the match score.
type Result struct {
	Analysis   *types.Analysis
	MatchScore *float64
}

// Analyze runs the full pipeline over raw resume text. Empty or whitespace
// text is a valid zero-signal input, not an error. The extractors are
// independent and run concurrently; everything they read is either
// request-scoped or static read-only lexicon data.
//
// The matcher is pure: when a job description is present, Analyze computes
// the score and regenerates the suggestion list itself rather than mutating
// a previously returned result.
func Analyze(ctx context.Context, text string, opts Options) (*Result, error) {
	tax := opts.Taxonomy
	if tax == nil {
		tax = taxonomy.Default()
	}

	tokens := parsing.Normalize(text)

	var (
		byCategory map[string][]string
		experience string
		contact    map[string]string
		education  types.Education
		quality    types.QualityMetrics
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		byCategory = extract.Skills(text, tokens, tax)
		return nil
	})
	g.Go(func() error {
		experience = extract.ExperienceYears(text)
		return nil
	})
	g.Go(func() error {
		contact = extract.Contact(text)
		return nil
	})
	g.Go(func() error {
		education = extract.Education(text)
		return nil
	})
	g.Go(func() error {
		quality = extract.Quality(text)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	analysis := &types.Analysis{
		Skills:           extract.FlattenSkills(byCategory, tax),
		SkillsByCategory: byCategory,
		ExperienceYears:  experience,
		Keywords:         keywordSample(tokens),
		Contact:          contact,
		Education:        education,
		Quality:          quality,
		WordCount:        quality.WordCount,
	}
	analysis.ResumeScore = ranking.ResumeScore(byCategory, quality, education, experience)
	analysis.Suggestions = suggest.Generate(byCategory, quality, education, experience, nil)

	result := &Result{Analysis: analysis}

	if jobText := strings.TrimSpace(opts.JobDescription); jobText != "" {
		score := ranking.MatchScore(analysis, opts.JobDescription)
		analysis.Suggestions = suggest.Generate(byCategory, quality, education, experience, &suggest.JobContext{
			MatchScore: score,
			JobText:    opts.JobDescription,
		})
		result.MatchScore = &score
	}

	return result, nil
}

// keywordSample takes the first n normalized tokens and deduplicates them,
// preserving first appearance order.
func keywordSample(tokens []string) []string {
	sample := tokens
	if len(sample) > keywordSampleSize {
		sample = sample[:keywordSampleSize]
	}

	seen := make(map[string]bool, len(sample))
	unique := make([]string, 0, len(sample))
	for _, token := range sample {
		if seen[token] {
			continue
		}
		seen[token] = true
		unique = append(unique, token)
	}
	return unique
}
