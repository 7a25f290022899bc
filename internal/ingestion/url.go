package ingestion

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/resume-insight/internal/fetch"
)

var (
	// ErrHTTPRequestFailed is returned when the posting could not be fetched.
	ErrHTTPRequestFailed = fmt.Errorf("HTTP request failed")
	// ErrContentExtractionFailed is returned when no text could be pulled
	// from the fetched page.
	ErrContentExtractionFailed = fmt.Errorf("content extraction failed")
)

// JobDescriptionFromURL fetches a job posting page and reduces it to plain
// text. When useBrowser is set and the plain fetch yields too little text,
// the page is re-rendered in a headless browser before extraction.
func JobDescriptionFromURL(ctx context.Context, urlStr string, useBrowser bool, verbose bool) (string, error) {
	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}

	text, err := fetch.ExtractMainText(result.HTML, fetch.JobPostingSelectors())
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}
	if verbose {
		log.Printf("fetched %s: %d chars extracted", urlStr, len(text))
	}

	if useBrowser && fetch.ShouldUseBrowser(text) {
		if verbose {
			log.Printf("content too short, rendering %s in headless browser", urlStr)
		}
		html, err := fetch.WithBrowser(ctx, urlStr, fetch.DefaultTimeout)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
		}
		text, err = fetch.ExtractMainText(html, fetch.JobPostingSelectors())
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
		}
	}

	return CleanText(text), nil
}
