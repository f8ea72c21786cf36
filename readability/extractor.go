// Package readability detects the main content block of job pages using
// Mozilla's Readability algorithm.
package readability

import (
	"strings"

	"github.com/fwojciec/jobpost"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements jobpost.ContentExtractor at compile time.
var _ jobpost.ContentExtractor = (*Extractor)(nil)

// Extractor finds the main content of a page with go-readability.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the readable article of rawHTML. Pages Readability cannot
// turn into an article return ENOCONTENT.
func (e *Extractor) Extract(rawHTML string) (*jobpost.ContentResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, jobpost.Errorf(jobpost.ENOCONTENT, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, jobpost.Wrap(jobpost.ENOCONTENT, err, "detecting main content")
	}
	if strings.TrimSpace(article.Content) == "" {
		return nil, jobpost.Errorf(jobpost.ENOCONTENT, "no readable article")
	}

	return &jobpost.ContentResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
