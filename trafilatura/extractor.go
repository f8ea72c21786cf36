// Package trafilatura detects the main content block of job pages that
// match no site-specific markers.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/jobpost"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements jobpost.ContentExtractor at compile time.
var _ jobpost.ContentExtractor = (*Extractor)(nil)

// Extractor finds the main content of a page with go-trafilatura. Recall is
// favored over precision: a posting's requirement and benefit lists look
// like boilerplate to the precision heuristics.
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{
		opts: trafilatura.Options{
			EnableFallback: true,
			Focus:          trafilatura.FavorRecall,
		},
	}
}

// Extract returns the main content block of rawHTML as HTML.
// A page without a detectable block returns ENOCONTENT.
func (e *Extractor) Extract(rawHTML string) (*jobpost.ContentResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, jobpost.Errorf(jobpost.ENOCONTENT, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return nil, jobpost.Wrap(jobpost.ENOCONTENT, err, "detecting main content")
	}
	if result.ContentNode == nil {
		return nil, jobpost.Errorf(jobpost.ENOCONTENT, "no main content block")
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, result.ContentNode); err != nil {
		return nil, jobpost.Wrap(jobpost.EINTERNAL, err, "rendering main content")
	}

	return &jobpost.ContentResult{
		Title:       result.Metadata.Title,
		ContentHTML: buf.String(),
	}, nil
}
