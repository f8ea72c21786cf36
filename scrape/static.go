// Package scrape coordinates job posting extraction. It validates and
// classifies the URL, runs the static strategy where it can succeed and
// escalates to the dynamic strategy when it cannot.
package scrape

import (
	"context"

	"github.com/fwojciec/jobpost"
)

// Ensure Static implements jobpost.Extractor at compile time.
var _ jobpost.Extractor = (*Static)(nil)

// Static extracts postings from server-rendered HTML: one fetch, one parse,
// no script execution and no retries.
type Static struct {
	fetcher jobpost.Fetcher
	parser  jobpost.Parser
}

// NewStatic creates a static extractor from a fetcher and a parser.
func NewStatic(fetcher jobpost.Fetcher, parser jobpost.Parser) *Static {
	return &Static{fetcher: fetcher, parser: parser}
}

// Extract fetches url and resolves the profile markers in the raw HTML.
// Fetch failures return ENETWORK; a document without body text returns
// ENOCONTENT.
func (s *Static) Extract(ctx context.Context, url string, profile *jobpost.Profile) (*jobpost.JobPosting, error) {
	html, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		if jobpost.ErrorCode(err) == jobpost.EINTERNAL {
			err = jobpost.Wrap(jobpost.ENETWORK, err, "fetching %s", url)
		}
		return nil, err
	}

	fields, err := s.parser.Parse(html, profile)
	if err != nil {
		return nil, err
	}

	return jobpost.NewJobPosting(url, profile.Source, fields), nil
}
