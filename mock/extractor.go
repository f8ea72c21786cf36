package mock

import (
	"context"

	"github.com/fwojciec/jobpost"
)

var _ jobpost.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of jobpost.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, url string, profile *jobpost.Profile) (*jobpost.JobPosting, error)
}

func (e *Extractor) Extract(ctx context.Context, url string, profile *jobpost.Profile) (*jobpost.JobPosting, error) {
	return e.ExtractFn(ctx, url, profile)
}

var _ jobpost.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of jobpost.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(html string) (*jobpost.ContentResult, error)
}

func (e *ContentExtractor) Extract(html string) (*jobpost.ContentResult, error) {
	return e.ExtractFn(html)
}

var _ jobpost.Parser = (*Parser)(nil)

// Parser is a mock implementation of jobpost.Parser.
type Parser struct {
	ParseFn func(html string, profile *jobpost.Profile) (jobpost.Fields, error)
}

func (p *Parser) Parse(html string, profile *jobpost.Profile) (jobpost.Fields, error) {
	return p.ParseFn(html, profile)
}

var _ jobpost.Pipeline = (*Pipeline)(nil)

// Pipeline is a mock implementation of jobpost.Pipeline.
type Pipeline struct {
	ExtractFn func(ctx context.Context, url string) (*jobpost.JobPosting, error)
}

func (p *Pipeline) Extract(ctx context.Context, url string) (*jobpost.JobPosting, error) {
	return p.ExtractFn(ctx, url)
}

var _ jobpost.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of jobpost.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.WaitFn(ctx, domain)
}
