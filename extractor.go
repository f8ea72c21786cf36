package jobpost

import (
	"context"
	"time"
)

// Extractor runs one extraction strategy against a URL using the locators
// of a profile. Marker misses degrade to placeholders; only an inability to
// reach or render the page is reported as an error.
type Extractor interface {
	Extract(ctx context.Context, url string, profile *Profile) (*JobPosting, error)
}

// Parser locates profile fields in an HTML document without executing scripts.
type Parser interface {
	// Parse returns the located fields. It returns ENOCONTENT when the
	// document carries no text at all.
	Parse(html string, profile *Profile) (Fields, error)
}

// ContentResult holds the main content detected in an HTML page.
type ContentResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// ContentExtractor detects the main content block of an HTML page.
type ContentExtractor interface {
	Extract(html string) (*ContentResult, error)
}

// Strategy names an extraction strategy.
type Strategy string

// Extraction strategies, cheapest first.
const (
	StrategyStatic  Strategy = "static"
	StrategyDynamic Strategy = "dynamic"
)

// Attempt records the outcome of one strategy during a single extraction.
type Attempt struct {
	Strategy  Strategy
	Succeeded bool
	Err       error
	Duration  time.Duration
}

// Pipeline is the single operation the extraction core exposes: one URL in,
// exactly one of a posting or an error out.
type Pipeline interface {
	Extract(ctx context.Context, url string) (*JobPosting, error)
}

// DomainLimiter paces requests per domain.
type DomainLimiter interface {
	// Wait blocks until a request to domain is allowed or ctx is done.
	Wait(ctx context.Context, domain string) error
}
