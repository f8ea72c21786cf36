package scrape

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/jobpost"
)

var _ jobpost.Pipeline = (*Coordinator)(nil)

// Coordinator runs the extraction pipeline for one URL per call:
//
//	classify → static (Generic sources only) → dynamic → done
//
// Static failures that a browser can overcome escalate to the dynamic
// strategy; every other failure ends the call. Coordinator holds no
// per-call state and is safe for concurrent use.
type Coordinator struct {
	static  jobpost.Extractor
	dynamic jobpost.Extractor
	logger  *slog.Logger
}

// CoordinatorOption configures a Coordinator.
type CoordinatorOption func(*Coordinator)

// WithLogger sets the logger that receives one debug line per attempt.
func WithLogger(logger *slog.Logger) CoordinatorOption {
	return func(c *Coordinator) {
		c.logger = logger
	}
}

// NewCoordinator creates a Coordinator from a static and a dynamic strategy.
func NewCoordinator(static, dynamic jobpost.Extractor, opts ...CoordinatorOption) *Coordinator {
	c := &Coordinator{
		static:  static,
		dynamic: dynamic,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Extract returns the job posting at rawURL.
//
// A malformed URL returns EINVALID without any network or browser activity.
// A failed dynamic attempt returns EEXTRACTION wrapping its cause, so
// jobpost.HasCode identifies ETIMEOUT or EBROWSERLAUNCH.
func (c *Coordinator) Extract(ctx context.Context, rawURL string) (*jobpost.JobPosting, error) {
	if err := ValidateURL(rawURL); err != nil {
		return nil, err
	}

	source := jobpost.Classify(rawURL)
	profile := jobpost.ProfileFor(source)

	if !source.RequiresJS() {
		posting, attempt := c.attempt(ctx, jobpost.StrategyStatic, c.static, rawURL, profile)
		if attempt.Succeeded {
			return posting, nil
		}
		if !shouldEscalate(attempt.Err) {
			return nil, jobpost.Wrap(jobpost.EEXTRACTION, attempt.Err, "static extraction of %s failed", rawURL)
		}
	}

	posting, attempt := c.attempt(ctx, jobpost.StrategyDynamic, c.dynamic, rawURL, profile)
	if attempt.Succeeded {
		return posting, nil
	}
	return nil, jobpost.Wrap(jobpost.EEXTRACTION, attempt.Err, "dynamic extraction of %s failed", rawURL)
}

// attempt runs one strategy and records its outcome.
func (c *Coordinator) attempt(ctx context.Context, strategy jobpost.Strategy, ext jobpost.Extractor, rawURL string, profile *jobpost.Profile) (*jobpost.JobPosting, jobpost.Attempt) {
	begin := time.Now()
	posting, err := ext.Extract(ctx, rawURL, profile)
	if err == nil && posting == nil {
		err = jobpost.Errorf(jobpost.EINTERNAL, "%s strategy returned no posting", strategy)
	}

	a := jobpost.Attempt{
		Strategy:  strategy,
		Succeeded: err == nil,
		Err:       err,
		Duration:  time.Since(begin),
	}
	c.logger.Debug("extraction attempt",
		"url", rawURL,
		"source", profile.Source,
		"strategy", a.Strategy,
		"succeeded", a.Succeeded,
		"duration", a.Duration,
		"err", a.Err,
	)
	return posting, a
}

// shouldEscalate reports whether a failed static attempt warrants the
// dynamic strategy: the page was unreachable over plain HTTP or served no
// content without scripts.
func shouldEscalate(err error) bool {
	switch jobpost.ErrorCode(err) {
	case jobpost.ENETWORK, jobpost.ENOCONTENT:
		return true
	}
	return false
}

// ValidateURL returns EINVALID unless rawURL is an absolute http or https
// URL with a host.
func ValidateURL(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return jobpost.Errorf(jobpost.EINVALID, "url required")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return jobpost.Wrap(jobpost.EINVALID, err, "invalid url %q", rawURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return jobpost.Errorf(jobpost.EINVALID, "invalid url %q: scheme must be http or https", rawURL)
	}
	if u.Hostname() == "" {
		return jobpost.Errorf(jobpost.EINVALID, "invalid url %q: missing host", rawURL)
	}
	return nil
}
