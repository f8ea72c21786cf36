// Package batch runs the extraction pipeline over many URLs with bounded
// concurrency and optional per-domain pacing. It is a caller of the
// pipeline, not part of it: every URL is still one independent Extract.
package batch

import (
	"context"
	"sync"

	"github.com/fwojciec/jobpost"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency caps simultaneous extractions. Each dynamic attempt
// owns a full browser process.
const DefaultConcurrency = 3

// Result is the outcome for one URL: exactly one of Posting or Err is set.
type Result struct {
	URL     string
	Posting *jobpost.JobPosting
	Err     error
}

// Progress reports that one URL has finished.
type Progress struct {
	Result    Result
	Completed int
	Total     int
}

// ProgressFunc is called once per finished URL. Calls are serialized.
type ProgressFunc func(Progress)

// Runner extracts postings for a list of URLs.
type Runner struct {
	pipeline    jobpost.Pipeline
	limiter     jobpost.DomainLimiter
	concurrency int
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithConcurrency sets the number of simultaneous extractions.
// Values below one fall back to DefaultConcurrency.
func WithConcurrency(n int) RunnerOption {
	return func(r *Runner) {
		r.concurrency = n
	}
}

// WithLimiter sets a per-domain limiter consulted before each extraction.
func WithLimiter(l jobpost.DomainLimiter) RunnerOption {
	return func(r *Runner) {
		r.limiter = l
	}
}

// NewRunner creates a Runner around a pipeline.
func NewRunner(pipeline jobpost.Pipeline, opts ...RunnerOption) *Runner {
	r := &Runner{
		pipeline:    pipeline,
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.concurrency < 1 {
		r.concurrency = DefaultConcurrency
	}
	return r
}

// ExtractAll extracts every URL and returns results in input order.
// A failed URL never stops the others; cancelling ctx fails the URLs that
// have not finished yet.
func (r *Runner) ExtractAll(ctx context.Context, urls []string, progress ProgressFunc) []Result {
	results := make([]Result, len(urls))

	var (
		mu        sync.Mutex
		completed int
	)
	report := func(res Result) {
		if progress == nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		completed++
		progress(Progress{Result: res, Completed: completed, Total: len(urls)})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i, u := range urls {
		g.Go(func() error {
			res := r.extract(gctx, u)
			results[i] = res
			report(res)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// extract runs the pipeline for one URL after any rate-limit wait.
func (r *Runner) extract(ctx context.Context, rawURL string) Result {
	if r.limiter != nil {
		if domain := Domain(rawURL); domain != "" {
			if err := r.limiter.Wait(ctx, domain); err != nil {
				return Result{URL: rawURL, Err: err}
			}
		}
	}

	posting, err := r.pipeline.Extract(ctx, rawURL)
	if err != nil {
		return Result{URL: rawURL, Err: err}
	}
	return Result{URL: rawURL, Posting: posting}
}
