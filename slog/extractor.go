package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/jobpost"
)

// Ensure LoggingExtractor implements jobpost.Extractor.
var _ jobpost.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging of each strategy run.
type LoggingExtractor struct {
	next     jobpost.Extractor
	strategy jobpost.Strategy
	logger   *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor. The strategy names the
// wrapped extractor in log lines.
func NewLoggingExtractor(next jobpost.Extractor, strategy jobpost.Strategy, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, strategy: strategy, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(ctx context.Context, url string, profile *jobpost.Profile) (posting *jobpost.JobPosting, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"strategy", e.strategy,
			"url", url,
			"source", profile.Source,
			"duration", time.Since(begin),
		}
		if err != nil {
			attrs = append(attrs, "code", jobpost.ErrorCode(err), "err", err)
		} else if posting != nil {
			attrs = append(attrs, "title", posting.Title, "description_bytes", len(posting.Description))
		}
		e.logger.Info("extract", attrs...)
	}(time.Now())
	return e.next.Extract(ctx, url, profile)
}
