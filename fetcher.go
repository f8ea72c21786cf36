package jobpost

import "context"

// Fetcher retrieves raw HTML from URLs without executing scripts.
type Fetcher interface {
	// Fetch issues one request and returns the response body.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}
