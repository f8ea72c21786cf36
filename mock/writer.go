package mock

import (
	"context"

	"github.com/fwojciec/jobpost"
)

var _ jobpost.PostingWriter = (*PostingWriter)(nil)

// PostingWriter is a mock implementation of jobpost.PostingWriter.
type PostingWriter struct {
	WritePostingFn func(ctx context.Context, posting *jobpost.JobPosting) error
}

func (w *PostingWriter) WritePosting(ctx context.Context, posting *jobpost.JobPosting) error {
	return w.WritePostingFn(ctx, posting)
}
