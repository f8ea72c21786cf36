package jobpost

import "context"

// PostingWriter persists extracted postings.
type PostingWriter interface {
	WritePosting(ctx context.Context, posting *JobPosting) error
}
