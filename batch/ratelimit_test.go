package batch_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/jobpost"
	"github.com/fwojciec/jobpost/batch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ jobpost.DomainLimiter = (*batch.DomainLimiter)(nil)

func TestDomainLimiter_Wait(t *testing.T) {
	t.Parallel()

	t.Run("spaces requests to the same domain", func(t *testing.T) {
		t.Parallel()

		limiter := batch.NewDomainLimiter(10) // 100ms between requests

		require.NoError(t, limiter.Wait(context.Background(), "indeed.com"))

		start := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "indeed.com"))
		assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)
	})

	t.Run("different domains do not wait for each other", func(t *testing.T) {
		t.Parallel()

		limiter := batch.NewDomainLimiter(1)

		require.NoError(t, limiter.Wait(context.Background(), "indeed.com"))

		start := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "glassdoor.com"))
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("zero rate disables limiting", func(t *testing.T) {
		t.Parallel()

		limiter := batch.NewDomainLimiter(0)

		start := time.Now()
		for range 20 {
			require.NoError(t, limiter.Wait(context.Background(), "indeed.com"))
		}
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		limiter := batch.NewDomainLimiter(1) // 1s between requests
		require.NoError(t, limiter.Wait(context.Background(), "indeed.com"))

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		assert.Error(t, limiter.Wait(ctx, "indeed.com"))
	})
}

func TestDomain(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "linkedin.com", batch.Domain("https://www.LinkedIn.com/jobs/view/1"))
	assert.Equal(t, "uk.indeed.com", batch.Domain("https://uk.indeed.com/viewjob"))
	assert.Equal(t, "127.0.0.1", batch.Domain("http://127.0.0.1:8080/job"))
	assert.Empty(t, batch.Domain("://bad"))
}
