package readability_test

import (
	"testing"

	"github.com/fwojciec/jobpost"
	"github.com/fwojciec/jobpost/goquery"
	"github.com/fwojciec/jobpost/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements jobpost.ContentExtractor at compile time.
var _ jobpost.ContentExtractor = (*readability.Extractor)(nil)

const jobPage = `<!DOCTYPE html>
<html>
<head><title>Backend Engineer - Acme Careers</title></head>
<body>
<div class="topbar"><a href="/">Home</a><a href="/jobs">Jobs</a><a href="/about">About</a></div>
<div class="wrapper">
<div class="posting">
<h2>Backend Engineer</h2>
<p>Acme is looking for a backend engineer to design, build and operate the services that power our logistics platform for thousands of customers.</p>
<p>You will work with Go, PostgreSQL and Kubernetes, collaborate closely with product and infrastructure teams, and take part in a friendly on-call rotation.</p>
<p>We offer flexible remote work, a learning budget, and generous parental leave for every employee regardless of location.</p>
</div>
</div>
<div class="legal"><p>Copyright 2026 Acme</p></div>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("detects the posting block", func(t *testing.T) {
		t.Parallel()

		result, err := readability.NewExtractor().Extract(jobPage)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "design, build and operate")
		assert.Contains(t, result.ContentHTML, "generous parental leave")
	})

	t.Run("returns ENOCONTENT for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := readability.NewExtractor().Extract("")

		require.Error(t, err)
		assert.Equal(t, jobpost.ENOCONTENT, jobpost.ErrorCode(err))
	})
}

func TestExtractor_WithParser(t *testing.T) {
	t.Parallel()

	parser := goquery.NewParser(goquery.WithContentExtractor(readability.NewExtractor()))
	fields, err := parser.Parse(jobPage, jobpost.ProfileFor(jobpost.SourceGeneric))

	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer - Acme Careers", fields.Title)
	assert.Contains(t, fields.Description, "friendly on-call rotation")
}
