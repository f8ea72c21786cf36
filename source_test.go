package jobpost_test

import (
	"testing"

	"github.com/fwojciec/jobpost"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want jobpost.Source
	}{
		{"linkedin mixed case", "https://www.LinkedIn.com/jobs/123", jobpost.SourceLinkedIn},
		{"linkedin upper", "HTTPS://LINKEDIN.COM/JOBS/VIEW/1", jobpost.SourceLinkedIn},
		{"indeed", "https://www.indeed.com/viewjob?jk=abc", jobpost.SourceIndeed},
		{"indeed subdomain", "https://uk.Indeed.com/viewjob?jk=abc", jobpost.SourceIndeed},
		{"glassdoor", "https://www.glassdoor.com/job-listing/x", jobpost.SourceGlassdoor},
		{"generic", "https://careers.example.com/jobs/42", jobpost.SourceGeneric},
		{"empty", "", jobpost.SourceGeneric},
		{"not a url", "not a url", jobpost.SourceGeneric},
		{"garbage", "%%%://\x00", jobpost.SourceGeneric},
		{"linkedin wins over indeed", "https://linkedin.com/redirect?to=indeed.com", jobpost.SourceLinkedIn},
		{"indeed wins over glassdoor", "https://glassdoor.com/?ref=indeed.com", jobpost.SourceIndeed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, jobpost.Classify(tt.url))
		})
	}
}

func TestSource_RequiresJS(t *testing.T) {
	t.Parallel()

	assert.True(t, jobpost.SourceLinkedIn.RequiresJS())
	assert.True(t, jobpost.SourceIndeed.RequiresJS())
	assert.True(t, jobpost.SourceGlassdoor.RequiresJS())
	assert.False(t, jobpost.SourceGeneric.RequiresJS())
}
