package jobpost_test

import (
	"testing"

	"github.com/fwojciec/jobpost"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileFor(t *testing.T) {
	t.Parallel()

	t.Run("every source has a profile with all markers", func(t *testing.T) {
		t.Parallel()

		for _, s := range []jobpost.Source{
			jobpost.SourceLinkedIn,
			jobpost.SourceIndeed,
			jobpost.SourceGlassdoor,
			jobpost.SourceGeneric,
		} {
			p := jobpost.ProfileFor(s)
			require.NotNil(t, p, s)
			assert.Equal(t, s, p.Source)
			assert.NotEmpty(t, p.Title, s)
			assert.NotEmpty(t, p.Company, s)
			assert.NotEmpty(t, p.Description, s)
		}
	})

	t.Run("returns the same profile on every call", func(t *testing.T) {
		t.Parallel()

		assert.Same(t, jobpost.ProfileFor(jobpost.SourceIndeed), jobpost.ProfileFor(jobpost.SourceIndeed))
		assert.Same(t, jobpost.ProfileFor(jobpost.SourceGeneric), jobpost.ProfileFor(jobpost.SourceGeneric))
	})

	t.Run("unknown source falls back to generic", func(t *testing.T) {
		t.Parallel()

		assert.Same(t, jobpost.ProfileFor(jobpost.SourceGeneric), jobpost.ProfileFor(jobpost.Source("Monster")))
	})

	t.Run("generic profile uses best-effort markers", func(t *testing.T) {
		t.Parallel()

		p := jobpost.ProfileFor(jobpost.SourceGeneric)
		assert.Equal(t, []string{"h1", "title"}, p.Title)
		assert.Equal(t, `meta[property="og:site_name"]`, p.Company[0])
		assert.True(t, p.ContentFallback)
	})
}

func TestProfiles(t *testing.T) {
	t.Parallel()

	ps := jobpost.Profiles()
	require.Len(t, ps, 4)
	for _, p := range ps {
		assert.Same(t, jobpost.ProfileFor(p.Source), p)
	}
}
