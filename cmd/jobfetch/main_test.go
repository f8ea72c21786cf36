package main_test

import (
	"bytes"
	"context"
	"testing"

	main "github.com/fwojciec/jobpost/cmd/jobfetch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "jobfetch")
	assert.Contains(t, stdout.String(), "--dynamic-timeout")
}

func TestMain_Run_NoArgs(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_RejectsUnknownContentExtractor(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--content", "boilerpipe", "https://example.com/job"}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_InvalidURLFailsWithoutBrowser(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	// A non-http scheme is rejected before any fetch or browser launch.
	err := m.Run(context.Background(), []string{"--json", "ftp://example.com/job"}, &stdout, &stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 urls failed")
	assert.Contains(t, stdout.String(), `"code": "invalid"`)
}
