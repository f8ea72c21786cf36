package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/jobpost"
	jobhttp "github.com/fwojciec/jobpost/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const careersPage = `<html><head><title>Careers</title></head><body><h1>Data Analyst</h1></body></html>`

func serve(t *testing.T, h http.HandlerFunc) string {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestFetcher_Fetch_Status(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{name: "200 ok", status: http.StatusOK},
		{name: "203 non-authoritative", status: http.StatusNonAuthoritativeInfo},
		{name: "403 blocked by bot wall", status: http.StatusForbidden, wantErr: true},
		{name: "404 expired posting", status: http.StatusNotFound, wantErr: true},
		{name: "503 unavailable", status: http.StatusServiceUnavailable, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			url := serve(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(careersPage))
			})

			body, err := jobhttp.NewFetcher().Fetch(context.Background(), url)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, jobpost.ENETWORK, jobpost.ErrorCode(err))
				assert.Contains(t, jobpost.ErrorMessage(err), "HTTP")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, careersPage, body)
		})
	}
}

func TestFetcher_Fetch_Headers(t *testing.T) {
	t.Parallel()

	t.Run("defaults to a browser user agent", func(t *testing.T) {
		t.Parallel()

		var ua, accept string
		url := serve(t, func(w http.ResponseWriter, r *http.Request) {
			ua = r.Header.Get("User-Agent")
			accept = r.Header.Get("Accept")
		})

		_, err := jobhttp.NewFetcher().Fetch(context.Background(), url)

		require.NoError(t, err)
		assert.Equal(t, jobhttp.DefaultUserAgent, ua)
		assert.Contains(t, accept, "text/html")
	})

	t.Run("user agent is configurable", func(t *testing.T) {
		t.Parallel()

		var ua string
		url := serve(t, func(w http.ResponseWriter, r *http.Request) {
			ua = r.Header.Get("User-Agent")
		})

		_, err := jobhttp.NewFetcher(jobhttp.WithUserAgent("jobfetch-test/1.0")).Fetch(context.Background(), url)

		require.NoError(t, err)
		assert.Equal(t, "jobfetch-test/1.0", ua)
	})
}

func TestFetcher_Fetch_Failures(t *testing.T) {
	t.Parallel()

	slow := func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		_, _ = w.Write([]byte(careersPage))
	}

	t.Run("timeout is a network error", func(t *testing.T) {
		t.Parallel()

		f := jobhttp.NewFetcher(jobhttp.WithTimeout(10 * time.Millisecond))
		_, err := f.Fetch(context.Background(), serve(t, slow))

		require.Error(t, err)
		assert.Equal(t, jobpost.ENETWORK, jobpost.ErrorCode(err))
	})

	t.Run("cancelled context surfaces context.Canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := jobhttp.NewFetcher().Fetch(ctx, serve(t, slow))

		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("unresolvable host is a network error", func(t *testing.T) {
		t.Parallel()

		f := jobhttp.NewFetcher(jobhttp.WithTimeout(100 * time.Millisecond))
		_, err := f.Fetch(context.Background(), "http://jobs.non-existent-host.invalid/1")

		require.Error(t, err)
		assert.Equal(t, jobpost.ENETWORK, jobpost.ErrorCode(err))
	})

	t.Run("malformed url is invalid", func(t *testing.T) {
		t.Parallel()

		_, err := jobhttp.NewFetcher().Fetch(context.Background(), "http://[::1")

		require.Error(t, err)
		assert.Equal(t, jobpost.EINVALID, jobpost.ErrorCode(err))
	})
}

func TestFetcher_Fetch_CapsBody(t *testing.T) {
	t.Parallel()

	url := serve(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 11<<20)))
	})

	body, err := jobhttp.NewFetcher().Fetch(context.Background(), url)

	require.NoError(t, err)
	assert.Len(t, body, 10<<20)
}
