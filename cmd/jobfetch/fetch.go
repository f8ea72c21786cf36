package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fwojciec/jobpost"
	"github.com/fwojciec/jobpost/batch"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	if len(c.URLs) == 0 {
		return fmt.Errorf("at least one url is required")
	}

	opts := []batch.RunnerOption{batch.WithConcurrency(c.Concurrency)}
	if deps.Limiter != nil {
		opts = append(opts, batch.WithLimiter(deps.Limiter))
	}
	runner := batch.NewRunner(deps.Pipeline, opts...)

	var progress batch.ProgressFunc
	if !c.JSON && len(c.URLs) > 1 {
		progress = func(p batch.Progress) {
			fmt.Fprintf(deps.Stderr, "[%d/%d] %s\n", p.Completed, p.Total, p.Result.URL)
		}
	}

	results := runner.ExtractAll(deps.Ctx, c.URLs, progress)
	if deps.Writer != nil {
		save(deps, results)
	}

	var err error
	if c.JSON {
		err = writeJSON(deps.Stdout, results)
	} else {
		err = writeText(deps.Stdout, deps.Stderr, results)
	}
	if err != nil {
		return err
	}

	if failed := countFailed(results); failed > 0 {
		return fmt.Errorf("%d of %d urls failed", failed, len(results))
	}
	return nil
}

// save persists every extracted posting. A failed write becomes that URL's error.
func save(deps *Dependencies, results []batch.Result) {
	for i, res := range results {
		if res.Err != nil {
			continue
		}
		if err := deps.Writer.WritePosting(deps.Ctx, res.Posting); err != nil {
			results[i] = batch.Result{URL: res.URL, Err: err}
		}
	}
}

func writeText(stdout, stderr io.Writer, results []batch.Result) error {
	first := true
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(stderr, "error: %s: %s (%s)\n", res.URL, jobpost.ErrorMessage(res.Err), causeCode(res.Err))
			continue
		}
		if !first {
			if _, err := fmt.Fprintln(stdout, "---"); err != nil {
				return err
			}
		}
		first = false
		if err := writePosting(stdout, res.Posting); err != nil {
			return err
		}
	}
	return nil
}

func writePosting(w io.Writer, p *jobpost.JobPosting) error {
	_, err := fmt.Fprintf(w, "URL: %s\nSource: %s\nTitle: %s\nCompany: %s\n\n%s\n",
		p.URL, p.Source, p.Title, p.Company, p.Description)
	return err
}

// jsonResult is the JSON shape of one URL's outcome.
type jsonResult struct {
	URL     string              `json:"url"`
	Posting *jobpost.JobPosting `json:"posting,omitempty"`
	Error   *jsonError          `json:"error,omitempty"`
}

type jsonError struct {
	Code    string `json:"code"`
	Cause   string `json:"cause"`
	Message string `json:"message"`
}

func writeJSON(w io.Writer, results []batch.Result) error {
	out := make([]jsonResult, len(results))
	for i, res := range results {
		out[i] = jsonResult{URL: res.URL, Posting: res.Posting}
		if res.Err != nil {
			out[i].Error = &jsonError{
				Code:    jobpost.ErrorCode(res.Err),
				Cause:   causeCode(res.Err),
				Message: jobpost.ErrorMessage(res.Err),
			}
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// causeCode returns the code of the innermost application error in err's chain.
func causeCode(err error) string {
	code := jobpost.ErrorCode(err)
	for err != nil {
		var e *jobpost.Error
		if !errors.As(err, &e) {
			break
		}
		code = e.Code
		err = e.Err
	}
	return code
}

func countFailed(results []batch.Result) int {
	var n int
	for _, res := range results {
		if res.Err != nil {
			n++
		}
	}
	return n
}
