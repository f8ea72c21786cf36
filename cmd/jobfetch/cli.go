package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/jobpost"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Concurrency    int           `short:"c" default:"3" env:"JOBFETCH_CONCURRENCY" help:"Concurrent extraction limit"`
	StaticTimeout  time.Duration `default:"10s" env:"JOBFETCH_STATIC_TIMEOUT" help:"HTTP fetch timeout for the static strategy"`
	DynamicTimeout time.Duration `default:"30s" env:"JOBFETCH_DYNAMIC_TIMEOUT" help:"Navigation timeout for the headless browser"`
	Rate           float64       `default:"0" env:"JOBFETCH_RATE" help:"Requests per second per domain (0 disables)"`
	Content        string        `default:"trafilatura" enum:"trafilatura,readability,none" env:"JOBFETCH_CONTENT" help:"Main content detector for generic pages (trafilatura, readability, none)"`
	ChromeBin      string        `env:"JOBFETCH_CHROME_BIN" help:"Path to the Chrome or Chromium binary"`
	JSON           bool          `env:"JOBFETCH_JSON" help:"Print results as JSON"`
	Out            string        `short:"o" type:"path" env:"JOBFETCH_OUT" help:"Also save each posting as markdown under this directory"`
	Verbose        bool          `short:"v" env:"JOBFETCH_VERBOSE" help:"Log every extraction attempt"`
	URLs           []string      `arg:"" name:"url" help:"Job posting URLs"`
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Pipeline jobpost.Pipeline
	Limiter  jobpost.DomainLimiter
	Writer   jobpost.PostingWriter
}

// FetchCmd extracts one posting per URL and prints the results.
type FetchCmd struct {
	URLs        []string
	Concurrency int
	JSON        bool
}
