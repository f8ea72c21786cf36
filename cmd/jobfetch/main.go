package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/jobpost"
	"github.com/fwojciec/jobpost/batch"
	"github.com/fwojciec/jobpost/fs"
	"github.com/fwojciec/jobpost/goquery"
	jobhttp "github.com/fwojciec/jobpost/http"
	"github.com/fwojciec/jobpost/readability"
	"github.com/fwojciec/jobpost/rod"
	"github.com/fwojciec/jobpost/scrape"
	jobslog "github.com/fwojciec/jobpost/slog"
	"github.com/fwojciec/jobpost/trafilatura"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("jobfetch"),
		kong.Description("Extract job postings from job board and company career pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	logger := newLogger(stderr, cli.Verbose)

	contentExtractor, err := newContentExtractor(cli.Content)
	if err != nil {
		return err
	}

	var parserOpts []goquery.ParserOption
	if contentExtractor != nil {
		parserOpts = append(parserOpts, goquery.WithContentExtractor(contentExtractor))
	}

	var fetcher jobpost.Fetcher = jobhttp.NewFetcher(jobhttp.WithTimeout(cli.StaticTimeout))
	fetcher = jobslog.NewLoggingFetcher(fetcher, logger)
	defer fetcher.Close()

	static := jobslog.NewLoggingExtractor(
		scrape.NewStatic(fetcher, goquery.NewParser(parserOpts...)),
		jobpost.StrategyStatic, logger)

	rodOpts := []rod.Option{
		rod.WithNavigationTimeout(cli.DynamicTimeout),
		rod.WithLogger(logger),
	}
	if cli.ChromeBin != "" {
		rodOpts = append(rodOpts, rod.WithBrowserBin(cli.ChromeBin))
	}
	dynamic := jobslog.NewLoggingExtractor(rod.NewExtractor(rodOpts...), jobpost.StrategyDynamic, logger)

	deps := &Dependencies{
		Ctx:      ctx,
		Stdout:   stdout,
		Stderr:   stderr,
		Pipeline: scrape.NewCoordinator(static, dynamic, scrape.WithLogger(logger)),
	}
	if cli.Rate > 0 {
		deps.Limiter = batch.NewDomainLimiter(cli.Rate)
	}
	if cli.Out != "" {
		deps.Writer = fs.NewWriter(cli.Out)
	}

	cmd := &FetchCmd{
		URLs:        cli.URLs,
		Concurrency: cli.Concurrency,
		JSON:        cli.JSON,
	}

	return cmd.Run(deps)
}

// newLogger returns a text logger on w. Verbose enables per-attempt debug lines.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// newContentExtractor selects the main-content detector used for generic pages.
func newContentExtractor(name string) (jobpost.ContentExtractor, error) {
	switch name {
	case "", "trafilatura":
		return trafilatura.NewExtractor(), nil
	case "readability":
		return readability.NewExtractor(), nil
	case "none":
		return nil, nil
	}
	return nil, fmt.Errorf("unknown content extractor %q", name)
}
