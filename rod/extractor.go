// Package rod provides a headless Chrome implementation of jobpost.Extractor
// for job pages that populate their content with JavaScript.
package rod

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/jobpost"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultNavigationTimeout bounds one browser session, from page creation
// until the last marker has been evaluated.
const DefaultNavigationTimeout = 30 * time.Second

// DefaultIdleWindow is how long the network must stay silent before the
// page counts as quiescent.
const DefaultIdleWindow = 500 * time.Millisecond

// DefaultIdleTimeout caps the wait for network quiescence. Pages that poll
// forever are read once the cap expires.
const DefaultIdleTimeout = 10 * time.Second

// closeTimeout bounds the CDP close call before the process is killed.
const closeTimeout = 5 * time.Second

// Long-lived connections never settle and would hold off quiescence.
var idleExcludeTypes = []proto.NetworkResourceType{
	proto.NetworkResourceTypeWebSocket,
	proto.NetworkResourceTypeEventSource,
	proto.NetworkResourceTypeMedia,
}

// markerJS returns the text of the first candidate selector that matches an
// element with text. Meta elements contribute their content attribute.
const markerJS = `(candidates) => {
	for (const selector of candidates) {
		let el = null;
		try {
			el = document.querySelector(selector);
		} catch (e) {
			continue;
		}
		if (!el) {
			continue;
		}
		const text = el.tagName === "META"
			? (el.getAttribute("content") || "")
			: (el.innerText || el.textContent || "");
		if (text.trim() !== "") {
			return text;
		}
	}
	return "";
}`

// Ensure Extractor implements jobpost.Extractor at compile time.
var _ jobpost.Extractor = (*Extractor)(nil)

// Extractor renders job pages in a headless Chrome browser and evaluates
// profile markers against the live DOM.
//
// Every call to Extract launches its own browser process and terminates it
// before returning, so Extractor is safe for concurrent use. Callers should
// bound concurrency since each call costs a full browser process.
type Extractor struct {
	navTimeout  time.Duration
	idleWindow  time.Duration
	idleTimeout time.Duration
	bin         string
	leakless    bool
	onLaunch    func(pid int)
	logger      *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithNavigationTimeout sets the bound on one browser session.
// Defaults to DefaultNavigationTimeout (30s) if not specified.
func WithNavigationTimeout(d time.Duration) Option {
	return func(e *Extractor) {
		e.navTimeout = d
	}
}

// WithIdleWindow sets how long the network must be silent for the page to
// count as quiescent, and the cap on waiting for it.
func WithIdleWindow(window, timeout time.Duration) Option {
	return func(e *Extractor) {
		e.idleWindow = window
		e.idleTimeout = timeout
	}
}

// WithBrowserBin sets the Chrome binary to launch. By default rod looks up
// a local installation and downloads one if none is found.
func WithBrowserBin(path string) Option {
	return func(e *Extractor) {
		e.bin = path
	}
}

// WithLeakless toggles the leakless guard that kills the browser if the
// current process dies. Enabled by default.
func WithLeakless(enabled bool) Option {
	return func(e *Extractor) {
		e.leakless = enabled
	}
}

// WithLaunchHook registers fn to receive the PID of every launched browser.
func WithLaunchHook(fn func(pid int)) Option {
	return func(e *Extractor) {
		e.onLaunch = fn
	}
}

// WithLogger sets the logger for browser lifecycle events.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		e.logger = logger
	}
}

// NewExtractor creates a new Extractor. No browser is started until Extract.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		navTimeout:  DefaultNavigationTimeout,
		idleWindow:  DefaultIdleWindow,
		idleTimeout: DefaultIdleTimeout,
		leakless:    true,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract launches a browser, renders url and resolves the profile markers.
//
// Launch failures return EBROWSERLAUNCH. A session that exceeds the
// navigation timeout or a page that never becomes ready returns ETIMEOUT.
// Missing markers degrade to placeholders. The browser process is
// terminated on every return path.
func (e *Extractor) Extract(ctx context.Context, url string, profile *jobpost.Profile) (*jobpost.JobPosting, error) {
	if err := ctx.Err(); err != nil {
		return nil, navigationError(err, url)
	}

	sess, err := e.launch()
	if err != nil {
		return nil, jobpost.Wrap(jobpost.EBROWSERLAUNCH, err, "starting headless browser")
	}
	defer sess.close()

	ctx, cancel := context.WithTimeout(ctx, e.navTimeout)
	defer cancel()

	fields, err := e.render(ctx, sess.browser, url, profile)
	if err != nil {
		return nil, navigationError(err, url)
	}

	return jobpost.NewJobPosting(url, profile.Source, fields), nil
}

// session is one launched browser process and its CDP connection.
type session struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
	logger   *slog.Logger
}

// launch starts an isolated browser process with stability flags and
// connects to it. On failure no process is left running.
func (e *Extractor) launch() (*session, error) {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Set("no-sandbox").
		Set("disable-setuid-sandbox").
		Leakless(e.leakless).
		Headless(true)
	if e.bin != "" {
		l = l.Bin(e.bin)
	}

	u, err := l.Launch()
	if err != nil {
		l.Kill()
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	pid := l.PID()
	e.logger.Debug("browser launched", "pid", pid)
	if e.onLaunch != nil {
		e.onLaunch(pid)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		l.Cleanup()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &session{launcher: l, browser: browser, logger: e.logger}, nil
}

// close shuts the browser down, kills the process and removes its
// temporary profile directory. It blocks until the process has exited.
func (s *session) close() {
	if err := s.browser.Timeout(closeTimeout).Close(); err != nil {
		s.logger.Debug("browser close", "err", err)
	}
	pid := s.launcher.PID()
	s.launcher.Kill()
	s.launcher.Cleanup()
	s.logger.Debug("browser terminated", "pid", pid)
}

// render navigates to url, waits for the page to settle and evaluates the
// profile markers against the live DOM.
func (e *Extractor) render(ctx context.Context, browser *rod.Browser, url string, profile *jobpost.Profile) (jobpost.Fields, error) {
	page, err := browser.Context(ctx).Page(proto.TargetCreateTarget{})
	if err != nil {
		return jobpost.Fields{}, err
	}
	defer page.Close()

	idleCtx, cancelIdle := context.WithTimeout(ctx, e.idleTimeout)
	defer cancelIdle()
	waitIdle := page.Context(idleCtx).WaitRequestIdle(e.idleWindow, nil, nil, idleExcludeTypes)

	if err := page.Navigate(url); err != nil {
		return jobpost.Fields{}, err
	}
	if err := page.WaitLoad(); err != nil {
		return jobpost.Fields{}, err
	}
	waitIdle()
	cancelIdle()

	// The idle wait gives up silently; only the session deadline is fatal.
	if err := ctx.Err(); err != nil {
		return jobpost.Fields{}, err
	}

	if _, err := page.Element("body"); err != nil {
		return jobpost.Fields{}, err
	}

	var fields jobpost.Fields
	if fields.Title, err = evalMarker(page, profile.Title); err != nil {
		return jobpost.Fields{}, err
	}
	if fields.Company, err = evalMarker(page, profile.Company); err != nil {
		return jobpost.Fields{}, err
	}
	if fields.Description, err = evalMarker(page, descriptionCandidates(profile)); err != nil {
		return jobpost.Fields{}, err
	}
	return fields, nil
}

// descriptionCandidates returns the description selectors for profile. Profiles
// with ContentFallback end with the whole body so a rendered page with text
// never yields an empty description.
func descriptionCandidates(profile *jobpost.Profile) []string {
	if !profile.ContentFallback {
		return profile.Description
	}
	candidates := make([]string, 0, len(profile.Description)+1)
	candidates = append(candidates, profile.Description...)
	return append(candidates, "body")
}

// evalMarker resolves one marker's candidates in page context.
func evalMarker(page *rod.Page, candidates []string) (string, error) {
	if len(candidates) == 0 {
		return "", nil
	}
	res, err := page.Eval(markerJS, candidates)
	if err != nil {
		return "", err
	}
	return jobpost.NormalizeText(res.Value.Str()), nil
}

// navigationError classifies a session failure. Deadline expiry and pages
// that fail to load both mean the page never became ready.
func navigationError(err error, url string) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return jobpost.Wrap(jobpost.ETIMEOUT, err, "navigation to %s exceeded its timeout", url)
	case errors.Is(err, context.Canceled):
		return jobpost.Wrap(jobpost.EINTERNAL, err, "navigation to %s cancelled", url)
	default:
		return jobpost.Wrap(jobpost.ETIMEOUT, err, "page %s never became ready", url)
	}
}
