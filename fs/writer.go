// Package fs provides file-based storage for job postings.
package fs

import (
	"context"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/jobpost"
	"gopkg.in/yaml.v3"
)

// URLToPath converts a posting URL to a relative file path rooted at its host.
// Example: https://www.indeed.com/viewjob?jk=abc → indeed.com/viewjob_jk-abc.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", jobpost.Wrap(jobpost.EINVALID, err, "invalid url %q", rawURL)
	}

	host := sanitize(strings.TrimPrefix(strings.ToLower(u.Hostname()), "www."))
	if strings.Trim(host, ".") == "" {
		return "", jobpost.Errorf(jobpost.EINVALID, "invalid url %q: missing host", rawURL)
	}

	// Clean against a rooted path so ".." cannot climb above the host directory.
	p := strings.Trim(path.Clean("/"+u.Path), "/")
	if p == "" {
		p = "index"
	}

	segments := strings.Split(p, "/")
	for i, s := range segments {
		segments[i] = sanitize(s)
	}
	name := strings.Join(segments, "/")
	if u.RawQuery != "" {
		name += "_" + sanitize(u.RawQuery)
	}

	return host + "/" + name + ".md", nil
}

// sanitize replaces every byte outside [A-Za-z0-9._-] with '-'.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '_', r == '-':
			return r
		}
		return '-'
	}, s)
}

type frontmatter struct {
	Title   string `yaml:"title"`
	Company string `yaml:"company"`
	Source  string `yaml:"source"`
	URL     string `yaml:"url"`
	Fetched string `yaml:"fetched"`
}

// FormatPosting formats a posting as markdown with YAML frontmatter.
func FormatPosting(p *jobpost.JobPosting, fetched time.Time) (string, error) {
	meta, err := yaml.Marshal(frontmatter{
		Title:   p.Title,
		Company: p.Company,
		Source:  p.Source.String(),
		URL:     p.URL,
		Fetched: fetched.Format("2006-01-02"),
	})
	if err != nil {
		return "", jobpost.Wrap(jobpost.EINTERNAL, err, "encode frontmatter")
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(meta)
	b.WriteString("---\n\n")
	if p.Description != "" {
		b.WriteString(p.Description)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// Ensure Writer implements jobpost.PostingWriter at compile time.
var _ jobpost.PostingWriter = (*Writer)(nil)

// Writer writes postings as markdown files under a base directory.
type Writer struct {
	baseDir string
	now     func() time.Time
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir, now: time.Now}
}

// WritePosting writes a posting to disk, replacing any earlier file for the same URL.
func (w *Writer) WritePosting(ctx context.Context, p *jobpost.JobPosting) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	relPath, err := URLToPath(p.URL)
	if err != nil {
		return err
	}
	fullPath := filepath.Join(w.baseDir, filepath.FromSlash(relPath))

	content, err := FormatPosting(p, w.now())
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return jobpost.Wrap(jobpost.EINTERNAL, err, "create directory for %s", relPath)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		return jobpost.Wrap(jobpost.EINTERNAL, err, "write %s", relPath)
	}
	return nil
}
