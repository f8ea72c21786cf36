package jobpost

import "strings"

// Placeholders used when a marker cannot be resolved.
const (
	UnknownTitle   = "Unknown Job Title"
	UnknownCompany = "Unknown Company"
)

// JobPosting is the normalized result of a successful extraction.
type JobPosting struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Source      Source `json:"source"`
}

// Fields holds the raw values located by a profile before normalization.
// Empty values mean the marker matched nothing.
type Fields struct {
	Title       string
	Company     string
	Description string
}

// NewJobPosting builds a JobPosting from located fields, substituting
// placeholders for an unresolved title or company.
func NewJobPosting(rawURL string, source Source, f Fields) *JobPosting {
	title := strings.TrimSpace(f.Title)
	if title == "" {
		title = UnknownTitle
	}
	company := strings.TrimSpace(f.Company)
	if company == "" {
		company = UnknownCompany
	}
	return &JobPosting{
		Title:       title,
		Company:     company,
		Description: strings.TrimSpace(f.Description),
		URL:         rawURL,
		Source:      source,
	}
}

// NormalizeText trims every line and drops blank ones.
func NormalizeText(s string) string {
	lines := strings.Split(s, "\n")
	out := lines[:0]
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
