package jobpost

import "strings"

// Source identifies the job-board family a URL belongs to.
type Source string

// Known sources. Generic covers every URL that matches no named board.
const (
	SourceLinkedIn  Source = "LinkedIn"
	SourceIndeed    Source = "Indeed"
	SourceGlassdoor Source = "Glassdoor"
	SourceGeneric   Source = "Generic"
)

// sourceDomains lists the domain markers in match priority order.
var sourceDomains = []struct {
	domain string
	source Source
}{
	{"linkedin.com", SourceLinkedIn},
	{"indeed.com", SourceIndeed},
	{"glassdoor.com", SourceGlassdoor},
}

// Classify maps a URL to its Source. The match is a case-insensitive
// substring test so any input, however malformed, yields a Source.
func Classify(rawURL string) Source {
	lower := strings.ToLower(rawURL)
	for _, d := range sourceDomains {
		if strings.Contains(lower, d.domain) {
			return d.source
		}
	}
	return SourceGeneric
}

// RequiresJS reports whether pages from the source only populate their
// content after script execution.
func (s Source) RequiresJS() bool {
	return s != SourceGeneric
}

// String returns the source name.
func (s Source) String() string {
	return string(s)
}
