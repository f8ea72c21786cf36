package jobpost

// Profile holds the structural locators used to find the title, company and
// description on a source's pages. Each field lists CSS selector candidates
// in priority order; the first candidate that yields text wins. A matching
// meta element contributes its content attribute instead of its text.
//
// Profiles returned by ProfileFor are shared and must not be modified.
type Profile struct {
	Source      Source
	Title       []string
	Company     []string
	Description []string

	// ContentFallback enables main-content detection when no Description
	// candidate matches, before falling back to the whole body text.
	ContentFallback bool
}

var profiles = map[Source]*Profile{
	SourceLinkedIn: {
		Source: SourceLinkedIn,
		Title: []string{
			".job-details-jobs-unified-top-card__job-title",
			".top-card-layout__title",
		},
		Company: []string{
			".job-details-jobs-unified-top-card__company-name",
			".topcard__org-name-link",
		},
		Description: []string{
			".jobs-description__content",
			".show-more-less-html__markup",
		},
	},
	SourceIndeed: {
		Source:      SourceIndeed,
		Title:       []string{".jobsearch-JobInfoHeader-title"},
		Company:     []string{".jobsearch-InlineCompanyRating-companyHeader", "[data-company-name]"},
		Description: []string{"#jobDescriptionText"},
	},
	SourceGlassdoor: {
		Source:      SourceGlassdoor,
		Title:       []string{".job-title", "[data-test='job-title']"},
		Company:     []string{".employer-name", "[data-test='employer-name']"},
		Description: []string{".jobDescriptionContent", "[class^='JobDetails_jobDescription']"},
	},
	SourceGeneric: {
		Source:          SourceGeneric,
		Title:           []string{"h1", "title"},
		Company:         []string{`meta[property="og:site_name"]`, `meta[name="author"]`},
		Description:     []string{"main", "article", `div[role="main"]`},
		ContentFallback: true,
	},
}

// ProfileFor returns the extraction profile for a source.
// Unknown sources get the Generic profile.
func ProfileFor(s Source) *Profile {
	if p, ok := profiles[s]; ok {
		return p
	}
	return profiles[SourceGeneric]
}

// Profiles returns the profiles of all known sources.
func Profiles() []*Profile {
	return []*Profile{
		profiles[SourceLinkedIn],
		profiles[SourceIndeed],
		profiles[SourceGlassdoor],
		profiles[SourceGeneric],
	}
}
