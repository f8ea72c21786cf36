// Package jobpost extracts normalized job postings from arbitrary job
// advertisement URLs. It classifies the URL, picks the cheapest extraction
// strategy that can succeed (plain HTTP or a headless browser) and returns a
// single JobPosting or a single error.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, rod/, trafilatura/).
package jobpost
