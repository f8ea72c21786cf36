// Package goquery locates job posting fields in raw HTML using CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/jobpost"
	"golang.org/x/net/html"
)

var _ jobpost.Parser = (*Parser)(nil)

// nonContent lists elements whose text never belongs to a description.
const nonContent = "script, style, noscript, template"

// Parser resolves profile markers against a static HTML document.
// It never executes scripts. Parser is safe for concurrent use.
type Parser struct {
	content jobpost.ContentExtractor
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithContentExtractor sets the main-content detector used for profiles
// with ContentFallback when no description marker matches.
func WithContentExtractor(ce jobpost.ContentExtractor) ParserOption {
	return func(p *Parser) {
		p.content = ce
	}
}

// NewParser creates a new Parser.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse locates the title, company and description described by profile.
//
// Description resolution order:
//   - the first Description candidate with text
//   - the content extractor's main block (ContentFallback profiles only)
//   - the body text with script and style content removed
//
// Parse returns ENOCONTENT when the document body has no text at all.
func (p *Parser) Parse(rawHTML string, profile *jobpost.Profile) (jobpost.Fields, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return jobpost.Fields{}, jobpost.Wrap(jobpost.ENOCONTENT, err, "failed to parse HTML")
	}
	doc.Find(nonContent).Remove()

	fields := jobpost.Fields{
		Title:   firstMatch(doc, profile.Title),
		Company: firstMatch(doc, profile.Company),
	}

	fields.Description = firstMatch(doc, profile.Description)
	if fields.Description == "" && profile.ContentFallback {
		fields.Description = p.mainContent(rawHTML)
	}
	if fields.Description == "" {
		fields.Description = jobpost.NormalizeText(blockText(doc.Find("body")))
	}

	// A shell page with a title but an empty body is what script-rendered
	// sites serve to plain HTTP clients.
	if fields.Description == "" {
		return jobpost.Fields{}, jobpost.Errorf(jobpost.ENOCONTENT, "document body has no text")
	}
	return fields, nil
}

// mainContent returns the text of the detected main content block, or ""
// when no detector is configured or detection fails.
func (p *Parser) mainContent(rawHTML string) string {
	if p.content == nil {
		return ""
	}
	result, err := p.content.Extract(rawHTML)
	if err != nil || result == nil || strings.TrimSpace(result.ContentHTML) == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(result.ContentHTML))
	if err != nil {
		return ""
	}
	doc.Find(nonContent).Remove()
	return jobpost.NormalizeText(blockText(doc.Selection))
}

// firstMatch returns the text of the first element matched by the first
// candidate selector that yields non-empty text.
func firstMatch(doc *goquery.Document, candidates []string) string {
	for _, selector := range candidates {
		if text := selectionText(doc.Find(selector).First()); text != "" {
			return text
		}
	}
	return ""
}

// selectionText returns the normalized text of sel. Meta elements
// contribute their content attribute.
func selectionText(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return ""
	}
	if goquery.NodeName(sel) == "meta" {
		content, _ := sel.Attr("content")
		return strings.TrimSpace(content)
	}
	return jobpost.NormalizeText(blockText(sel))
}

// blockNodes end a line of text.
var blockNodes = map[string]bool{
	"p": true, "div": true, "li": true, "br": true, "tr": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"section": true, "article": true, "ul": true, "ol": true, "header": true,
	"footer": true, "main": true, "aside": true, "table": true, "dd": true, "dt": true,
}

// blockText returns the text of sel with a line break after each
// block-level element so paragraphs stay separated.
func blockText(sel *goquery.Selection) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
		case html.ElementNode:
			if n.Data == "script" || n.Data == "style" {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode && blockNodes[n.Data] {
			b.WriteByte('\n')
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return b.String()
}
