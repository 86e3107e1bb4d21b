// Package changelog extracts structured content from free-form release
// bodies. Bodies arrive as either HTML (heading and list-item markup) or
// markdown (heading and bulleted lines); detection tries HTML first and
// falls back to markdown only when the HTML pass finds no feature items.
package changelog

// Recognized section headings, matched case-sensitively against markdown
// "##" headings or HTML <h2> elements.
const (
	headingFeatures = "New Features"
	headingBugFixes = "Bug Fixes"
	headingDocs     = "Documentation"
	headingChores   = "Chores"
)

// ParsedRelease is the structured content extracted from one release body.
// It is derived deterministically and never mutated after creation.
type ParsedRelease struct {
	Features []string
	BugFixes []string
	Docs     []string
	Chores   []string
	Raw      string // matched primary section text, for diagnostics
}

// Empty reports whether no content was extracted at all.
func (p ParsedRelease) Empty() bool {
	return len(p.Features) == 0 && len(p.BugFixes) == 0 &&
		len(p.Docs) == 0 && len(p.Chores) == 0
}

// Extract parses a raw release body into categorized item lists. The HTML
// dialect is attempted first; markdown is the fallback when HTML parsing
// yields zero primary-section items. A body matching neither dialect is not
// an error: it resolves to the zero ParsedRelease ("no notable content").
func Extract(body string) ParsedRelease {
	if p := parseHTML(body); len(p.Features) > 0 {
		return p
	}
	if p := parseMarkdown(body); len(p.Features) > 0 {
		return p
	}
	return ParsedRelease{}
}

// appendItem routes one cleaned item into the section named by heading.
// Items under unrecognized headings are ignored.
func (p *ParsedRelease) appendItem(heading, item string) {
	switch heading {
	case headingFeatures:
		p.Features = append(p.Features, item)
	case headingBugFixes:
		p.BugFixes = append(p.BugFixes, item)
	case headingDocs:
		p.Docs = append(p.Docs, item)
	case headingChores:
		p.Chores = append(p.Chores, item)
	}
}
