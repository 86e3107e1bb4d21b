package changelog

import "strings"

// parseMarkdown extracts sections from a markdown release body. A section
// runs from its "##" heading to the next "##" heading or end of document.
// Bullets use "-" or "*". The markdown path decodes entity references,
// since hosted release APIs deliver bodies with HTML-escaped text.
func parseMarkdown(body string) ParsedRelease {
	var p ParsedRelease

	current := ""
	inPrimary := false
	var rawLines []string

	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)

		if isSectionHeading(trimmed) {
			current = strings.TrimSpace(strings.TrimPrefix(trimmed, "##"))
			inPrimary = current == headingFeatures
			if inPrimary {
				rawLines = append(rawLines, line)
			}
			continue
		}

		if inPrimary {
			rawLines = append(rawLines, line)
		}

		if !strings.HasPrefix(trimmed, "- ") && !strings.HasPrefix(trimmed, "* ") {
			continue
		}

		item := cleanItem(trimmed[2:], true)
		if item == "" {
			continue
		}
		p.appendItem(current, item)
	}

	if len(p.Features) > 0 {
		p.Raw = strings.TrimRight(strings.Join(rawLines, "\n"), "\n")
	}

	return p
}

// isSectionHeading reports whether a line is a level-2 markdown heading.
// Deeper headings ("###") do not terminate a section.
func isSectionHeading(line string) bool {
	return strings.HasPrefix(line, "## ") && !strings.HasPrefix(line, "###")
}
