package changelog

import (
	"strings"

	"golang.org/x/net/html"
)

// parseHTML extracts sections from an HTML release body: <h2> headings
// followed by <li> items. Document order provides the section boundary
// rule for free, since the current section changes at each sibling <h2>
// regardless of how the list markup nests. The tokenizer decodes entity
// references itself, so items skip the normalizer's decode step.
func parseHTML(body string) ParsedRelease {
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return ParsedRelease{}
	}

	var p ParsedRelease
	current := ""
	var rawParts []string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "h2":
				current = strings.TrimSpace(textContent(n))
				if current == headingFeatures {
					rawParts = append(rawParts, current)
				}
				return
			case "li":
				item := cleanItem(textContent(n), false)
				if item != "" {
					p.appendItem(current, item)
					if current == headingFeatures {
						rawParts = append(rawParts, item)
					}
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if len(p.Features) > 0 {
		p.Raw = strings.Join(rawParts, "\n")
	}

	return p
}

// textContent concatenates the text nodes beneath n.
func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
