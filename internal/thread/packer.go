// Package thread packs categorized release content into an ordered
// sequence of length-bounded text segments, meant to be posted as a reply
// chain. The packer guarantees that no segment exceeds the budget's hard
// maximum, that no feature is ever dropped (only shown truncated), and
// that secondary items elided past the preview limit are accounted for by
// an exact count.
package thread

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Thread is an ordered sequence of segments forming one reply chain.
type Thread struct {
	Segments []string
}

// Category is one secondary section rendered after the features, e.g.
// {"Bug Fixes", [...]}.
type Category struct {
	Title string
	Items []string
}

// Pack produces a segment thread for one release. It is a pure function of
// its arguments: identical input yields identical output. The only error
// condition is an invalid budget.
func Pack(b Budget, versionLabel string, features []string, link string, categories []Category) (Thread, error) {
	if err := b.Validate(); err != nil {
		return Thread{}, fmt.Errorf("invalid budget: %w", err)
	}

	maxSeg := b.MaxSegment
	target := b.SoftTarget
	if b.Numbered {
		maxSeg -= numberingReserve
		target -= numberingReserve
	}
	if target > maxSeg {
		target = maxSeg
	}

	features = truncateAll(features, b.MaxItem)
	cats := make([]Category, 0, len(categories))
	for _, c := range categories {
		if len(c.Items) == 0 {
			continue
		}
		cats = append(cats, Category{Title: c.Title, Items: truncateAll(c.Items, b.MaxItem)})
	}

	header := headerLine(versionLabel, len(features), cats)

	// Short release fast path: one fully composed segment when everything
	// fits and the feature list is small enough to read inline.
	if len(features) <= b.InlineFeatureMax {
		if single := composeSingle(header, features, cats, link); runeLen(single) <= maxSeg {
			return finish(b, []string{single}), nil
		}
	}

	segments := []string{header}
	segments = append(segments, packFeatures(features, target)...)
	segments = append(segments, packCategories(cats, b.PreviewItems, target)...)
	segments = appendFooter(segments, link, maxSeg)

	return finish(b, segments), nil
}

// Truncate caps s at max runes. A string over the limit is cut so that the
// result is exactly max runes long and ends in the ellipsis marker.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return strings.Repeat(".", max)
	}
	return string(r[:max-3]) + "..."
}

func truncateAll(items []string, max int) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = Truncate(item, max)
	}
	return out
}

// DisplayVersion elides a trailing ".0" patch component from a version
// label: "0.92.0" reads "0.92", while "0.92.1" is kept verbatim.
func DisplayVersion(v string) string {
	parts := strings.Split(v, ".")
	if len(parts) == 3 && parts[2] == "0" {
		return strings.Join(parts[:2], ".")
	}
	return v
}

// headerLine renders the leading summary: version plus a human-readable
// tally of what the release contains.
func headerLine(versionLabel string, featureCount int, cats []Category) string {
	return fmt.Sprintf("Version %s is out: %s", DisplayVersion(versionLabel), tally(featureCount, cats))
}

func tally(featureCount int, cats []Category) string {
	var parts []string
	if featureCount > 0 {
		parts = append(parts, countPhrase(featureCount, "feature", "features"))
	}
	for _, c := range cats {
		singular, plural := categoryNouns(c.Title)
		parts = append(parts, countPhrase(len(c.Items), singular, plural))
	}
	if len(parts) == 0 {
		return "no notable content"
	}
	return joinWithAnd(parts)
}

func countPhrase(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}

func categoryNouns(title string) (singular, plural string) {
	switch title {
	case "Bug Fixes":
		return "bug fix", "bug fixes"
	case "Documentation":
		return "documentation change", "documentation changes"
	case "Chores":
		return "chore", "chores"
	default:
		t := strings.ToLower(title)
		return t + " item", t + " items"
	}
}

func joinWithAnd(parts []string) string {
	if len(parts) == 1 {
		return parts[0]
	}
	return strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1]
}

// composeSingle renders the whole release as one segment: header, every
// feature, every secondary item and the link. Used only when the result
// fits the hard maximum.
func composeSingle(header string, features []string, cats []Category, link string) string {
	var b strings.Builder
	b.WriteString(header)

	if len(features) > 0 {
		b.WriteString("\n")
		for _, f := range features {
			b.WriteString("\n- " + f)
		}
	}

	for _, c := range cats {
		b.WriteString("\n\n" + c.Title + ":")
		for _, item := range c.Items {
			b.WriteString("\n- " + item)
		}
	}

	if link != "" {
		b.WriteString("\n\n" + link)
	}

	return b.String()
}

// packFeatures fills feature segments greedily up to the soft target,
// opening a "(cont.)" segment when the next feature would overflow. A
// feature that alone exceeds the target still gets its own segment; it is
// never dropped and never split below item granularity.
func packFeatures(features []string, target int) []string {
	if len(features) == 0 {
		return nil
	}

	var segments []string
	current := ""

	for _, f := range features {
		line := "\n- " + f
		if current == "" {
			current = "Features:" + line
			continue
		}
		if runeLen(current)+runeLen(line) > target {
			segments = append(segments, current)
			current = "Features (cont.):" + line
			continue
		}
		current += line
	}

	return append(segments, current)
}

// packCategories renders each secondary category as a labeled block and
// combines blocks into shared segments while the soft target allows. A
// category whose own rendering exceeds the target is split across
// consecutive segments and always owns them.
func packCategories(cats []Category, preview, target int) []string {
	var segments []string
	current := ""

	flush := func() {
		if current != "" {
			segments = append(segments, current)
			current = ""
		}
	}

	for _, c := range cats {
		chunks := renderCategory(c, preview, target)
		if len(chunks) == 0 {
			continue
		}
		if len(chunks) > 1 {
			flush()
			segments = append(segments, chunks...)
			continue
		}

		block := chunks[0]
		switch {
		case current == "":
			current = block
		case runeLen(current)+runeLen(block)+2 <= target:
			current += "\n\n" + block
		default:
			flush()
			current = block
		}
	}
	flush()

	return segments
}

// renderCategory renders one category with preview elision applied:
// at most preview items followed by an exact "K more..." line. When even
// the elided rendering exceeds the target, the displayed items are split
// across "(cont.)" chunks with the elision line only on the final chunk.
func renderCategory(c Category, preview, target int) []string {
	shown := c.Items
	elided := 0
	if len(shown) > preview {
		elided = len(shown) - preview
		shown = shown[:preview]
	}

	moreLine := ""
	if elided > 0 {
		moreLine = fmt.Sprintf("%d more...", elided)
	}

	block := c.Title + ":"
	for _, item := range shown {
		block += "\n- " + item
	}
	if moreLine != "" {
		block += "\n" + moreLine
	}
	if runeLen(block) <= target {
		return []string{block}
	}

	var chunks []string
	current := c.Title + ":"
	hasItems := false

	for _, item := range shown {
		line := "\n- " + item
		if hasItems && runeLen(current)+runeLen(line) > target {
			chunks = append(chunks, current)
			current = c.Title + " (cont.):" + line
			continue
		}
		current += line
		hasItems = true
	}

	if moreLine != "" {
		line := "\n" + moreLine
		if hasItems && runeLen(current)+runeLen(line) > target {
			chunks = append(chunks, current)
			current = c.Title + " (cont.):" + line
		} else {
			current += line
		}
	}

	return append(chunks, current)
}

// appendFooter attaches the trailing link. It merges into the last content
// segment whenever the merged segment still fits the hard maximum, and
// only otherwise emits a separate final segment. This rule is fixed; see
// the footer merge tests.
func appendFooter(segments []string, link string, maxSeg int) []string {
	if link == "" {
		return segments
	}

	last := segments[len(segments)-1]
	if runeLen(last)+runeLen(link)+2 <= maxSeg {
		segments[len(segments)-1] = last + "\n\n" + link
		return segments
	}

	return append(segments, link)
}

// finish applies optional sequence numbering once the total is known. The
// suffix width was already reserved before packing.
func finish(b Budget, segments []string) Thread {
	if b.Numbered {
		n := len(segments)
		for i := range segments {
			segments[i] = fmt.Sprintf("%s (%d/%d)", segments[i], i+1, n)
		}
	}
	return Thread{Segments: segments}
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
