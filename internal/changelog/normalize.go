package changelog

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// Inline markup tags, e.g. <code>, </b>
	tagPattern = regexp.MustCompile(`<[^>]*>`)
	// Trailing parenthesized reference markers: "(#1234)" or "(#12, #34)"
	refPattern = regexp.MustCompile(`\s*\(\s*#\d+(?:\s*,\s*#\d+)*\s*\)\s*$`)
	// Runs of whitespace, including newlines inside wrapped list items
	spacePattern = regexp.MustCompile(`\s+`)
	// Named or numeric entity references: &amp; &#60; &#x3C;
	entityPattern = regexp.MustCompile(`&(#[xX]?[0-9a-fA-F]+|[a-zA-Z]+);`)
)

var namedEntities = map[string]string{
	"lt":   "<",
	"gt":   ">",
	"amp":  "&",
	"quot": `"`,
	"apos": "'",
	"nbsp": " ",
}

// cleanItem normalizes one extracted bullet or list item: strips inline
// tags, drops trailing issue references, collapses whitespace and trims.
// decodeEntities is set on the markdown path only; the HTML tokenizer has
// already decoded entity references by the time items reach us, and
// decoding twice would mangle literal text.
func cleanItem(s string, decodeEntities bool) string {
	s = tagPattern.ReplaceAllString(s, "")
	if decodeEntities {
		s = decodeEntityRefs(s)
	}
	s = refPattern.ReplaceAllString(s, "")
	s = spacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// decodeEntityRefs decodes the named entities lt, gt, amp, quot, apos and
// nbsp plus decimal and hexadecimal numeric references. Unknown references
// are left untouched.
func decodeEntityRefs(s string) string {
	return entityPattern.ReplaceAllStringFunc(s, func(m string) string {
		ref := m[1 : len(m)-1]

		if strings.HasPrefix(ref, "#") {
			num := ref[1:]
			base := 10
			if len(num) > 1 && (num[0] == 'x' || num[0] == 'X') {
				base = 16
				num = num[1:]
			}
			n, err := strconv.ParseInt(num, base, 32)
			if err != nil || n <= 0 {
				return m
			}
			return string(rune(n))
		}

		if decoded, ok := namedEntities[strings.ToLower(ref)]; ok {
			return decoded
		}
		return m
	})
}
