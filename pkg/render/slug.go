package render

import (
	"slices"
	"strconv"
	"strings"
	"unicode"
)

// slugify converts heading text to an anchor id.
// Algorithm:
//  1. Lowercase.
//  2. Keep letters, numbers, hyphens and underscores.
//  3. Replace spaces with hyphens.
//  4. Collapse consecutive hyphens, trim leading/trailing ones.
func slugify(text string) string {
	var buf strings.Builder
	buf.Grow(len(text))

	prevHyphen := false

	for _, ch := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(ch) || unicode.IsNumber(ch):
			buf.WriteRune(ch)
			prevHyphen = false
		case ch == '-' || ch == '_':
			buf.WriteRune(ch)
			prevHyphen = (ch == '-')
		case unicode.IsSpace(ch):
			if !prevHyphen && buf.Len() > 0 {
				buf.WriteByte('-')
				prevHyphen = true
			}
		}
		// Other punctuation is silently dropped.
	}

	result := strings.Trim(buf.String(), "-")
	for strings.Contains(result, "--") {
		result = strings.ReplaceAll(result, "--", "-")
	}
	return result
}

// findAnchor disambiguates name against every id already used in the
// document by appending -1, -2, ... until unused. A document can repeat a
// title many times, so the check runs against the whole used set each
// iteration, not just the previous collision.
func findAnchor(used []string, name string) string {
	if !slices.Contains(used, name) {
		return name
	}
	for i := 1; ; i++ {
		candidate := name + "-" + strconv.Itoa(i)
		if !slices.Contains(used, candidate) {
			return candidate
		}
	}
}
