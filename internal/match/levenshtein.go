package match

import (
	"strings"
	"unicode"
)

// Distance computes the Levenshtein distance between a and b, counting
// runes rather than bytes.
//
// Time complexity: O(len(a) * len(b))
// Space complexity: O(min(len(a), len(b))).
func Distance(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}

	if len(rb) == 0 {
		return len(ra)
	}

	// Keep the row as short as possible.
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// Similarity scores a against b between 0 and 1 after normalizing both:
// 1 - distance / max(len). Two empty names are identical.
func Similarity(a, b string) float64 {
	na, nb := Normalize(a), Normalize(b)

	longest := max(len([]rune(na)), len([]rune(nb)))
	if longest == 0 {
		return 1.0
	}

	return 1.0 - float64(Distance(na, nb))/float64(longest)
}

// Normalize case-folds s and strips separators, so "by_tag", "ByTag" and
// "by-tag" compare equal.
func Normalize(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || unicode.IsSpace(r)
}
