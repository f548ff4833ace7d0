package similarity

import "strings"

// EditDistance returns the Levenshtein distance between a and b: the
// minimum number of single-character insertions, deletions and
// substitutions (unit cost each) needed to turn a into b.
func EditDistance(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := 0; i <= len(a); i++ {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j
		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[i] = min3(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// Score quantifies how close two domain strings are, as
// (maxLen - editDistance) / maxLen. Identical strings score 1.0;
// disjoint strings of equal length score near 0.
func Score(a, b string) float64 {
	if a == b {
		return 1.0
	}

	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 1.0
	}

	return float64(maxLen-EditDistance(a, b)) / float64(maxLen)
}

// Look-alike sequences scammers substitute into legitimate names, paired
// with the character they imitate. The list is ordered: "1" folds to "i"
// before the "l" entry is reached, so folding is deterministic. "rn" for m
// and "vv" for w are multi-character on purpose.
var substitutions = []struct {
	plain     string
	lookalike string
}{
	{"a", "@"}, {"a", "4"},
	{"e", "3"},
	{"i", "1"}, {"i", "!"},
	{"o", "0"},
	{"s", "$"}, {"s", "5"},
	{"l", "1"}, {"l", "I"},
	{"m", "rn"},
	{"w", "vv"},
}

// HasCharacterSubstitution reports whether candidate equals legitimate after
// folding known look-alike sequences in the legitimate string back to their
// plain form. The transform runs one direction only — over legitimate, never
// over candidate — which determines exactly which domains can match.
func HasCharacterSubstitution(candidate, legitimate string) bool {
	transformed := legitimate
	for _, sub := range substitutions {
		transformed = strings.ReplaceAll(transformed, sub.lookalike, sub.plain)
	}
	return transformed == candidate
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
