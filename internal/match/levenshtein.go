package match

import (
	"sort"
	"strings"
)

// Levenshtein computes the edit distance between two strings, counting runes.
// It keeps two rows of the matrix, sized by the shorter string.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	if len(ra) == 0 {
		return len(rb)
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

// LevenshteinNormalized returns a similarity score between 0 and 1:
// 1 - distance / max(len(a), len(b)), lengths in runes.
func LevenshteinNormalized(a, b string) float64 {
	maxLen := max(len([]rune(a)), len([]rune(b)))
	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(Levenshtein(a, b))/float64(maxLen)
}

// SuggestThreshold is the lowest similarity Suggest accepts.
const SuggestThreshold = 0.5

// Suggest returns up to limit candidates similar to word, best first.
// Names are compared after NormalizeIdent; ties keep the candidates' order.
// A limit of zero or less means no limit.
func Suggest(word string, candidates []string, limit int) []string {
	type scored struct {
		name  string
		score float64
	}

	norm := NormalizeIdent(word)

	var ranked []scored

	seen := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		if seen[c] || strings.TrimSpace(c) == "" {
			continue
		}

		seen[c] = true

		score := LevenshteinNormalized(norm, NormalizeIdent(c))
		if score >= SuggestThreshold {
			ranked = append(ranked, scored{name: c, score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]string, len(ranked))
	for i, s := range ranked {
		out[i] = s.name
	}

	return out
}
