package match

import "strings"

// Levenshtein computes the edit distance between two strings, counted in
// runes: the minimum number of insertions, deletions or substitutions
// turning a into b.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	// Keep the shorter string in ra so the rows stay small.
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

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// Closest returns the candidate with the smallest case-insensitive distance
// to name, provided it is at most maxDist and not name itself. Ties go to
// the earlier candidate.
func Closest(name string, candidates []string, maxDist int) (string, bool) {
	lower := strings.ToLower(name)

	best, bestDist := "", maxDist+1
	for _, c := range candidates {
		if c == name {
			continue
		}

		if d := Levenshtein(lower, strings.ToLower(c)); d < bestDist {
			best, bestDist = c, d
		}
	}

	return best, best != ""
}
