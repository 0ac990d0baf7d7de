package utils

// Levenshtein computes the edit distance between two strings: the minimum
// number of single-byte insertions, deletions or substitutions turning one
// into the other.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	if len(a) == 0 {
		return len(b)
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// Closest returns the candidate nearest to name by edit distance. Candidates
// further than half the length of name are ignored; ties go to the earlier
// candidate.
func Closest(name string, candidates []string) (string, bool) {
	best, bestDistance := "", len(name)/2+1

	for _, c := range candidates {
		if d := Levenshtein(name, c); d < bestDistance {
			best, bestDistance = c, d
		}
	}

	return best, best != ""
}
