package session

import "github.com/agnivade/levenshtein"

// suggest returns the candidate closest to name, if it is close enough to be
// a typo: at most a third of the name's length in edits, and at least one.
func suggest(name string, candidates []string) (string, bool) {
	limit := max(1, len(name)/3)
	best, bestDist := "", limit+1
	for _, c := range candidates {
		if d := levenshtein.ComputeDistance(name, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, bestDist <= limit
}
