package match

import (
	"slices"
	"strings"
)

// MinSuggestionScore is the lowest normalized similarity Suggest accepts.
const MinSuggestionScore = 0.5

// Suggestion is a candidate name with its similarity to the target.
type Suggestion struct {
	Name  string
	Score float64
}

// Rank scores every candidate against target and returns them best first.
// Ties are broken alphabetically so the order is deterministic.
func Rank(target string, candidates []string) []Suggestion {
	out := make([]Suggestion, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, Suggestion{Name: c, Score: Similarity(target, c)})
	}

	slices.SortFunc(out, func(a, b Suggestion) int {
		if a.Score != b.Score {
			if a.Score > b.Score {
				return -1
			}

			return 1
		}

		return strings.Compare(a.Name, b.Name)
	})

	return out
}

// Suggest returns the candidate closest to target, if any is close enough to
// be worth a "did you mean" hint.
func Suggest(target string, candidates []string) (string, bool) {
	ranked := Rank(target, candidates)
	if len(ranked) == 0 || ranked[0].Score < MinSuggestionScore || ranked[0].Name == target {
		return "", false
	}

	return ranked[0].Name, true
}
