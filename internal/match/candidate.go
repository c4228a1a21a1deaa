package match

import (
	"sort"
)

// DefaultThreshold is the minimum similarity a suggestion needs.
const DefaultThreshold = 0.6

// Suggestion is a known name that resembles an unknown one.
type Suggestion struct {
	Name  string
	Score float64
}

// SuggestionList is sorted by descending score.
type SuggestionList []Suggestion

// Names returns the suggested names in rank order.
func (l SuggestionList) Names() []string {
	out := make([]string, len(l))
	for i, s := range l {
		out[i] = s.Name
	}

	return out
}

// Suggest ranks known names by similarity to name and returns at most limit
// of them scoring at least threshold. Ties keep the order of known.
func Suggest(name string, known []string, limit int, threshold float64) SuggestionList {
	target := NormalizeName(name)
	if target == "" || limit <= 0 {
		return nil
	}

	var out SuggestionList

	for _, k := range known {
		score := Similarity(target, NormalizeName(k))
		if score < threshold {
			continue
		}

		out = append(out, Suggestion{Name: k, Score: score})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	if len(out) > limit {
		out = out[:limit]
	}

	return out
}
