package match

import (
	"sort"
	"strings"

	"github.com/mithrel/boolq/pkg/api"
)

// DefaultMaxResults is the suggestion count used by the form.
const DefaultMaxResults = 10

// Rank scores every title against term and returns the matches (score > 0)
// best first. Equal scores keep their input order. Duplicates are kept.
// A blank term yields an empty result without scoring anything.
func Rank(term string, titles []string) []api.Suggestion {
	out := []api.Suggestion{}
	if strings.TrimSpace(term) == "" {
		return out
	}
	for _, title := range titles {
		if s := Score(term, title); s > 0 {
			out = append(out, api.Suggestion{Title: title, Score: s})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// TopN truncates a ranking to at most maxResults entries. maxResults <= 0 yields nothing.
func TopN(ranked []api.Suggestion, maxResults int) []api.Suggestion {
	if maxResults <= 0 {
		return []api.Suggestion{}
	}
	if len(ranked) > maxResults {
		return ranked[:maxResults]
	}
	return ranked
}

// SortedSuggestions returns the titles of the maxResults best matches for term.
func SortedSuggestions(term string, titles []string, maxResults int) []string {
	ranked := TopN(Rank(term, titles), maxResults)
	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.Title
	}
	return out
}
