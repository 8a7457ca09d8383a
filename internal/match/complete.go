package match

import "github.com/sahilm/fuzzy"

// CompleteNames returns the top n fuzzy matches for input among names.
// An empty input returns names unchanged; n <= 0 means no limit.
func CompleteNames(input string, names []string, n int) []string {
	if input == "" {
		return names
	}
	matches := fuzzy.Find(input, names)
	if len(matches) == 0 {
		return nil
	}

	limit := n
	if n <= 0 || len(matches) < limit {
		limit = len(matches)
	}

	out := make([]string, limit)
	for i := 0; i < limit; i++ {
		out[i] = matches[i].Str
	}
	return out
}
