// Package query derives the boolean search string from the form fields.
package query

import (
	"strings"

	"github.com/mithrel/boolq/pkg/api"
)

// Separator joins quoted titles.
const Separator = " OR "

// TitleLookup resolves a category to its stored titles.
type TitleLookup interface {
	Titles(category string) ([]string, bool)
}

// WorkingTitles returns the titles a query is built from.
//
// In free mode that is the input, the custom titles and the selected
// suggestions, in that order, with empty strings dropped. In category mode
// it is the stored list of the selected category, or nothing when the
// category is unknown.
func WorkingTitles(lookup TitleLookup, opts api.QueryOptions) []string {
	if opts.Mode == api.ModeCategory {
		if opts.Category == "" || lookup == nil {
			return nil
		}
		titles, ok := lookup.Titles(opts.Category)
		if !ok {
			return nil
		}
		return titles
	}

	out := make([]string, 0, 1+len(opts.Custom)+len(opts.Selected))
	for _, group := range [][]string{{opts.Input}, opts.Custom, opts.Selected} {
		for _, t := range group {
			if t != "" {
				out = append(out, t)
			}
		}
	}
	return out
}

// Format quotes every title and joins them with OR. Titles are emitted as
// is: no deduplication and no escaping of embedded quotes. An empty list
// gives "".
func Format(titles []string) string {
	if len(titles) == 0 {
		return ""
	}
	var b strings.Builder
	for i, t := range titles {
		if i > 0 {
			b.WriteString(Separator)
		}
		b.WriteByte('"')
		b.WriteString(t)
		b.WriteByte('"')
	}
	return b.String()
}

// Generate builds the boolean query for opts. "" means there is nothing to
// show or copy.
func Generate(lookup TitleLookup, opts api.QueryOptions) string {
	return Format(WorkingTitles(lookup, opts))
}
