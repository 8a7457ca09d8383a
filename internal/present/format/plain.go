package format

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mithrel/boolq/pkg/api"
)

func esc(field string) string {
	field = strings.ReplaceAll(field, "\t", "\\t")
	field = strings.ReplaceAll(field, "\n", "\\n")
	return field
}

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// WritePlainSuggestions writes one title per line, optionally with its
// score in a second column.
func WritePlainSuggestions(w io.Writer, suggestions []api.Suggestion, scores, headers bool) error {
	if !scores {
		for _, s := range suggestions {
			if _, err := fmt.Fprintln(w, esc(s.Title)); err != nil {
				return err
			}
		}
		return nil
	}
	tw := newTabWriter(w)
	if headers {
		_, _ = io.WriteString(tw, "score\ttitle\n")
	}
	for _, s := range suggestions {
		_, _ = fmt.Fprintf(tw, "%d\t%s\n", s.Score, esc(s.Title))
	}
	return tw.Flush()
}

// WritePlainCategories writes category names with their title counts.
func WritePlainCategories(w io.Writer, cats []api.CategorySummary, headers bool) error {
	tw := newTabWriter(w)
	if headers {
		_, _ = io.WriteString(tw, "category\ttitles\n")
	}
	for _, c := range cats {
		_, _ = fmt.Fprintf(tw, "%s\t%d\n", esc(c.Name), c.Count)
	}
	return tw.Flush()
}

// WritePlainTitles writes one title per line.
func WritePlainTitles(w io.Writer, titles []string) error {
	for _, t := range titles {
		if _, err := fmt.Fprintln(w, esc(t)); err != nil {
			return err
		}
	}
	return nil
}

// WritePlainQuery writes the query on one line. An empty query writes
// nothing.
func WritePlainQuery(w io.Writer, res api.QueryResult) error {
	if res.Query == "" {
		return nil
	}
	_, err := fmt.Fprintln(w, res.Query)
	return err
}
