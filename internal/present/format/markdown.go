package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/mithrel/boolq/pkg/api"
)

// DefaultStyle is the glamour style used for pretty output.
const DefaultStyle = "dracula"

func renderMarkdown(w io.Writer, md, style string) error {
	if style == "" {
		style = DefaultStyle
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

// WritePrettyQuery renders the query and the titles it was built from.
func WritePrettyQuery(w io.Writer, res api.QueryResult, style string) error {
	var b strings.Builder
	b.WriteString("# Boolean query\n\n")
	if res.Query == "" {
		b.WriteString("_Nothing to generate: enter a job title or pick a category._\n")
		return renderMarkdown(w, b.String(), style)
	}
	fmt.Fprintf(&b, "**Mode:** %s | **Titles:** %d\n\n", res.Mode, len(res.Titles))
	b.WriteString("```\n" + res.Query + "\n```\n")
	return renderMarkdown(w, b.String(), style)
}

// WritePrettySuggestions renders a numbered suggestion list.
func WritePrettySuggestions(w io.Writer, suggestions []api.Suggestion, scores bool, style string) error {
	var b strings.Builder
	b.WriteString("# Suggestions\n\n")
	if len(suggestions) == 0 {
		b.WriteString("_No matching titles._\n")
	}
	for i, s := range suggestions {
		if scores {
			fmt.Fprintf(&b, "%d. %s (%d)\n", i+1, s.Title, s.Score)
		} else {
			fmt.Fprintf(&b, "%d. %s\n", i+1, s.Title)
		}
	}
	return renderMarkdown(w, b.String(), style)
}

// WritePrettyCategories renders categories as a table.
func WritePrettyCategories(w io.Writer, cats []api.CategorySummary, style string) error {
	var b strings.Builder
	b.WriteString("# Categories\n\n| Category | Titles |\n|---|---:|\n")
	for _, c := range cats {
		fmt.Fprintf(&b, "| %s | %d |\n", strings.ReplaceAll(c.Name, "|", `\|`), c.Count)
	}
	return renderMarkdown(w, b.String(), style)
}

// WritePrettyTitles renders the titles of one category as a bullet list.
func WritePrettyTitles(w io.Writer, category string, titles []string, style string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", category)
	for _, t := range titles {
		b.WriteString("- " + t + "\n")
	}
	return renderMarkdown(w, b.String(), style)
}
