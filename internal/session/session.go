// Package session holds the editable state of the query form. Suggestions
// and the query are recomputed from the current fields on every call.
package session

import (
	"slices"
	"strings"

	"github.com/mithrel/boolq/internal/catalog"
	"github.com/mithrel/boolq/internal/match"
	"github.com/mithrel/boolq/internal/query"
	"github.com/mithrel/boolq/pkg/api"
)

// Form is the state behind one query form.
type Form struct {
	Mode     api.Mode
	Input    string
	Category string
	Selected []string
	Custom   []string

	catalog        *catalog.Catalog
	maxSuggestions int
}

// NewForm starts an empty free-mode form over cat.
func NewForm(cat *catalog.Catalog, maxSuggestions int) *Form {
	if cat == nil {
		cat = catalog.New()
	}
	return &Form{catalog: cat, maxSuggestions: maxSuggestions}
}

// Catalog returns the catalog the form draws from.
func (f *Form) Catalog() *catalog.Catalog { return f.catalog }

// ToggleMode flips between free and category mode. Fields of the other
// mode are kept.
func (f *Form) ToggleMode() {
	if f.Mode == api.ModeFree {
		f.Mode = api.ModeCategory
	} else {
		f.Mode = api.ModeFree
	}
}

// SelectCategory makes name the selected category. Unknown names are
// accepted; they just yield an empty query.
func (f *Form) SelectCategory(name string) { f.Category = name }

// ToggleSelected adds title to the selected suggestions, or removes it if
// it is already there.
func (f *Form) ToggleSelected(title string) {
	if i := slices.Index(f.Selected, title); i >= 0 {
		f.Selected = slices.Delete(f.Selected, i, i+1)
		return
	}
	f.Selected = append(f.Selected, title)
}

// IsSelected reports whether title is a toggled suggestion.
func (f *Form) IsSelected(title string) bool {
	return slices.Contains(f.Selected, title)
}

// AddCustom appends title to the custom titles. Empty titles and titles
// already present are ignored.
func (f *Form) AddCustom(title string) bool {
	if title == "" || slices.Contains(f.Custom, title) {
		return false
	}
	f.Custom = append(f.Custom, title)
	return true
}

// CommitInput moves the trimmed input into the custom titles and clears
// the input. A blank input is left untouched.
func (f *Form) CommitInput() bool {
	title := strings.TrimSpace(f.Input)
	if title == "" {
		return false
	}
	f.AddCustom(title)
	f.Input = ""
	return true
}

// RemoveCustom drops title from the custom titles.
func (f *Form) RemoveCustom(title string) {
	f.Custom = slices.DeleteFunc(f.Custom, func(s string) bool { return s == title })
}

// RemoveLastCustom drops the most recently added custom title.
func (f *Form) RemoveLastCustom() (string, bool) {
	if len(f.Custom) == 0 {
		return "", false
	}
	last := f.Custom[len(f.Custom)-1]
	f.Custom = f.Custom[:len(f.Custom)-1]
	return last, true
}

// Suggestions ranks every catalog title against the current input.
func (f *Form) Suggestions() []string {
	return match.SortedSuggestions(f.Input, f.catalog.AllTitles(), f.maxSuggestions)
}

// Options snapshots the fields the query is derived from.
func (f *Form) Options() api.QueryOptions {
	return api.QueryOptions{
		Mode:     f.Mode,
		Input:    f.Input,
		Category: f.Category,
		Selected: slices.Clone(f.Selected),
		Custom:   slices.Clone(f.Custom),
	}
}

// Titles returns the working title list for the current mode.
func (f *Form) Titles() []string {
	return query.WorkingTitles(f.catalog, f.Options())
}

// Query returns the boolean query for the current fields.
func (f *Form) Query() string {
	return query.Generate(f.catalog, f.Options())
}
