package api

import "strings"

// Mode selects how the working title list of a query is built.
type Mode int

const (
	// ModeFree builds the query from the typed input, custom titles and
	// toggled suggestions.
	ModeFree Mode = iota
	// ModeCategory builds the query from every title of one category.
	ModeCategory
)

func (m Mode) String() string {
	switch m {
	case ModeCategory:
		return "category"
	default:
		return "free"
	}
}

// ParseMode parses "free", "free-text" or "category".
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "free", "free-text", "":
		return ModeFree, true
	case "category":
		return ModeCategory, true
	default:
		return ModeFree, false
	}
}

// QueryOptions carries the form fields a query is derived from.
// Every field is optional.
type QueryOptions struct {
	Mode     Mode     `json:"mode"`
	Input    string   `json:"input,omitempty"`
	Category string   `json:"category,omitempty"`
	Selected []string `json:"selected,omitempty"`
	Custom   []string `json:"custom,omitempty"`
}

// Suggestion is a ranked candidate title.
type Suggestion struct {
	Title string `json:"title"`
	Score int    `json:"score"`
}

// CategorySummary describes one category of the catalog.
type CategorySummary struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// QueryResult is the machine-readable form of a generated query.
type QueryResult struct {
	Mode   string   `json:"mode"`
	Titles []string `json:"titles"`
	Query  string   `json:"query"`
}
