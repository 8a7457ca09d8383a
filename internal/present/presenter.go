package present

import (
	"io"

	"github.com/mithrel/boolq/internal/present/format"
	"github.com/mithrel/boolq/pkg/api"
)

type Mode int

const (
	ModePlain Mode = iota
	ModePretty
	ModeJSON
	ModeNDJSON
)

type Options struct {
	Mode       Mode
	JSONIndent bool
	Headers    bool
	Scores     bool
	// Style is the glamour style for ModePretty; empty uses the default.
	Style string
}

// ParseMode parses "plain", "pretty", "json" or "ndjson".
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "plain":
		return ModePlain, true
	case "pretty":
		return ModePretty, true
	case "json":
		return ModeJSON, true
	case "ndjson":
		return ModeNDJSON, true
	default:
		return ModePlain, false
	}
}

// ModeNames lists the accepted output modes, for flag completion.
func ModeNames() []string { return []string{"plain", "pretty", "json", "ndjson"} }

// RenderSuggestions renders ranked suggestions. Scores are only shown when
// opts.Scores is set; JSON output always carries them.
func RenderSuggestions(w io.Writer, s []api.Suggestion, opts Options) error {
	switch opts.Mode {
	case ModeJSON:
		return format.WriteJSON(w, s, opts.JSONIndent)
	case ModeNDJSON:
		return format.WriteNDJSON(w, s)
	case ModePretty:
		return format.WritePrettySuggestions(w, s, opts.Scores, opts.Style)
	default:
		return format.WritePlainSuggestions(w, s, opts.Scores, opts.Headers)
	}
}

// RenderCategories renders the category list.
func RenderCategories(w io.Writer, cats []api.CategorySummary, opts Options) error {
	switch opts.Mode {
	case ModeJSON:
		return format.WriteJSON(w, cats, opts.JSONIndent)
	case ModeNDJSON:
		return format.WriteNDJSON(w, cats)
	case ModePretty:
		return format.WritePrettyCategories(w, cats, opts.Style)
	default:
		return format.WritePlainCategories(w, cats, opts.Headers)
	}
}

// RenderTitles renders the titles of one category.
func RenderTitles(w io.Writer, category string, titles []string, opts Options) error {
	if titles == nil {
		titles = []string{}
	}
	switch opts.Mode {
	case ModeJSON:
		return format.WriteJSON(w, titles, opts.JSONIndent)
	case ModeNDJSON:
		return format.WriteNDJSON(w, titles)
	case ModePretty:
		return format.WritePrettyTitles(w, category, titles, opts.Style)
	default:
		return format.WritePlainTitles(w, titles)
	}
}

// RenderQuery renders a generated query.
func RenderQuery(w io.Writer, res api.QueryResult, opts Options) error {
	if res.Titles == nil {
		res.Titles = []string{}
	}
	switch opts.Mode {
	case ModeJSON, ModeNDJSON:
		return format.WriteJSON(w, res, opts.JSONIndent && opts.Mode == ModeJSON)
	case ModePretty:
		return format.WritePrettyQuery(w, res, opts.Style)
	default:
		return format.WritePlainQuery(w, res)
	}
}
