// Package catalog holds the static category to job title mapping that
// suggestions and category queries are drawn from.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mithrel/boolq/pkg/api"
)

//go:embed default.json
var defaultJSON []byte

// Catalog maps category names to ordered title lists. Categories keep the
// order in which they were first added. Titles are not deduplicated, within
// or across categories.
type Catalog struct {
	names  []string
	titles map[string][]string
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{titles: make(map[string][]string)}
}

// Set replaces the titles of category, appending the category if it is new.
func (c *Catalog) Set(category string, titles ...string) {
	if _, ok := c.titles[category]; !ok {
		c.names = append(c.names, category)
	}
	c.titles[category] = append([]string(nil), titles...)
}

// Categories returns the category names in catalog order.
func (c *Catalog) Categories() []string {
	return append([]string(nil), c.names...)
}

// Titles returns a copy of the titles stored for category.
func (c *Catalog) Titles(category string) ([]string, bool) {
	ts, ok := c.titles[category]
	if !ok {
		return nil, false
	}
	return append([]string(nil), ts...), true
}

// AllTitles flattens every category in catalog order.
func (c *Catalog) AllTitles() []string {
	n := 0
	for _, ts := range c.titles {
		n += len(ts)
	}
	out := make([]string, 0, n)
	for _, name := range c.names {
		out = append(out, c.titles[name]...)
	}
	return out
}

// Summaries lists every category with its title count.
func (c *Catalog) Summaries() []api.CategorySummary {
	out := make([]api.CategorySummary, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, api.CategorySummary{Name: name, Count: len(c.titles[name])})
	}
	return out
}

// Len reports the number of categories.
func (c *Catalog) Len() int { return len(c.names) }

// Default returns the catalog bundled with the binary.
func Default() (*Catalog, error) {
	c, err := DecodeJSON(bytes.NewReader(defaultJSON))
	if err != nil {
		return nil, fmt.Errorf("decode embedded catalog: %w", err)
	}
	return c, nil
}

// Load reads a catalog file. The format is picked from the extension:
// .yaml/.yml are YAML, anything else is JSON.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	c, err := Decode(f, path)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Decode reads a catalog in the format implied by path.
func Decode(r io.Reader, path string) (*Catalog, error) {
	if IsYAML(path) {
		return DecodeYAML(r)
	}
	return DecodeJSON(r)
}

// Encode writes c in the format implied by path.
func Encode(w io.Writer, c *Catalog, path string) error {
	if IsYAML(path) {
		return EncodeYAML(w, c)
	}
	return EncodeJSON(w, c)
}

// IsYAML reports whether path names a YAML catalog.
func IsYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
