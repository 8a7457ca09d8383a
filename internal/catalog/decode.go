package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// DecodeJSON reads a JSON object of category -> [titles]. Object key order
// becomes category order; a repeated key replaces the earlier titles but
// keeps the first position.
func DecodeJSON(r io.Reader) (*Catalog, error) {
	dec := json.NewDecoder(r)
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.New("catalog must be a JSON object")
	}

	c := New()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("read category name: %w", err)
		}
		name, _ := keyTok.(string)
		var titles []string
		if err := dec.Decode(&titles); err != nil {
			return nil, fmt.Errorf("category %q: %w", name, err)
		}
		c.Set(name, titles...)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return c, nil
}

// DecodeYAML reads a YAML mapping of category -> [titles], keeping the
// mapping order. An empty document yields an empty catalog.
func DecodeYAML(r io.Reader) (*Catalog, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return New(), nil
		}
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, errors.New("catalog must be a YAML mapping")
	}

	c := New()
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		var titles []string
		if err := val.Decode(&titles); err != nil {
			return nil, fmt.Errorf("category %q (line %d): %w", key.Value, val.Line, err)
		}
		c.Set(key.Value, titles...)
	}
	return c, nil
}
