package catalog

import (
	"bytes"
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

// EncodeJSON writes c as an indented JSON object in catalog order.
func EncodeJSON(w io.Writer, c *Catalog) error {
	var b bytes.Buffer
	b.WriteString("{")
	for i, name := range c.names {
		if i > 0 {
			b.WriteString(",")
		}
		key, err := marshalJSON(name)
		if err != nil {
			return err
		}
		b.WriteString("\n  ")
		b.Write(key)
		b.WriteString(": [")
		for j, title := range c.titles[name] {
			if j > 0 {
				b.WriteString(",")
			}
			val, err := marshalJSON(title)
			if err != nil {
				return err
			}
			b.WriteString("\n    ")
			b.Write(val)
		}
		if len(c.titles[name]) > 0 {
			b.WriteString("\n  ")
		}
		b.WriteString("]")
	}
	if len(c.names) > 0 {
		b.WriteString("\n")
	}
	b.WriteString("}\n")
	_, err := w.Write(b.Bytes())
	return err
}

func marshalJSON(v any) ([]byte, error) {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(b.Bytes(), "\n"), nil
}

// EncodeYAML writes c as a YAML mapping in catalog order.
func EncodeYAML(w io.Writer, c *Catalog) error {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range c.names {
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, title := range c.titles[name] {
			seq.Content = append(seq.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: title})
		}
		if len(seq.Content) == 0 {
			seq.Style = yaml.FlowStyle
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			seq,
		)
	}
	if len(root.Content) == 0 {
		root.Style = yaml.FlowStyle
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return err
	}
	return enc.Close()
}
