package config

import (
	"fmt"
	"strings"
)

// section groups options sharing the first dotted key segment. The empty
// name holds top-level keys.
type section struct {
	name string
	opts []ConfigOption
}

// groupOptions splits options into top-level keys followed by sections,
// in first-seen order. Section option keys are stripped of their prefix.
func groupOptions(opts []ConfigOption) []section {
	out := []section{{name: ""}}
	index := map[string]int{"": 0}
	for _, o := range opts {
		name, key := "", o.Key
		if before, after, ok := strings.Cut(o.Key, "."); ok {
			name, key = before, after
		}
		i, ok := index[name]
		if !ok {
			i = len(out)
			index[name] = i
			out = append(out, section{name: name})
		}
		out[i].opts = append(out[i].opts, ConfigOption{Key: key, Default: o.Default, Comment: o.Comment})
	}
	return out
}

// RenderDefaultTOML renders a TOML config holding every default.
func RenderDefaultTOML() string {
	lines := []string{"# boolq configuration (TOML)"}
	for _, s := range groupOptions(GetConfigOptions()) {
		lines = appendSection(lines, s)
	}
	return strings.Join(lines, "\n") + "\n"
}

// UpdateTOML adds missing defaults to an existing TOML document and
// comments out keys that are no longer known. It reports whether anything
// changed.
func UpdateTOML(existing string) (string, bool) {
	known := make(map[string]bool)
	for _, o := range GetConfigOptions() {
		known[o.Key] = true
	}

	seen := make(map[string]bool)
	headers := make(map[string]int)
	current := ""
	changed := false
	lines := strings.Split(existing, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trim := strings.TrimSpace(line)
		switch {
		case trim == "" || strings.HasPrefix(trim, "#"):
			out = append(out, line)
			continue
		case strings.HasPrefix(trim, "[") && strings.HasSuffix(trim, "]"):
			current = strings.TrimSpace(trim[1 : len(trim)-1])
			headers[current] = len(out)
			out = append(out, line)
			continue
		}
		key, ok := parseTOMLKey(trim)
		if !ok {
			out = append(out, line)
			continue
		}
		if current != "" {
			key = current + "." + key
		}
		seen[key] = true
		if !known[key] {
			indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
			out = append(out, indent+"# OUTDATED: option removed from config schema", indent+"# "+trim)
			changed = true
			continue
		}
		out = append(out, line)
	}

	var missing []ConfigOption
	for _, o := range GetConfigOptions() {
		if !seen[o.Key] {
			missing = append(missing, o)
		}
	}
	if len(missing) == 0 {
		return strings.Join(out, "\n"), changed
	}

	// Top-level keys must precede every table, and an existing table
	// cannot be declared twice, so missing keys go where they belong.
	var head, tail []string
	inserts := make(map[int][]string)
	for _, s := range groupOptions(missing) {
		if len(s.opts) == 0 {
			continue
		}
		at, exists := headers[s.name]
		switch {
		case s.name == "":
			head = appendOptions([]string{"# Added by config update"}, s.opts)
		case exists:
			inserts[at] = appendOptions(nil, s.opts)
		default:
			tail = appendSection(tail, s)
		}
	}
	merged := make([]string, 0, len(out)+len(head)+len(tail)+2)
	merged = append(merged, head...)
	for i, line := range out {
		merged = append(merged, line)
		merged = append(merged, inserts[i]...)
	}
	if len(tail) > 0 {
		merged = append(merged, "", "# Added by config update")
		merged = append(merged, tail...)
	}
	return strings.Join(merged, "\n"), true
}

func parseTOMLKey(line string) (string, bool) {
	key, _, ok := strings.Cut(line, "=")
	if !ok {
		return "", false
	}
	key = strings.TrimSpace(key)
	if key == "" || strings.ContainsAny(key[:1], `["'`) {
		return "", false
	}
	return key, true
}

func appendSection(lines []string, s section) []string {
	if len(s.opts) == 0 {
		return lines
	}
	if s.name != "" {
		lines = append(lines, "["+s.name+"]")
	}
	return appendOptions(lines, s.opts)
}

func appendOptions(lines []string, opts []ConfigOption) []string {
	for _, o := range opts {
		if o.Comment != "" {
			lines = append(lines, "# "+o.Comment)
		}
		lines = append(lines, o.Key+" = "+tomlValue(o.Default), "")
	}
	return lines
}

func tomlValue(v any) string {
	switch x := v.(type) {
	case string:
		return fmt.Sprintf("%q", x)
	case []string:
		quoted := make([]string, len(x))
		for i, s := range x {
			quoted[i] = fmt.Sprintf("%q", s)
		}
		return "[" + strings.Join(quoted, ", ") + "]"
	default:
		return fmt.Sprintf("%v", x)
	}
}
