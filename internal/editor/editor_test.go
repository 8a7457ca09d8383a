package editor

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScratchPath(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", t.TempDir())
	path, err := ScratchPath("/home/me/my titles.yaml")
	if err != nil {
		t.Fatalf("ScratchPath error: %v", err)
	}
	if base := filepath.Base(path); base != "my-titles.boolq.yaml" {
		t.Fatalf("ScratchPath base=%q", base)
	}
}

func TestOpenAtWithScriptedEditor(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	script := filepath.Join(dir, "fake-editor.sh")
	body := "#!/bin/sh\nprintf '{\"tech\": [\"CTO\"]}\\n' > \"$1\"\n"
	if err := os.WriteFile(script, []byte(body), 0o700); err != nil {
		t.Fatal(err)
	}
	t.Setenv("VISUAL", script)

	final, changed, err := OpenAt(path, []byte("{}\n"))
	if err != nil {
		t.Fatalf("OpenAt error: %v", err)
	}
	if !changed {
		t.Fatalf("expected change, got %q", final)
	}
	if string(final) != "{\"tech\": [\"CTO\"]}\n" {
		t.Fatalf("final=%q", final)
	}
	if info, err := os.Stat(path); err != nil || info.Mode().Perm() != 0o600 {
		t.Fatalf("scratch perms: %v %v", info, err)
	}
}

func TestOpenAtUnchanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	t.Setenv("VISUAL", "true")

	_, changed, err := OpenAt(path, []byte("{}\n"))
	if err != nil {
		t.Fatalf("OpenAt error: %v", err)
	}
	if changed {
		t.Fatalf("expected no change")
	}
}
