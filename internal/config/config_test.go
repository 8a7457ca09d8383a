package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	v := viper.New()
	v.SetConfigFile(filepath.Join(t.TempDir(), "absent.toml"))
	// explicit missing file is an error
	assert.Error(t, Load(context.Background(), v))

	v = viper.New()
	require.NoError(t, Load(context.Background(), v))
	assert.Equal(t, 10, v.GetInt("suggest.max_results"))
	assert.Equal(t, "plain", v.GetString("output"))
	assert.True(t, v.GetBool("clipboard.enabled"))
	assert.Equal(t, "", v.GetString("catalog_path"))
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("output = \"json\"\n[suggest]\nmax_results = 3\n"), 0o600))
	t.Setenv("BOOLQ_OUTPUT", "ndjson")

	v := viper.New()
	v.SetConfigFile(cfg)
	require.NoError(t, Load(context.Background(), v))
	assert.Equal(t, 3, v.GetInt("suggest.max_results"))
	assert.Equal(t, "ndjson", v.GetString("output"))
}

func TestCheckConfigValidityValid(t *testing.T) {
	dir := t.TempDir()
	cat := filepath.Join(dir, "titles.yaml")
	require.NoError(t, os.WriteFile(cat, []byte("a: [b]\n"), 0o600))

	v := viper.New()
	applyDefaults(v)
	v.Set("catalog_path", cat)
	assert.NoError(t, CheckConfigValidity(v))
}

func TestCheckConfigValidityInvalid(t *testing.T) {
	dir := t.TempDir()
	v := viper.New()
	v.Set("catalog_path", dir)
	v.Set("output", "xml")
	v.Set("suggest.max_results", 0)
	v.Set("tui.status_seconds", -1)

	err := CheckConfigValidity(v)
	require.Error(t, err)
	msg := err.Error()
	for _, want := range []string{
		"is a directory",
		"output must be one of",
		"suggest.max_results must be greater than 0",
		"tui.status_seconds must not be negative",
	} {
		assert.Contains(t, msg, want)
	}
}

func TestRenderDefaultTOMLRoundTrips(t *testing.T) {
	out := RenderDefaultTOML()
	assert.Contains(t, out, "[suggest]\n# Maximum number of suggestions returned\nmax_results = 10")
	assert.Contains(t, out, `catalog_path = ""`)

	v := viper.New()
	v.SetConfigType("toml")
	require.NoError(t, v.ReadConfig(strings.NewReader(out)))
	assert.Equal(t, 10, v.GetInt("suggest.max_results"))
	assert.True(t, v.GetBool("clipboard.enabled"))

	_, changed := UpdateTOML(out)
	assert.False(t, changed)
}

func TestUpdateTOML(t *testing.T) {
	existing := "output = \"json\"\nnamespace = \"work\"\n[suggest]\nmax_results = 4\n[tui]\n"
	updated, changed := UpdateTOML(existing)
	require.True(t, changed)

	assert.Contains(t, updated, "# OUTDATED: option removed from config schema\n# namespace = \"work\"")
	assert.Contains(t, updated, "max_results = 4")
	assert.Contains(t, updated, "# Added by config update")
	assert.Contains(t, updated, "[clipboard]\n# Allow copying queries to the system clipboard\nenabled = true")
	assert.NotContains(t, updated, "max_results = 10")
	assert.True(t, strings.HasPrefix(updated, "# Added by config update\n# Job title catalog"))

	v := viper.New()
	v.SetConfigType("toml")
	require.NoError(t, v.ReadConfig(strings.NewReader(updated)))
	assert.Equal(t, 4, v.GetInt("suggest.max_results"))
	assert.Equal(t, "json", v.GetString("output"))
	assert.False(t, v.GetBool("log.verbose"))
}
