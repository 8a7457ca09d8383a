package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mithrel/boolq/pkg/api"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	require.Greater(t, c.Len(), 0)

	assert.Equal(t, "direction", c.Categories()[0])
	sales, ok := c.Titles("sales")
	require.True(t, ok)
	assert.Contains(t, sales, "Head of Sales")

	total := 0
	for _, s := range c.Summaries() {
		total += s.Count
	}
	assert.Len(t, c.AllTitles(), total)
}

func TestDecodeJSONKeepsOrder(t *testing.T) {
	in := `{"zeta": ["Z1"], "alpha": ["A1", "A2"], "mid": []}`
	c, err := DecodeJSON(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, c.Categories())
	assert.Equal(t, []string{"Z1", "A1", "A2"}, c.AllTitles())
	assert.Equal(t, []api.CategorySummary{
		{Name: "zeta", Count: 1},
		{Name: "alpha", Count: 2},
		{Name: "mid", Count: 0},
	}, c.Summaries())
}

func TestDecodeJSONRepeatedKey(t *testing.T) {
	c, err := DecodeJSON(strings.NewReader(`{"a": ["x"], "b": ["y"], "a": ["z"]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, c.Categories())
	got, _ := c.Titles("a")
	assert.Equal(t, []string{"z"}, got)
}

func TestDecodeJSONRejectsBadShapes(t *testing.T) {
	for _, in := range []string{`["a"]`, `{"a": [1, 2]}`, `{"a": "b"}`, ``} {
		_, err := DecodeJSON(strings.NewReader(in))
		assert.Error(t, err, "input %q", in)
	}
}

func TestDecodeYAML(t *testing.T) {
	in := `
sales:
  - Head of Sales
  - VP Sales
marketing:
  - CMO
`
	c, err := DecodeYAML(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"sales", "marketing"}, c.Categories())
	got, ok := c.Titles("sales")
	require.True(t, ok)
	assert.Equal(t, []string{"Head of Sales", "VP Sales"}, got)

	empty, err := DecodeYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())

	_, err = DecodeYAML(strings.NewReader("- a\n- b\n"))
	assert.Error(t, err)
}

func TestLoadPicksFormatFromExtension(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "titles.json")
	yamlPath := filepath.Join(dir, "titles.yml")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"tech": ["CTO"]}`), 0o600))
	require.NoError(t, os.WriteFile(yamlPath, []byte("tech:\n  - CTO\n"), 0o600))

	for _, p := range []string{jsonPath, yamlPath} {
		c, err := Load(p)
		require.NoError(t, err, p)
		assert.Equal(t, []string{"CTO"}, c.AllTitles())
	}

	_, err := Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestTitlesReturnsCopy(t *testing.T) {
	c := New()
	c.Set("a", "one", "two")
	got, _ := c.Titles("a")
	got[0] = "changed"
	again, _ := c.Titles("a")
	assert.Equal(t, "one", again[0])

	_, ok := c.Titles("missing")
	assert.False(t, ok)
}

func TestEncodeKeepsOrder(t *testing.T) {
	c := New()
	c.Set("zeta", "R&D Director", "Directrice Générale")
	c.Set("alpha")
	c.Set("mid", "CTO")

	var js strings.Builder
	require.NoError(t, EncodeJSON(&js, c))
	assert.Contains(t, js.String(), `"R&D Director"`)
	assert.Contains(t, js.String(), `"alpha": []`)

	for _, path := range []string{"out.json", "out.yaml"} {
		var b strings.Builder
		require.NoError(t, Encode(&b, c, path))
		back, err := Decode(strings.NewReader(b.String()), path)
		require.NoError(t, err, path)
		assert.Equal(t, c.Categories(), back.Categories(), path)
		assert.Equal(t, c.AllTitles(), back.AllTitles(), path)
	}
}

func TestEncodeEmpty(t *testing.T) {
	var js, ys strings.Builder
	require.NoError(t, EncodeJSON(&js, New()))
	require.NoError(t, EncodeYAML(&ys, New()))
	assert.Equal(t, "{}\n", js.String())
	assert.Equal(t, "{}\n", ys.String())
}
