package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mithrel/boolq/internal/catalog"
	"github.com/mithrel/boolq/pkg/api"
)

func testCatalog() *catalog.Catalog {
	c := catalog.New()
	c.Set("sales", "Head of Sales", "VP Sales")
	c.Set("marketing", "CMO", "Head of Marketing")
	c.Set("empty")
	return c
}

func TestGenerateFreeMode(t *testing.T) {
	c := testCatalog()
	tests := []struct {
		name string
		opts api.QueryOptions
		want string
	}{
		{
			name: "input and custom",
			opts: api.QueryOptions{Mode: api.ModeFree, Input: "CMO", Custom: []string{"VP Marketing"}},
			want: `"CMO" OR "VP Marketing"`,
		},
		{
			name: "input, custom, then selected",
			opts: api.QueryOptions{Input: "CMO", Custom: []string{"VP Marketing"}, Selected: []string{"Head of Marketing"}},
			want: `"CMO" OR "VP Marketing" OR "Head of Marketing"`,
		},
		{
			name: "empty input dropped",
			opts: api.QueryOptions{Selected: []string{"VP Sales", "", "CMO"}},
			want: `"VP Sales" OR "CMO"`,
		},
		{
			name: "duplicates kept",
			opts: api.QueryOptions{Input: "CMO", Selected: []string{"CMO"}},
			want: `"CMO" OR "CMO"`,
		},
		{
			name: "quotes not escaped",
			opts: api.QueryOptions{Input: `Chief "Growth" Officer`},
			want: `"Chief "Growth" Officer"`,
		},
		{
			name: "category ignored in free mode",
			opts: api.QueryOptions{Category: "sales"},
			want: "",
		},
		{
			name: "nothing",
			opts: api.QueryOptions{},
			want: "",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Generate(c, tc.opts))
		})
	}
}

func TestGenerateCategoryMode(t *testing.T) {
	c := testCatalog()

	got := Generate(c, api.QueryOptions{Mode: api.ModeCategory, Category: "sales"})
	assert.Equal(t, `"Head of Sales" OR "VP Sales"`, got)

	// free-text fields do not leak into category mode
	got = Generate(c, api.QueryOptions{Mode: api.ModeCategory, Category: "marketing", Input: "CTO", Custom: []string{"x"}})
	assert.Equal(t, `"CMO" OR "Head of Marketing"`, got)

	assert.Equal(t, "", Generate(c, api.QueryOptions{Mode: api.ModeCategory, Category: "unknown"}))
	assert.Equal(t, "", Generate(c, api.QueryOptions{Mode: api.ModeCategory}))
	assert.Equal(t, "", Generate(c, api.QueryOptions{Mode: api.ModeCategory, Category: "empty"}))
	assert.Equal(t, "", Generate(nil, api.QueryOptions{Mode: api.ModeCategory, Category: "sales"}))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "", Format(nil))
	assert.Equal(t, `"CMO"`, Format([]string{"CMO"}))
	assert.Equal(t, `"a" OR "b" OR "c"`, Format([]string{"a", "b", "c"}))
}
