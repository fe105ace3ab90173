package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/hookitup/internal/catalog"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(
		catalog.HookDoc{Slug: "use-debounce", Title: "useDebounce", Category: "Performance", Description: "Delay updating a value"},
		catalog.HookDoc{Slug: "use-fetch", Title: "useFetch", Category: "Data Fetching", Description: "Fetch data with loading state"},
		catalog.HookDoc{Slug: "use-previous", Title: "usePrevious", Category: "State Management", Description: "Remember the last render's value"},
	)
	require.NoError(t, err)
	return c
}

func slugs(results []Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Doc.Slug
	}
	return out
}

func TestIndex_Find(t *testing.T) {
	ix := NewIndex(testCatalog(t))

	tests := []struct {
		name  string
		query string
		limit int
		want  []string
	}{
		{"empty returns all in order", "", 0, []string{"use-debounce", "use-fetch", "use-previous"}},
		{"whitespace is empty", "   ", 2, []string{"use-debounce", "use-fetch"}},
		{"fuzzy title", "dbnc", 0, []string{"use-debounce"}},
		{"case insensitive", "FETCH", 0, []string{"use-fetch"}},
		{"slug form", "use-fetch", 0, []string{"use-fetch"}},
		{"description only", "loading state", 0, []string{"use-fetch"}},
		{"category", "state management", 0, []string{"use-previous"}},
		{"no match", "zzzz", 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ix.Find(tt.query, tt.limit)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, slugs(got))
		})
	}
}

func TestIndex_Find_TitleMatchesRankFirst(t *testing.T) {
	ix := NewIndex(testCatalog(t))

	// "value" fuzzy-matches no title but appears in two descriptions.
	got := ix.Find("value", 0)
	assert.Equal(t, []string{"use-debounce", "use-previous"}, slugs(got))
	for _, r := range got {
		assert.Zero(t, r.Score)
		assert.Empty(t, r.Matched)
	}

	got = ix.Find("use", 1)
	require.Len(t, got, 1)
	assert.NotEmpty(t, got[0].Matched)
}

func TestIndex_DefaultCatalog(t *testing.T) {
	ix := NewIndex(catalog.Default())
	assert.Equal(t, catalog.Default().Len(), ix.Len())

	got := ix.Find("debounce", 0)
	require.NotEmpty(t, got)
	assert.Equal(t, "use-debounce", got[0].Doc.Slug)
}

func TestHighlight(t *testing.T) {
	assert.Equal(t, "useFetch", Highlight("useFetch", nil, "<", ">"))
	assert.Equal(t, "use<Fe>tch", Highlight("useFetch", []int{3, 4}, "<", ">"))
	assert.Equal(t, "<u>se<F>etc<h>", Highlight("useFetch", []int{0, 3, 7}, "<", ">"))
}

func TestSegments(t *testing.T) {
	assert.Nil(t, Segments("", nil))
	assert.Equal(t, []Segment{{Text: "useFetch"}}, Segments("useFetch", nil))
	assert.Equal(t, []Segment{
		{Text: "use"},
		{Text: "Fe", Match: true},
		{Text: "tch"},
	}, Segments("useFetch", []int{3, 4}))
	assert.Equal(t, []Segment{
		{Text: "u", Match: true},
		{Text: "seFetc"},
		{Text: "h", Match: true},
	}, Segments("useFetch", []int{0, 7}))
}
