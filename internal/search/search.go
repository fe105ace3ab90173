// Package search ranks catalog entries against a free-text query.
package search

import (
	"strings"

	"github.com/sahilm/fuzzy"
	"golang.org/x/text/cases"

	"github.com/leapstack-labs/hookitup/internal/catalog"
)

// Result is one ranked hit.
type Result struct {
	Doc catalog.HookDoc

	// Score is the fuzzy score on the title; description-only hits score 0.
	Score int

	// Matched holds the byte indexes of Doc.Title that matched the query.
	Matched []int
}

// Index is an immutable search index over a catalog snapshot.
type Index struct {
	docs   []catalog.HookDoc
	folded []string
}

// NewIndex indexes every entry of c.
func NewIndex(c *catalog.Catalog) *Index {
	ix := &Index{docs: c.Entries()}
	fold := cases.Fold()
	ix.folded = make([]string, len(ix.docs))
	for i, d := range ix.docs {
		ix.folded[i] = fold.String(d.Description + "\n" + d.LongDescription + "\n" + d.Category)
	}
	return ix
}

// String implements fuzzy.Source.
func (ix *Index) String(i int) string {
	return ix.docs[i].Title
}

// Len implements fuzzy.Source.
func (ix *Index) Len() int {
	return len(ix.docs)
}

// Find returns entries matching query, best first. Title matches are fuzzy
// and come first; entries whose descriptions or category contain the query
// follow in catalog order. An empty query returns every entry. A limit of
// zero or less means no limit.
func (ix *Index) Find(query string, limit int) []Result {
	query = strings.TrimSpace(query)

	var results []Result
	if query == "" {
		results = make([]Result, 0, len(ix.docs))
		for _, d := range ix.docs {
			results = append(results, Result{Doc: d})
		}
		return truncate(results, limit)
	}

	seen := make(map[int]bool)
	pattern := strings.NewReplacer("-", "", " ", "").Replace(query)
	if pattern != "" {
		for _, m := range fuzzy.FindFrom(pattern, ix) {
			seen[m.Index] = true
			results = append(results, Result{
				Doc:     ix.docs[m.Index],
				Score:   m.Score,
				Matched: m.MatchedIndexes,
			})
		}
	}

	// Casers are stateful, so each call folds with its own.
	needle := cases.Fold().String(query)
	for i, text := range ix.folded {
		if seen[i] {
			continue
		}
		if strings.Contains(text, needle) || strings.Contains(ix.docs[i].Slug, needle) {
			results = append(results, Result{Doc: ix.docs[i]})
		}
	}

	return truncate(results, limit)
}

func truncate(results []Result, limit int) []Result {
	if limit > 0 && len(results) > limit {
		return results[:limit]
	}
	return results
}

// Segment is a run of a string that either matched the query or did not.
type Segment struct {
	Text  string
	Match bool
}

// Segments splits s into alternating runs of matched and unmatched bytes.
func Segments(s string, matched []int) []Segment {
	if len(matched) == 0 {
		if s == "" {
			return nil
		}
		return []Segment{{Text: s}}
	}
	hit := make(map[int]bool, len(matched))
	for _, i := range matched {
		hit[i] = true
	}

	var out []Segment
	start := 0
	for i := 1; i <= len(s); i++ {
		if i == len(s) || hit[i] != hit[start] {
			out = append(out, Segment{Text: s[start:i], Match: hit[start]})
			start = i
		}
	}
	return out
}

// Highlight wraps the matched bytes of s in open and close markers,
// merging adjacent matches.
func Highlight(s string, matched []int, open, close string) string {
	var b strings.Builder
	for _, seg := range Segments(s, matched) {
		if seg.Match {
			b.WriteString(open)
			b.WriteString(seg.Text)
			b.WriteString(close)
			continue
		}
		b.WriteString(seg.Text)
	}
	return b.String()
}
