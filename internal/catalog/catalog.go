// Package catalog holds the static table of documented hooks.
//
// The catalog is built once at package initialization and never mutated.
// Insertion order is preserved and determines listing and export order.
package catalog

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Lookup when no entry exists for a slug.
var ErrNotFound = errors.New("hook not found")

// Param documents one parameter of a hook.
type Param struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// HookDoc is the documentation record for a single hook.
type HookDoc struct {
	Slug            string  `json:"slug"`
	Title           string  `json:"title"`
	Category        string  `json:"category"`
	Description     string  `json:"description"`
	LongDescription string  `json:"long_description"`
	Code            string  `json:"code"`
	Usage           string  `json:"usage"`
	Params          []Param `json:"params,omitempty"`
	Returns         *string `json:"returns,omitempty"`
}

// HasParams reports whether the entry documents at least one parameter.
func (d *HookDoc) HasParams() bool {
	return len(d.Params) > 0
}

// HasReturns reports whether the return contract is documented.
// A present but empty string counts as undocumented.
func (d *HookDoc) HasReturns() bool {
	return d.Returns != nil && *d.Returns != ""
}

// ReturnsText returns the documented return contract, or "" if absent.
func (d *HookDoc) ReturnsText() string {
	if d.Returns == nil {
		return ""
	}
	return *d.Returns
}

// Returns is a convenience for building optional return descriptions.
func Returns(s string) *string {
	return &s
}

// Catalog is an immutable, ordered mapping from slug to HookDoc.
type Catalog struct {
	entries []HookDoc
	index   map[string]int
}

// New builds a catalog from entries in the given order.
// Slugs must be non-empty and unique.
func New(entries ...HookDoc) (*Catalog, error) {
	c := &Catalog{
		entries: make([]HookDoc, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if e.Slug == "" {
			return nil, fmt.Errorf("entry %q has an empty slug", e.Title)
		}
		if _, dup := c.index[e.Slug]; dup {
			return nil, fmt.Errorf("duplicate slug %q", e.Slug)
		}
		c.index[e.Slug] = len(c.entries)
		c.entries = append(c.entries, e)
	}
	return c, nil
}

// MustNew is like New but panics on invalid input. Used for static data.
func MustNew(entries ...HookDoc) *Catalog {
	c, err := New(entries...)
	if err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
	return c
}

// Lookup returns the entry for slug using exact, case-sensitive matching.
// The returned pointer refers to a copy; callers cannot mutate the catalog.
func (c *Catalog) Lookup(slug string) (*HookDoc, error) {
	i, ok := c.index[slug]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, slug)
	}
	doc := c.entries[i]
	doc.Params = append([]Param(nil), doc.Params...)
	return &doc, nil
}

// Entries returns all entries in insertion order.
func (c *Catalog) Entries() []HookDoc {
	out := make([]HookDoc, len(c.entries))
	copy(out, c.entries)
	return out
}

// Slugs returns all slugs in insertion order.
func (c *Catalog) Slugs() []string {
	slugs := make([]string, len(c.entries))
	for i, e := range c.entries {
		slugs[i] = e.Slug
	}
	return slugs
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Categories returns the distinct categories in first-seen order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, e := range c.entries {
		if !seen[e.Category] {
			seen[e.Category] = true
			cats = append(cats, e.Category)
		}
	}
	return cats
}

// ByCategory returns the entries in category, in insertion order.
func (c *Catalog) ByCategory(category string) []HookDoc {
	var out []HookDoc
	for _, e := range c.entries {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

var defaultCatalog = MustNew(hookDocs()...)

// Default returns the process-wide hook catalog.
func Default() *Catalog {
	return defaultCatalog
}
