// Package markdown serializes the hook catalog into a single Markdown document.
package markdown

import (
	"strings"

	"github.com/leapstack-labs/hookitup/internal/catalog"
)

const (
	// FenceLanguage tags the code fences for usage and implementation snippets.
	FenceLanguage = "tsx"

	// EntrySeparator is placed between consecutive entries, never after the last.
	EntrySeparator = "\n\n---\n\n"
)

// SerializeCatalog renders every catalog entry in catalog order.
func SerializeCatalog(cat *catalog.Catalog) string {
	return SerializeEntries(cat.Entries())
}

// SerializeEntries renders the given entries in slice order.
func SerializeEntries(entries []catalog.HookDoc) string {
	parts := make([]string, len(entries))
	for i := range entries {
		parts[i] = SerializeEntry(&entries[i])
	}
	return strings.Join(parts, EntrySeparator)
}

// SerializeEntry renders a single entry. Code and usage are trimmed of
// surrounding whitespace and otherwise emitted byte for byte.
func SerializeEntry(doc *catalog.HookDoc) string {
	lines := []string{
		"# " + doc.Title,
		"",
		"**Category:** " + doc.Category,
		"",
		"**Description:** " + doc.Description,
		"",
		"**Long Description:** " + doc.LongDescription,
		"",
		"## Usage",
		"",
		"```" + FenceLanguage,
		strings.TrimSpace(doc.Usage),
		"```",
		"",
		"## Code",
		"",
		"```" + FenceLanguage,
		strings.TrimSpace(doc.Code),
		"```",
	}

	if doc.HasParams() {
		lines = append(lines, "", "## Parameters", "")
		for _, p := range doc.Params {
			lines = append(lines, "- **"+p.Name+"** ("+p.Type+"): "+p.Description)
		}
	}

	if doc.HasReturns() {
		lines = append(lines, "", "**Returns:** "+*doc.Returns)
	}

	return strings.Join(lines, "\n")
}
