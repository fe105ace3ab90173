// Package pages renders hook documentation pages and the not-found page.
package pages

import (
	"github.com/a-h/templ"

	"github.com/leapstack-labs/hookitup/internal/catalog"
	"github.com/leapstack-labs/hookitup/internal/ui/features/common"
	"github.com/leapstack-labs/hookitup/internal/ui/features/common/components"
)

// DefaultBestPractices is shown on every hook page.
var DefaultBestPractices = []string{
	"Always memoize or stabilize dependencies to prevent unnecessary re-renders",
	"Consider the performance implications when dealing with frequently updated values",
	"Test edge cases like null values, rapid updates, and component unmounting",
}

// HookPath returns the page path for slug.
func HookPath(slug string) string {
	return "/hooks/" + slug
}

// MarkdownPath returns the path of the single-entry Markdown export for slug.
func MarkdownPath(slug string) string {
	return HookPath(slug) + "/index.md"
}

// HookPage renders one hook's documentation inside the site shell.
func HookPage(page common.PageData, doc *catalog.HookDoc) templ.Component {
	return components.Layout(page, HookContent(doc))
}

// HookContent renders the overview, implementation, usage example, API
// reference and best practices of doc. Parameters and returns are only
// listed when documented.
func HookContent(doc *catalog.HookDoc) templ.Component {
	return components.Group(
		components.SectionHeader(components.SectionHeaderProps{
			Title:       doc.Title,
			Subtitle:    doc.Category,
			Description: doc.Description,
			Bordered:    true,
		}),
		components.Element("section", "",
			components.SectionHeader(components.SectionHeaderProps{Title: "Overview"}),
			components.Element("p", "prose", components.Text(doc.LongDescription)),
			components.Link("btn small", MarkdownPath(doc.Slug), components.Text("View as Markdown")),
		),
		components.Element("section", "",
			components.SectionHeader(components.SectionHeaderProps{
				Title:       "Hook Implementation",
				Description: "The complete hook source code",
			}),
			components.CodeBlock(components.CodeBlockProps{Code: doc.Code, Title: doc.Title}),
		),
		components.Element("section", "",
			components.SectionHeader(components.SectionHeaderProps{
				Title:       "Usage Example",
				Description: "See how to use this hook in your components",
			}),
			components.CodeBlock(components.CodeBlockProps{Code: doc.Usage, Title: "Example Component"}),
		),
		apiReference(doc),
		components.Element("section", "bordered",
			components.SectionHeader(components.SectionHeaderProps{Title: "Best Practices"}),
			components.BestPractices(DefaultBestPractices),
		),
	)
}

func apiReference(doc *catalog.HookDoc) templ.Component {
	if !doc.HasParams() && !doc.HasReturns() {
		return nil
	}

	parts := []templ.Component{components.SectionHeader(components.SectionHeaderProps{Title: "API Reference"})}
	if doc.HasParams() {
		params := make([]templ.Component, 0, len(doc.Params))
		for _, p := range doc.Params {
			params = append(params, components.SectionCard(p.Name, p.Type, p.Description))
		}
		parts = append(parts, components.Element("div", "api-params",
			components.Element("h3", "", components.Text("Parameters")),
			components.Group(params...),
		))
	}
	if doc.HasReturns() {
		parts = append(parts, components.Element("div", "api-returns",
			components.Element("h3", "", components.Text("Returns")),
			components.Card("", doc.ReturnsText()),
		))
	}
	return components.Element("section", "bordered api", parts...)
}

// NotFoundPage renders the standard not-found page.
func NotFoundPage(page common.PageData) templ.Component {
	return components.Layout(page, NotFoundContent())
}

// NotFoundContent is the not-found page body.
func NotFoundContent() templ.Component {
	return components.Element("section", "not-found",
		components.Element("p", "status", components.Text("404")),
		components.Element("h1", "", components.Text("Page not found")),
		components.Element("p", "", components.Text("The page you are looking for does not exist or has been moved.")),
		components.Element("div", "hero-actions",
			components.Link("btn primary", "/", components.Text("Back to home")),
			components.Link("btn", "/search", components.Text("Search hooks")),
		),
	)
}
