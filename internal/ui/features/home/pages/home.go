// Package pages renders the landing page.
package pages

import (
	"github.com/a-h/templ"

	"github.com/leapstack-labs/hookitup/internal/ui/features/common"
	"github.com/leapstack-labs/hookitup/internal/ui/features/common/components"
)

// HomePage renders the landing page: hero, featured hooks and a pointer to
// the sidebar.
func HomePage(page common.PageData) templ.Component {
	return components.Layout(page, HomeContent(page))
}

// HomeContent is the page body without the site shell.
func HomeContent(page common.PageData) templ.Component {
	cards := make([]templ.Component, 0, len(page.Nav.Featured))
	for _, f := range page.Nav.Featured {
		cards = append(cards, components.HookCard(f.Name, f.Description, f.Category, f.Href()))
	}

	return components.Group(
		components.Element("section", "hero",
			components.Element("h1", "gradient", components.Text(page.App.Name)),
			components.Element("p", "lead", components.Text(page.App.Description+
				". Explore custom hooks for state management, performance optimization, data fetching, and more.")),
			components.Element("div", "hero-actions",
				components.Link("btn primary", "/docs/getting-started", components.Text("Get Started")),
				components.Link("btn", "/search", components.Text("Browse Hooks")),
			),
		),
		components.Element("section", "featured",
			components.SectionHeader(components.SectionHeaderProps{
				Title:       "Featured Hooks",
				Description: "Get started with our most popular utilities",
			}),
			components.Element("div", "card-grid", cards...),
		),
		components.Element("section", "bordered",
			components.Element("h2", "", components.Text("Ready to explore?")),
			components.Element("p", "", components.Text(
				"Browse the hooks in the sidebar to view detailed documentation, implementation guides, "+
					"usage examples, and API references. Each hook comes with full TypeScript support.")),
		),
	)
}
