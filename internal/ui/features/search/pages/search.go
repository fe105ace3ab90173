// Package pages renders the hook search page.
package pages

import (
	"encoding/json"
	"strconv"

	"github.com/a-h/templ"

	"github.com/leapstack-labs/hookitup/internal/search"
	"github.com/leapstack-labs/hookitup/internal/ui/features/common"
	"github.com/leapstack-labs/hookitup/internal/ui/features/common/components"
)

// ResultsID is the element patched with live results.
const ResultsID = "search-results"

// SearchPath is where the page is served.
const SearchPath = "/search"

// ResultsPath streams results for the query signal.
const ResultsPath = "/search/results"

// SearchPage renders the search box and the results for query.
func SearchPage(page common.PageData, query string, results []search.Result) templ.Component {
	return components.Layout(page, components.Group(
		components.SectionHeader(components.SectionHeaderProps{
			Title:       "Search Hooks",
			Description: "Find hooks by name, category or description",
			Bordered:    true,
		}),
		searchBox(query),
		Results(query, results),
	))
}

func searchBox(query string) templ.Component {
	signals, _ := json.Marshal(map[string]string{"query": query})
	input := components.Tag("input", []components.Attr{
		{Name: "type", Value: "search"},
		{Name: "name", Value: "q"},
		{Name: "aria-label", Value: "Search hooks"},
		{Name: "placeholder", Value: "useDebounce, storage, fetch..."},
		{Name: "value", Value: query},
		{Name: "autofocus"},
		{Name: "data-bind:query"},
		{Name: "data-on:input__debounce.250ms", Value: "@get('" + ResultsPath + "')"},
	})
	return components.Tag("form", []components.Attr{
		{Name: "class", Value: "search-page"},
		{Name: "method", Value: "get"},
		{Name: "action", Value: SearchPath},
		{Name: "role", Value: "search"},
		{Name: "data-signals", Value: string(signals)},
	}, input)
}

// Results renders the result list for query. It carries ResultsID so live
// updates replace it in place.
func Results(query string, results []search.Result) templ.Component {
	cards := make([]templ.Component, 0, len(results))
	for _, r := range results {
		cards = append(cards, resultCard(r))
	}

	var summary string
	switch {
	case len(results) == 0:
		summary = "No hooks match “" + query + "”"
	case query == "":
		summary = strconv.Itoa(len(results)) + " hooks"
	default:
		summary = strconv.Itoa(len(results)) + " results for “" + query + "”"
	}

	return components.Tag("div", []components.Attr{{Name: "id", Value: ResultsID}},
		components.Element("p", "muted", components.Text(summary)),
		components.Element("div", "card-grid", cards...),
	)
}

func resultCard(r search.Result) templ.Component {
	title := make([]templ.Component, 0, 3)
	for _, seg := range search.Segments(r.Doc.Title, r.Matched) {
		if seg.Match {
			title = append(title, components.Element("mark", "", components.Text(seg.Text)))
		} else {
			title = append(title, components.Text(seg.Text))
		}
	}
	return components.Link("hook-card", "/hooks/"+r.Doc.Slug,
		components.Element("span", "badge", components.Text(r.Doc.Category)),
		components.Element("h3", "", title...),
		components.Element("p", "", components.Text(r.Doc.Description)),
	)
}
