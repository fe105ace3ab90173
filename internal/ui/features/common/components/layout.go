package components

import (
	"slices"

	"github.com/a-h/templ"

	"github.com/leapstack-labs/hookitup/internal/catalog"
	"github.com/leapstack-labs/hookitup/internal/export"
	"github.com/leapstack-labs/hookitup/internal/ui/features/common"
	"github.com/leapstack-labs/hookitup/internal/ui/resources"
)

// DatastarScriptURL is the client runtime for data-* attributes.
const DatastarScriptURL = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.6/bundles/datastar.js"

// SiteTitle is used when a page has no title of its own.
const SiteTitle = "HookItUp - Custom React Hooks Collection"

// Export button signal names.
const (
	SignalExportCopy     = "exportCopy"
	SignalExportDownload = "exportDownload"
)

// ExportFilePath is where the Markdown export is served unless the page
// names another file.
var ExportFilePath = "/" + export.FileName("")

// PageTitle returns the <title> for a page.
func PageTitle(title string) string {
	if title == "" {
		return SiteTitle
	}
	return title + " - HookItUp"
}

// Layout renders a full HTML document around body.
func Layout(page common.PageData, body templ.Component) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw("<!doctype html>\n<html lang=\"en\"><head>")
		h.raw(`<meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw("<title>")
		h.text(PageTitle(page.Title))
		h.raw("</title>")
		desc := page.Description
		if desc == "" {
			desc = page.App.Description
		}
		h.raw(`<meta name="description"`)
		h.attr("content", desc)
		h.raw(">")
		h.raw(`<link rel="stylesheet"`)
		h.attr("href", resources.StaticPath(resources.StylesheetFile))
		h.raw(">")
		if !page.Static {
			h.raw(`<script type="module"`)
			h.attr("src", DatastarScriptURL)
			h.raw("></script>")
		}
		h.raw(`<script defer`)
		h.attr("src", resources.StaticPath(resources.ScriptFile))
		h.raw("></script></head>")

		if page.Static {
			h.raw("<body>")
		} else {
			h.raw("<body")
			h.attr("data-signals", "{"+SignalExportCopy+": 'idle', "+SignalExportDownload+": 'idle'}")
			h.raw(">")
			h.raw(`<div hidden`)
			h.attr("data-init", "@get('/export/updates')")
			h.raw(`></div>`)
		}
		if page.IsDev && !page.Static {
			h.raw(`<div hidden`)
			h.attr("data-init", "@get('/reload')")
			h.raw(`></div>`)
		}

		h.render(Header(page))
		h.raw(`<div class="shell">`)
		h.render(Sidebar(page))
		h.raw(`<main id="content"><div class="content">`)
		h.render(body)
		h.raw(`</div></main></div>`)
		h.raw(`<div id="toasts" aria-live="polite"></div>`)
		h.raw("</body></html>")
	})
}

// Header renders the top bar with search, export buttons and project links.
func Header(page common.PageData) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<header class="site-header"><a class="brand" href="/">`)
		h.text(page.App.Name)
		h.raw(`</a><div class="actions">`)
		if !page.Static {
			h.raw(`<form class="search" method="get" action="/search" role="search">`)
			h.raw(`<input type="search" name="q" placeholder="Search hooks... (Ctrl K)" aria-label="Search hooks">`)
			h.raw(`</form>`)
		}
		h.render(ExportButtons(page.Static, page.ExportFile))
		if page.App.ContributeURL != "" {
			h.raw(`<a class="btn primary" target="_blank" rel="noopener noreferrer"`)
			h.attr("href", page.App.ContributeURL)
			h.raw(`>Be a Contributor</a>`)
		}
		if page.App.GitHubURL != "" {
			h.raw(`<a class="btn" target="_blank" rel="noopener noreferrer"`)
			h.attr("href", page.App.GitHubURL)
			h.raw(`>View Source</a>`)
		}
		h.raw(`</div></header>`)
	})
}

// ExportButtons renders the "copy all" and "download all" controls.
//
// Served pages drive them through the export endpoints and reflect the
// controller state held in the exportCopy and exportDownload signals.
// Static pages fetch the prebuilt Markdown file at filePath instead.
func ExportButtons(static bool, filePath string) templ.Component {
	if filePath == "" {
		filePath = ExportFilePath
	}
	return component(func(h *htmlWriter) {
		if static {
			h.raw(`<button type="button" id="export-copy" class="btn"`)
			h.attr("onclick", "hookitup.copyFrom('"+filePath+"', this)")
			h.raw(`>Copy All as Markdown</button>`)
			h.raw(`<a id="export-download" class="btn" download`)
			h.attr("href", filePath)
			h.raw(`>Download All as Markdown</a>`)
			return
		}
		exportButton(h, "export-copy", "/export/copy", SignalExportCopy,
			"Copy All as Markdown", "Copying...", "Copied!")
		exportButton(h, "export-download", "/export/download", SignalExportDownload,
			"Download All as Markdown", "Preparing...", "Downloaded!")
	})
}

func exportButton(h *htmlWriter, id, endpoint, signal, idle, loading, done string) {
	h.raw(`<button type="button" class="btn"`)
	h.attr("id", id)
	h.attr("data-on:click", "@post('"+endpoint+"')")
	h.attr("data-attr:disabled", "$"+signal+" != 'idle'")
	h.raw(`><span`)
	h.attr("data-text", "$"+signal+" == 'loading' ? '"+loading+"' : ($"+signal+" == 'done' ? '"+done+"' : '"+idle+"')")
	h.raw(">")
	h.text(idle)
	h.raw(`</span></button>`)
}

// Sidebar renders the documentation links, the hook categories and the
// version footer.
func Sidebar(page common.PageData) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<aside class="sidebar"><div class="groups">`)

		h.raw(`<h3>Documentation</h3><nav>`)
		for _, link := range page.Nav.Main {
			navLink(h, link.Name, link.Href, page.CurrentPath)
		}
		h.raw(`</nav>`)

		h.raw(`<h3>Hooks</h3>`)
		for _, cat := range page.Nav.Categories {
			open := cat.Name == common.DefaultOpenCategory || slices.ContainsFunc(cat.Hooks, func(hook catalog.NavHook) bool {
				return hook.Href() == page.CurrentPath
			})
			h.raw("<details")
			if open {
				h.raw(" open")
			}
			h.raw("><summary>")
			h.text(cat.Name)
			h.raw("</summary><nav>")
			for _, hook := range cat.Hooks {
				navLink(h, hook.Name, hook.Href(), page.CurrentPath)
			}
			h.raw("</nav></details>")
		}

		h.raw(`</div><footer><p>`)
		h.text(page.App.Name + " v" + page.App.Version)
		h.raw(`</p>`)
		if page.App.LastUpdated != "" {
			h.raw(`<p>Last updated `)
			h.text(page.App.LastUpdated)
			h.raw(`</p>`)
		}
		h.raw(`</footer></aside>`)
	})
}

func navLink(h *htmlWriter, name, href, currentPath string) {
	h.raw("<a")
	h.classIf("nav-link", common.IsActive(currentPath, href), "active")
	h.attr("href", href)
	h.raw(">")
	h.text(name)
	h.raw("</a>")
}
