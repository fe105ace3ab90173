package components

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/leapstack-labs/hookitup/internal/ui/features/common"
)

// CollapseThreshold is the line count above which code blocks start collapsed.
const CollapseThreshold = 20

// SectionHeaderProps configures SectionHeader.
type SectionHeaderProps struct {
	Title       string
	Subtitle    string // rendered as a badge; also promotes the title to <h1>
	Description string
	Bordered    bool
}

// SectionHeader renders a heading with an optional badge and description.
func SectionHeader(p SectionHeaderProps) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw("<div")
		h.classIf("section-header", p.Bordered, "bordered")
		h.raw(">")
		tag := "h2"
		if p.Subtitle != "" {
			tag = "h1"
			h.raw(`<span class="badge">`)
			h.text(p.Subtitle)
			h.raw(`</span>`)
		}
		h.raw("<", tag, ">")
		h.text(p.Title)
		h.raw("</", tag, ">")
		if p.Description != "" {
			h.raw("<p>")
			h.text(p.Description)
			h.raw("</p>")
		}
		h.raw("</div>")
	})
}

// SectionCard renders a "name: type" signature with a description.
func SectionCard(title, typ, description string) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<div class="card param"><div class="signature">`)
		h.text(title)
		h.raw(`: <span>`)
		h.text(typ)
		h.raw(`</span></div><p>`)
		h.text(description)
		h.raw(`</p></div>`)
	})
}

// Card renders a titled box of text.
func Card(title, body string) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<div class="card">`)
		if title != "" {
			h.raw("<h3>")
			h.text(title)
			h.raw("</h3>")
		}
		h.raw("<p>")
		h.text(body)
		h.raw("</p></div>")
	})
}

// Callout renders a highlighted tip with a bold label.
func Callout(label, body string) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<div class="callout"><p><strong>`)
		h.text(label)
		h.raw(`</strong> `)
		h.text(body)
		h.raw(`</p></div>`)
	})
}

// HookCard links to a hook page.
func HookCard(name, description, category, href string) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<a class="hook-card"`)
		h.attr("href", href)
		h.raw(`><span class="badge">`)
		h.text(category)
		h.raw(`</span><h3>`)
		h.text(name)
		h.raw(`</h3><p>`)
		h.text(description)
		h.raw(`</p></a>`)
	})
}

// CodeBlockProps configures CodeBlock.
type CodeBlockProps struct {
	Code     string
	Language string
	Title    string
}

// CodeBlock renders a snippet with a copy button. Snippets longer than
// CollapseThreshold lines start collapsed behind a toggle.
func CodeBlock(p CodeBlockProps) templ.Component {
	if p.Language == "" {
		p.Language = "typescript"
	}
	lines := common.LineCount(p.Code)
	collapsible := lines > CollapseThreshold

	return component(func(h *htmlWriter) {
		h.raw("<div")
		h.classIf("code-block", collapsible, "collapsed")
		h.attr("data-lines", strconv.Itoa(lines))
		h.raw(">")
		if p.Title != "" {
			h.raw(`<div class="code-title"><span>`)
			h.text(p.Title)
			h.raw(`</span><span class="lang">`)
			h.text(p.Language)
			h.raw(`</span></div>`)
		}
		h.raw(`<div class="code-body"><pre><code`)
		h.attr("class", "language-"+p.Language)
		h.raw(">")
		h.text(p.Code)
		h.raw(`</code></pre>`)
		h.raw(`<button type="button" class="btn copy" title="Copy code" onclick="hookitup.copyCode(this)">Copy</button>`)
		h.raw(`</div>`)
		if collapsible {
			h.raw(`<button type="button" class="btn expand" onclick="hookitup.toggleCode(this)">Show more</button>`)
		}
		h.raw("</div>")
	})
}

// BestPractices renders a list of recommendations.
func BestPractices(practices []string) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<ul class="practices">`)
		for _, p := range practices {
			h.raw("<li>")
			h.text(p)
			h.raw("</li>")
		}
		h.raw("</ul>")
	})
}

// Toast renders one transient notification for the #toasts container.
// Level is "success" or "error".
func Toast(level, message string) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw("<div")
		h.attr("class", "toast "+level)
		h.raw(` role="status">`)
		h.text(message)
		h.raw("</div>")
	})
}
