// Package components renders the site's shared HTML building blocks.
package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// htmlWriter accumulates the first write error so components can be written
// as straight-line markup.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newWriter(ctx context.Context, w io.Writer) *htmlWriter {
	return &htmlWriter{ctx: ctx, w: w}
}

// raw writes trusted markup.
func (h *htmlWriter) raw(parts ...string) {
	for _, s := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, s)
	}
}

// text writes s escaped for element content or a quoted attribute.
func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

// attr writes ` name="value"` with value escaped.
func (h *htmlWriter) attr(name, value string) {
	h.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

// classIf writes a class attribute of base plus extra when cond holds.
func (h *htmlWriter) classIf(base string, cond bool, extra string) {
	if cond {
		base += " " + extra
	}
	h.attr("class", base)
}

func (h *htmlWriter) render(c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(h.ctx, h.w)
}

// component adapts a straight-line render function to templ.Component.
func component(fn func(h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		fn(h)
		return h.err
	})
}

// Group renders children in order.
func Group(children ...templ.Component) templ.Component {
	return component(func(h *htmlWriter) {
		for _, c := range children {
			h.render(c)
		}
	})
}

// Text renders escaped text.
func Text(s string) templ.Component {
	return component(func(h *htmlWriter) { h.text(s) })
}

// Element wraps children in <tag class="class">.
func Element(tag, class string, children ...templ.Component) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw("<", tag)
		if class != "" {
			h.attr("class", class)
		}
		h.raw(">")
		for _, c := range children {
			h.render(c)
		}
		h.raw("</", tag, ">")
	})
}

// Raw renders trusted markup as is.
func Raw(markup string) templ.Component {
	return component(func(h *htmlWriter) { h.raw(markup) })
}

// Link renders <a class="class" href="href"> around children.
func Link(class, href string, children ...templ.Component) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw("<a")
		if class != "" {
			h.attr("class", class)
		}
		h.attr("href", href)
		h.raw(">")
		for _, c := range children {
			h.render(c)
		}
		h.raw("</a>")
	})
}

// List renders items as a bulleted list.
func List(class string, items ...string) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw("<ul")
		if class != "" {
			h.attr("class", class)
		}
		h.raw(">")
		for _, it := range items {
			h.raw("<li>")
			h.text(it)
			h.raw("</li>")
		}
		h.raw("</ul>")
	})
}

// Attr is one attribute of a Tag. An empty Value renders a bare attribute.
type Attr struct {
	Name  string
	Value string
}

// Tag renders an element with attrs in order. Void elements such as input
// take no children.
func Tag(tag string, attrs []Attr, children ...templ.Component) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw("<", tag)
		for _, a := range attrs {
			if a.Value == "" {
				h.raw(" ", a.Name)
				continue
			}
			h.attr(a.Name, a.Value)
		}
		h.raw(">")
		if tag == "input" {
			return
		}
		for _, c := range children {
			h.render(c)
		}
		h.raw("</", tag, ">")
	})
}
