package components

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/hookitup/internal/ui/features/common"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestCodeBlock(t *testing.T) {
	t.Run("short snippet is not collapsible", func(t *testing.T) {
		out := render(t, CodeBlock(CodeBlockProps{Code: "const a = 1 < 2;", Title: "useX"}))
		assert.Contains(t, out, `class="code-block"`)
		assert.Contains(t, out, "const a = 1 &lt; 2;", "code is escaped")
		assert.Contains(t, out, `<span class="lang">typescript</span>`)
		assert.Contains(t, out, "hookitup.copyCode(this)")
		assert.NotContains(t, out, "Show more")
	})

	t.Run("long snippet starts collapsed", func(t *testing.T) {
		code := strings.Repeat("line\n", CollapseThreshold+1)
		out := render(t, CodeBlock(CodeBlockProps{Code: code, Language: "bash"}))
		assert.Contains(t, out, `class="code-block collapsed"`)
		assert.Contains(t, out, "Show more")
		assert.Contains(t, out, `class="language-bash"`)
		assert.NotContains(t, out, "code-title", "no title bar without a title")
	})

	t.Run("exactly at threshold", func(t *testing.T) {
		code := strings.Repeat("line\n", CollapseThreshold)
		out := render(t, CodeBlock(CodeBlockProps{Code: code}))
		assert.NotContains(t, out, "Show more")
	})
}

func TestSectionHeader(t *testing.T) {
	out := render(t, SectionHeader(SectionHeaderProps{Title: "useFetch", Subtitle: "Data Fetching", Bordered: true}))
	assert.Contains(t, out, `class="section-header bordered"`)
	assert.Contains(t, out, "<h1>useFetch</h1>")
	assert.Contains(t, out, `<span class="badge">Data Fetching</span>`)

	out = render(t, SectionHeader(SectionHeaderProps{Title: "Overview"}))
	assert.Contains(t, out, "<h2>Overview</h2>")
	assert.NotContains(t, out, "<p>")
}

func TestExportButtons(t *testing.T) {
	out := render(t, ExportButtons(false, ""))
	assert.Contains(t, out, `data-on:click="@post(&#39;/export/copy&#39;)"`)
	assert.Contains(t, out, `data-on:click="@post(&#39;/export/download&#39;)"`)
	assert.Contains(t, out, "$exportCopy != &#39;idle&#39;")

	out = render(t, ExportButtons(true, ""))
	assert.NotContains(t, out, "data-on:click")
	assert.Contains(t, out, `href="/hookitup-hooks.md"`)
	assert.Contains(t, out, "hookitup.copyFrom(&#39;/hookitup-hooks.md&#39;, this)", "the button is passed so it can lock itself")

	out = render(t, ExportButtons(true, "/docs/all-hooks.md"))
	assert.Contains(t, out, `href="/docs/all-hooks.md"`)
}

func TestLayout(t *testing.T) {
	page := common.DefaultShell(true).Page("usePrevious", "", "/hooks/use-previous")
	out := render(t, Layout(page, Text("<body text>")))

	assert.True(t, strings.HasPrefix(out, "<!doctype html>"))
	assert.Contains(t, out, "<title>usePrevious - HookItUp</title>")
	assert.Contains(t, out, "&lt;body text&gt;")
	assert.Contains(t, out, `data-init="@get(&#39;/reload&#39;)"`, "dev pages listen for reloads")
	assert.Contains(t, out, `data-init="@get(&#39;/export/updates&#39;)"`)
	assert.Contains(t, out, `class="nav-link active" href="/hooks/use-previous"`)
	assert.Contains(t, out, "hookitup v1.0.0")
	assert.Contains(t, out, `id="toasts"`)

	page.IsDev = false
	page.Static = true
	out = render(t, Layout(page, nil))
	assert.NotContains(t, out, "/reload")
	assert.NotContains(t, out, "data-signals")
	assert.NotContains(t, out, DatastarScriptURL)
}

func TestSidebar_OpensCurrentCategory(t *testing.T) {
	page := common.DefaultShell(false).Page("", "", "/hooks/use-fetch")
	out := render(t, Sidebar(page))

	assert.Contains(t, out, "<details open><summary>State Management</summary>")
	assert.Contains(t, out, "<details open><summary>Data Fetching</summary>")
	assert.Contains(t, out, "<details><summary>Animations</summary>")
}

func TestPageTitle(t *testing.T) {
	assert.Equal(t, SiteTitle, PageTitle(""))
	assert.Equal(t, "Search - HookItUp", PageTitle("Search"))
}

func TestToast(t *testing.T) {
	out := render(t, Toast("error", "Failed to copy to clipboard"))
	assert.Equal(t, `<div class="toast error" role="status">Failed to copy to clipboard</div>`, out)
}

func TestGroup_ComposesWithTemplComponents(t *testing.T) {
	out := render(t, Group(Text("<b>"), templ.Raw("<i>raw</i>"), nil))
	assert.Equal(t, "&lt;b&gt;<i>raw</i>", out)
}
