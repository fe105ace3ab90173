// Package site renders the documentation site to static files that can be
// hosted on GitHub Pages or any file server.
//
// The static pages are the same components the server renders, with export
// buttons that fetch the prebuilt Markdown file instead of talking to the
// export endpoints.
package site

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/a-h/templ"

	"github.com/leapstack-labs/hookitup/internal/catalog"
	"github.com/leapstack-labs/hookitup/internal/export"
	"github.com/leapstack-labs/hookitup/internal/markdown"
	"github.com/leapstack-labs/hookitup/internal/ui/features/common"
	docsPages "github.com/leapstack-labs/hookitup/internal/ui/features/docs/pages"
	homePages "github.com/leapstack-labs/hookitup/internal/ui/features/home/pages"
	hookPages "github.com/leapstack-labs/hookitup/internal/ui/features/hooks/pages"
	"github.com/leapstack-labs/hookitup/internal/ui/resources"
)

// ManifestFile lists the generated pages.
const ManifestFile = "manifest.json"

// Builder renders the site into OutputDir.
type Builder struct {
	Catalog        *catalog.Catalog
	Navigation     catalog.Navigation
	App            catalog.AppInfo
	OutputDir      string
	Minify         bool
	ExportFileName string

	// BaseURL is where the site will be hosted. A sitemap is only written
	// when it is an absolute http(s) URL.
	BaseURL string

	// Assets defaults to the embedded static assets.
	Assets fs.FS
	Logger *slog.Logger
}

// Page is one generated HTML page.
type Page struct {
	Path  string `json:"path"`
	File  string `json:"file"`
	Title string `json:"title"`
}

// Manifest describes a finished build.
type Manifest struct {
	GeneratedAt time.Time `json:"generated_at"`
	Version     string    `json:"version"`
	HookCount   int       `json:"hook_count"`
	ExportFile  string    `json:"export_file"`
	Pages       []Page    `json:"pages"`
	Assets      []string  `json:"assets"`
	Sitemap     bool      `json:"sitemap"`
}

// Build writes every page, the Markdown export, the static assets, the
// manifest and, when possible, a sitemap.
func (b *Builder) Build(ctx context.Context) (*Manifest, error) {
	if b.OutputDir == "" {
		return nil, fmt.Errorf("output directory is required")
	}
	cat := b.Catalog
	if cat == nil {
		cat = catalog.Default()
	}
	logger := b.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if err := os.MkdirAll(b.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	exportFile := export.FileName(b.ExportFileName)
	shell := common.Shell{
		App:        b.App,
		Nav:        b.Navigation,
		Static:     true,
		ExportFile: "/" + exportFile,
	}

	manifest := &Manifest{
		GeneratedAt: time.Now().UTC(),
		Version:     b.App.Version,
		HookCount:   cat.Len(),
		ExportFile:  exportFile,
	}

	pages := []struct {
		page common.PageData
		file string
		body func(common.PageData) templ.Component
	}{
		{shell.Page("", "", "/"), "index.html", homePages.HomePage},
		{
			shell.Page("Getting Started", "Learn how to use custom React hooks in your projects.", docsPages.GettingStartedPath),
			"docs/getting-started/index.html",
			docsPages.GettingStartedPage,
		},
	}
	for _, p := range pages {
		if err := b.renderPage(ctx, p.file, p.body(p.page)); err != nil {
			return nil, err
		}
		manifest.Pages = append(manifest.Pages, Page{Path: p.page.CurrentPath, File: p.file, Title: p.page.Title})
	}

	for _, doc := range cat.Entries() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pagePath := hookPages.HookPath(doc.Slug)
		page := shell.Page(doc.Title, doc.Description, pagePath)
		file := path.Join("hooks", doc.Slug, "index.html")
		if err := b.renderPage(ctx, file, hookPages.HookPage(page, &doc)); err != nil {
			return nil, err
		}
		if err := b.writeFile(path.Join("hooks", doc.Slug, "index.md"), []byte(markdown.SerializeEntry(&doc))); err != nil {
			return nil, err
		}
		manifest.Pages = append(manifest.Pages, Page{Path: pagePath, File: file, Title: doc.Title})
	}

	notFound := shell.Page("Page not found", "", "/404")
	if err := b.renderPage(ctx, "404.html", hookPages.NotFoundPage(notFound)); err != nil {
		return nil, err
	}

	if err := b.writeFile(exportFile, []byte(markdown.SerializeCatalog(cat))); err != nil {
		return nil, err
	}

	assets := b.Assets
	if assets == nil {
		assets = resources.FS()
	}
	written, err := b.copyAssets(assets)
	if err != nil {
		return nil, fmt.Errorf("failed to copy static files: %w", err)
	}
	manifest.Assets = written

	if base, ok := absoluteBaseURL(b.BaseURL); ok {
		if err := b.writeSitemap(base, manifest.Pages, manifest.GeneratedAt); err != nil {
			return nil, err
		}
		manifest.Sitemap = true
	} else if b.BaseURL != "" && b.BaseURL != "/" {
		logger.Warn("skipping sitemap, base URL is not absolute", "base_url", b.BaseURL)
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal manifest: %w", err)
	}
	if err := b.writeFile(ManifestFile, data); err != nil {
		return nil, err
	}

	logger.Info("site built", "dir", b.OutputDir, "pages", len(manifest.Pages), "assets", len(manifest.Assets))
	return manifest, nil
}

// renderPage renders c to file, relative to the output directory.
func (b *Builder) renderPage(ctx context.Context, file string, c templ.Component) error {
	return b.create(file, func(w io.Writer) error {
		return c.Render(ctx, w)
	})
}

func (b *Builder) writeFile(file string, data []byte) error {
	return b.create(file, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

func (b *Builder) create(file string, fill func(io.Writer) error) error {
	dst := filepath.Join(b.OutputDir, filepath.FromSlash(file))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", file, err)
	}

	f, err := os.Create(dst) //nolint:gosec // G304: dst is under the configured output directory
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	if err := fill(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", file, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", file, err)
	}
	return nil
}
