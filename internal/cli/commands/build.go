package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/hookitup/internal/catalog"
	"github.com/leapstack-labs/hookitup/internal/cli/output"
	"github.com/leapstack-labs/hookitup/internal/site"
)

// BuildOptions holds options for the build command.
type BuildOptions struct {
	OutputDir string
	NoMinify  bool
	BaseURL   string
	Serve     bool
	Port      int
}

// NewBuildCommand creates the build command.
func NewBuildCommand() *cobra.Command {
	opts := &BuildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Generate the static documentation site",
		Long: `Render every page of the documentation site to static files.

The output directory contains one index.html per page, an index.md next to
every hook page, the full Markdown export, the static assets (minified unless
--no-minify is given) and a manifest.json. A sitemap.xml is written when
--base-url is an absolute http(s) URL.`,
		Example: `  # Build into ./site
  hookitup build

  # Build for GitHub Pages with a sitemap
  hookitup build --output-dir docs --base-url https://example.github.io/hookitup/

  # Build and preview locally
  hookitup build --serve --port 8080`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBuild(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.OutputDir, "output-dir", "", "Output directory (default: ./site)")
	cmd.Flags().BoolVar(&opts.NoMinify, "no-minify", false, "Copy stylesheets and scripts verbatim")
	cmd.Flags().StringVar(&opts.BaseURL, "base-url", "", "URL the site will be hosted at")
	cmd.Flags().BoolVar(&opts.Serve, "serve", false, "Serve the built site after building")
	cmd.Flags().IntVar(&opts.Port, "port", 8080, "Port for --serve")

	return cmd
}

func runBuild(cmd *cobra.Command, opts *BuildOptions) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	builder := &site.Builder{
		Catalog:        cmdCtx.Catalog,
		Navigation:     catalog.DefaultNavigation(),
		App:            catalog.DefaultAppInfo(),
		OutputDir:      cfg.Build.OutputDir,
		Minify:         cfg.Build.Minify && !opts.NoMinify,
		ExportFileName: cfg.Export.FileName,
		BaseURL:        cfg.Build.BaseURL,
		Logger:         cmdCtx.Logger,
	}
	if opts.OutputDir != "" {
		builder.OutputDir = opts.OutputDir
	}
	if opts.BaseURL != "" {
		builder.BaseURL = opts.BaseURL
	}

	manifest, err := builder.Build(cmd.Context())
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		if err := r.JSON(manifest); err != nil {
			return err
		}
	case output.ModeMarkdown:
		r.Println(output.FormatHeader(1, "Site built"))
		r.Println("")
		r.Println(output.FormatKeyValue("Directory", builder.OutputDir))
		r.Println(output.FormatKeyValue("Pages", strconv.Itoa(len(manifest.Pages))))
		r.Println(output.FormatKeyValue("Assets", strconv.Itoa(len(manifest.Assets))))
		r.Println(output.FormatKeyValue("Export", manifest.ExportFile))
		r.Println(output.FormatKeyValue("Sitemap", strconv.FormatBool(manifest.Sitemap)))
	default:
		r.Success(fmt.Sprintf("Built %d pages and %d assets into %s", len(manifest.Pages), len(manifest.Assets), builder.OutputDir))
		r.Muted("Markdown export: " + manifest.ExportFile)
	}

	if !opts.Serve {
		return nil
	}
	r.Muted(fmt.Sprintf("Serving %s on http://localhost:%d (Ctrl+C to stop)", builder.OutputDir, opts.Port))
	return site.Serve(cmd.Context(), builder.OutputDir, opts.Port, cmdCtx.Logger)
}
