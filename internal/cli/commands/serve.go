package commands

import (
	"context"
	"os"
	"os/exec"
	"runtime"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/hookitup/internal/catalog"
	"github.com/leapstack-labs/hookitup/internal/metrics"
	"github.com/leapstack-labs/hookitup/internal/ui"
	"github.com/leapstack-labs/hookitup/internal/ui/resources"
)

// ServeOptions holds options for the serve command.
type ServeOptions struct {
	Port      int
	NoBrowser bool
	Watch     bool
	StaticDir string
	NoMetrics bool
}

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	opts := &ServeOptions{}

	cmd := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"ui"},
		Short:   "Start the documentation site server",
		Long: `Start a local web server for the HookItUp documentation site.

The site provides:
- Hook pages with implementation, usage and API reference
- Fuzzy search across the catalog
- Copy all hooks as Markdown and download them as a .md file
- Prometheus metrics at /metrics`,
		Example: `  # Start on the default port
  hookitup serve

  # Start on a custom port
  hookitup serve --port 3000

  # Start without auto-opening the browser
  hookitup serve --no-browser

  # Reload open pages when stylesheets or scripts change
  hookitup serve --watch --static-dir internal/ui/resources/static`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Port, "port", 0, "Port to serve on (default: 8765)")
	cmd.Flags().BoolVar(&opts.NoBrowser, "no-browser", false, "Don't auto-open browser")
	cmd.Flags().BoolVar(&opts.Watch, "watch", false, "Reload pages when static assets change")
	cmd.Flags().StringVar(&opts.StaticDir, "static-dir", "", "Static asset directory to watch")
	cmd.Flags().BoolVar(&opts.NoMetrics, "no-metrics", false, "Don't serve /metrics")

	return cmd
}

func runServe(cmd *cobra.Command, opts *ServeOptions) error {
	cmdCtx := NewCommandContext(cmd)
	serverCfg := serverConfig(cmd, cmdCtx, opts)
	uiCfg := cmdCtx.Cfg.UI

	autoOpen := uiCfg.AutoOpen
	if opts.NoBrowser {
		autoOpen = false
	}

	server := ui.NewServer(serverCfg)

	// Open browser if configured
	if autoOpen {
		go openBrowser(server.URL())
	}

	cmdCtx.Renderer.Printf("Serving %d hooks on %s\n", cmdCtx.Catalog.Len(), server.URL())
	cmdCtx.Renderer.Muted("Press Ctrl+C to stop")

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	return server.Serve(ctx)
}

// serverConfig merges the loaded configuration with the command's flags.
func serverConfig(cmd *cobra.Command, cmdCtx *CommandContext, opts *ServeOptions) ui.Config {
	cfg := cmdCtx.Cfg
	uiCfg := cfg.UI

	// CLI flags override config file
	port := uiCfg.Port
	if opts.Port != 0 {
		port = opts.Port
	}

	watch := uiCfg.Watch
	if cmd.Flags().Changed("watch") {
		watch = opts.Watch
	}

	staticDir := uiCfg.StaticDir
	if opts.StaticDir != "" {
		staticDir = opts.StaticDir
	}
	if watch && staticDir == "" {
		if info, err := os.Stat(resources.StaticDirectoryPath); err == nil && info.IsDir() {
			staticDir = resources.StaticDirectoryPath
		}
	}

	serverCfg := ui.Config{
		Catalog:        cmdCtx.Catalog,
		Navigation:     catalog.DefaultNavigation(),
		App:            catalog.DefaultAppInfo(),
		Port:           port,
		Watch:          watch,
		StaticDir:      staticDir,
		SessionSecret:  sessionSecret(cfg.UI.SessionSecret, cmdCtx),
		SecureCookies:  cfg.UI.SecureCookies,
		ResetDelay:     cfg.Export.ResetDelay,
		ExportFileName: cfg.Export.FileName,
		Logger:         cmdCtx.Logger,
	}
	if !opts.NoMetrics {
		serverCfg.Metrics = metrics.New(true)
	}
	return serverCfg
}

// sessionSecret returns the configured secret, or a random one that lives as
// long as the process.
func sessionSecret(configured string, cmdCtx *CommandContext) string {
	if configured != "" {
		return configured
	}
	cmdCtx.Logger.Debug("no session secret configured, visitor sessions end when the server stops")
	return uuid.NewString() + uuid.NewString()
}

// openBrowser opens the default browser to the specified URL.
func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url) //nolint:noctx
	case "linux":
		cmd = exec.Command("xdg-open", url) //nolint:noctx
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url) //nolint:noctx
	default:
		return
	}

	_ = cmd.Start()
}
