package commands

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/hookitup/internal/catalog"
	"github.com/leapstack-labs/hookitup/internal/cli/config"
	"github.com/leapstack-labs/hookitup/internal/cli/testutil"
	"github.com/leapstack-labs/hookitup/internal/markdown"
	"github.com/leapstack-labs/hookitup/internal/site"
)

// useConfig loads configuration in a fresh working directory with the given
// environment overrides.
func useConfig(t *testing.T, env map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	for k, v := range env {
		t.Setenv(k, v)
	}
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)
	_, err := config.LoadConfig("", nil)
	require.NoError(t, err)
	return dir
}

func TestCommandMetadata(t *testing.T) {
	tests := []struct {
		cmd   *cobra.Command
		use   string
		flags []string
	}{
		{NewServeCommand(), "serve", []string{"port", "no-browser", "watch", "static-dir", "no-metrics"}},
		{NewBuildCommand(), "build", []string{"output-dir", "no-minify", "base-url", "serve", "port"}},
		{NewExportCommand(), "export", []string{"copy", "download", "stdout", "output-dir", "file-name", "osc52"}},
		{NewListCommand(), "list", []string{"category"}},
		{NewShowCommand(), "show <slug>", []string{"raw"}},
		{NewSearchCommand(), "search <query>", []string{"limit"}},
		{NewCheckCommand(), "check", nil},
		{NewInitCommand(), "init [directory]", []string{"force", "template"}},
	}

	for _, tt := range tests {
		t.Run(tt.use, func(t *testing.T) {
			assert.Equal(t, tt.use, tt.cmd.Use)
			assert.NotEmpty(t, tt.cmd.Short, "Short should not be empty")
			assert.NotEmpty(t, tt.cmd.Long, "Long should not be empty")
			for _, flag := range tt.flags {
				assert.NotNil(t, tt.cmd.Flags().Lookup(flag), "flag %q should exist", flag)
			}
		})
	}
}

func TestList(t *testing.T) {
	t.Run("markdown when piped", func(t *testing.T) {
		useConfig(t, nil)
		res := testutil.RunCommand(t, NewListCommand())
		require.NoError(t, res.Err)

		testutil.AssertNoANSI(t, res.Out)
		assert.Contains(t, res.Out, fmt.Sprintf("# Hooks (%d total)", catalog.Default().Len()))
		assert.Contains(t, res.Out, "| useDebounce |")
		assert.Contains(t, res.Out, "| use-fetch |")
	})

	t.Run("text", func(t *testing.T) {
		useConfig(t, map[string]string{"HOOKITUP_OUTPUT": "text"})
		res := testutil.RunCommand(t, NewListCommand())
		require.NoError(t, res.Err)
		assert.Contains(t, res.Out, fmt.Sprintf("Hooks (%d total)", catalog.Default().Len()))
		assert.Contains(t, res.Out, "useReveal")
		assert.Contains(t, res.Out, "│")
	})

	t.Run("json", func(t *testing.T) {
		useConfig(t, map[string]string{"HOOKITUP_OUTPUT": "json"})
		res := testutil.RunCommand(t, NewListCommand())
		require.NoError(t, res.Err)

		var out ListOutput
		require.NoError(t, json.Unmarshal([]byte(res.Out), &out))
		assert.Equal(t, catalog.Default().Len(), out.Total)
		require.Len(t, out.Hooks, out.Total)
		assert.Equal(t, catalog.Default().Slugs()[0], out.Hooks[0].Slug)
	})

	t.Run("category", func(t *testing.T) {
		useConfig(t, map[string]string{"HOOKITUP_OUTPUT": "json"})
		category := catalog.Default().Categories()[0]
		res := testutil.RunCommand(t, NewListCommand(), "--category", category)
		require.NoError(t, res.Err)

		var out ListOutput
		require.NoError(t, json.Unmarshal([]byte(res.Out), &out))
		assert.Equal(t, map[string]int{category: out.Total}, out.ByCategory)
	})

	t.Run("unknown category", func(t *testing.T) {
		useConfig(t, nil)
		res := testutil.RunCommand(t, NewListCommand(), "--category", "Nope")
		require.Error(t, res.Err)
		assert.Contains(t, res.Err.Error(), `no hooks in category "Nope"`)
	})
}

func TestShow(t *testing.T) {
	doc, err := catalog.Default().Lookup("use-debounce")
	require.NoError(t, err)

	t.Run("piped prints the serialized entry", func(t *testing.T) {
		useConfig(t, nil)
		res := testutil.RunCommand(t, NewShowCommand(), "use-debounce")
		require.NoError(t, res.Err)
		assert.Equal(t, markdown.SerializeEntry(doc), res.Out)
		testutil.AssertValidMarkdown(t, res.Out)
	})

	t.Run("raw overrides text mode", func(t *testing.T) {
		useConfig(t, map[string]string{"HOOKITUP_OUTPUT": "text"})
		res := testutil.RunCommand(t, NewShowCommand(), "use-debounce", "--raw")
		require.NoError(t, res.Err)
		assert.Equal(t, markdown.SerializeEntry(doc), res.Out)
	})

	t.Run("text renders markdown", func(t *testing.T) {
		useConfig(t, map[string]string{"HOOKITUP_OUTPUT": "text"})
		res := testutil.RunCommand(t, NewShowCommand(), "use-debounce")
		require.NoError(t, res.Err)
		assert.Contains(t, res.Out, "useDebounce")
		assert.Contains(t, res.Out, "Usage")
		assert.NotContains(t, res.Out, "```", "fences are rendered, not printed")
	})

	t.Run("json", func(t *testing.T) {
		useConfig(t, map[string]string{"HOOKITUP_OUTPUT": "json"})
		res := testutil.RunCommand(t, NewShowCommand(), "use-debounce")
		require.NoError(t, res.Err)

		var got catalog.HookDoc
		require.NoError(t, json.Unmarshal([]byte(res.Out), &got))
		assert.Equal(t, *doc, got)
	})

	t.Run("not found", func(t *testing.T) {
		useConfig(t, nil)
		res := testutil.RunCommand(t, NewShowCommand(), "nope")
		require.ErrorIs(t, res.Err, catalog.ErrNotFound)
		assert.Equal(t, "hook not found: nope", res.Err.Error())
		assert.Empty(t, res.Out)
	})

	t.Run("slug is required", func(t *testing.T) {
		useConfig(t, nil)
		res := testutil.RunCommand(t, NewShowCommand())
		assert.Error(t, res.Err)
	})
}

func TestSearch(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		useConfig(t, map[string]string{"HOOKITUP_OUTPUT": "json"})
		res := testutil.RunCommand(t, NewSearchCommand(), "debounce")
		require.NoError(t, res.Err)

		var hits []SearchHit
		require.NoError(t, json.Unmarshal([]byte(res.Out), &hits))
		require.NotEmpty(t, hits)
		assert.Equal(t, "use-debounce", hits[0].Slug)
		assert.NotEmpty(t, hits[0].Matched)
	})

	t.Run("markdown highlights matches", func(t *testing.T) {
		useConfig(t, nil)
		res := testutil.RunCommand(t, NewSearchCommand(), "fetch")
		require.NoError(t, res.Err)
		assert.Contains(t, res.Out, "# Search: fetch")
		assert.Contains(t, res.Out, "`use-fetch`")
		assert.Contains(t, res.Out, "**")
	})

	t.Run("limit", func(t *testing.T) {
		useConfig(t, map[string]string{"HOOKITUP_OUTPUT": "json"})
		res := testutil.RunCommand(t, NewSearchCommand(), "use", "--limit", "1")
		require.NoError(t, res.Err)

		var hits []SearchHit
		require.NoError(t, json.Unmarshal([]byte(res.Out), &hits))
		assert.Len(t, hits, 1)
	})

	t.Run("no results", func(t *testing.T) {
		useConfig(t, map[string]string{"HOOKITUP_OUTPUT": "text"})
		res := testutil.RunCommand(t, NewSearchCommand(), "zzzzqqq")
		require.NoError(t, res.Err)
		assert.Contains(t, res.Out, `No hooks match "zzzzqqq"`)
	})
}

func TestCheck(t *testing.T) {
	t.Run("default navigation", func(t *testing.T) {
		useConfig(t, map[string]string{"HOOKITUP_OUTPUT": "json"})
		res := testutil.RunCommand(t, NewCheckCommand())
		require.NoError(t, res.Err)

		var out CheckOutput
		require.NoError(t, json.Unmarshal([]byte(res.Out), &out))
		assert.True(t, out.OK)
		assert.Empty(t, out.Missing)
	})

	t.Run("dangling link", func(t *testing.T) {
		useConfig(t, map[string]string{"HOOKITUP_OUTPUT": "text"})
		tr := testutil.NewTestRenderer("text", false)
		cmd := NewCheckCommand()
		cmd.SetOut(tr.Out)
		cmd.SetErr(tr.ErrOut)
		cmd.SetContext(t.Context())

		nav := catalog.Navigation{
			Categories: []catalog.NavCategory{{Name: "Hooks", Hooks: []catalog.NavHook{{Name: "Gone", Slug: "use-gone"}}}},
		}
		err := runCheck(cmd, nav)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "use-gone")
		assert.Contains(t, tr.ErrorOutput(), "dangling navigation link: use-gone")
	})
}

func TestExport(t *testing.T) {
	want := markdown.SerializeCatalog(catalog.Default())

	t.Run("download is the default", func(t *testing.T) {
		dir := useConfig(t, nil)
		res := testutil.RunCommand(t, NewExportCommand())
		require.NoError(t, res.Err)

		data, err := os.ReadFile(filepath.Join(dir, "hookitup-hooks.md"))
		require.NoError(t, err)
		assert.Equal(t, want, string(data))
		assert.Contains(t, res.ErrOut, "Hooks downloaded as Markdown!")
		assert.Contains(t, res.Out, "Saved to")
	})

	t.Run("download to a configured directory and name", func(t *testing.T) {
		useConfig(t, map[string]string{"HOOKITUP_EXPORT_FILE_NAME": "all-hooks"})
		out := filepath.Join(t.TempDir(), "exports")
		res := testutil.RunCommand(t, NewExportCommand(), "--download", "--output-dir", out)
		require.NoError(t, res.Err)
		assert.FileExists(t, filepath.Join(out, "all-hooks.md"))
	})

	t.Run("download failure", func(t *testing.T) {
		dir := useConfig(t, nil)
		blocker := filepath.Join(dir, "blocker")
		require.NoError(t, os.WriteFile(blocker, nil, 0600))

		res := testutil.RunCommand(t, NewExportCommand(), "--output-dir", blocker)
		require.Error(t, res.Err)
		assert.Contains(t, res.ErrOut, "Failed to download Markdown")
	})

	t.Run("stdout", func(t *testing.T) {
		useConfig(t, nil)
		res := testutil.RunCommand(t, NewExportCommand(), "--stdout")
		require.NoError(t, res.Err)
		assert.Equal(t, want, res.Out)
		assert.Empty(t, res.ErrOut)
	})

	t.Run("copy through osc52", func(t *testing.T) {
		useConfig(t, nil)
		res := testutil.RunCommand(t, NewExportCommand(), "--copy", "--osc52")
		require.NoError(t, res.Err)
		assert.Contains(t, res.Out, base64.StdEncoding.EncodeToString([]byte(want)))
		assert.Contains(t, res.ErrOut, "All hooks copied as Markdown!")
	})

	t.Run("actions are exclusive", func(t *testing.T) {
		useConfig(t, nil)
		res := testutil.RunCommand(t, NewExportCommand(), "--copy", "--stdout")
		assert.Error(t, res.Err)
	})
}

func TestBuild(t *testing.T) {
	useConfig(t, map[string]string{"HOOKITUP_OUTPUT": "json"})
	out := filepath.Join(t.TempDir(), "site")

	res := testutil.RunCommand(t, NewBuildCommand(), "--output-dir", out, "--no-minify", "--base-url", "https://hookitup.dev/")
	require.NoError(t, res.Err)

	var manifest site.Manifest
	require.NoError(t, json.Unmarshal([]byte(res.Out), &manifest))
	assert.Equal(t, catalog.Default().Len(), manifest.HookCount)
	assert.True(t, manifest.Sitemap)
	assert.FileExists(t, filepath.Join(out, "index.html"))
	assert.FileExists(t, filepath.Join(out, "hookitup-hooks.md"))
	assert.FileExists(t, filepath.Join(out, "sitemap.xml"))
}

func TestInit(t *testing.T) {
	t.Run("writes the config template", func(t *testing.T) {
		dir := useConfig(t, nil)
		target := filepath.Join(dir, "project")

		res := testutil.RunCommand(t, NewInitCommand(), target)
		require.NoError(t, res.Err)
		assert.FileExists(t, filepath.Join(target, "hookitup.yaml"))
		assert.FileExists(t, filepath.Join(target, ".env.example"))
		assert.FileExists(t, filepath.Join(target, ".gitignore"))
		assert.Contains(t, res.Out, "HookItUp configured!")

		// The written file loads and validates.
		config.ResetConfig()
		cfg, err := config.LoadConfig(filepath.Join(target, "hookitup.yaml"), nil)
		require.NoError(t, err)
		assert.Equal(t, config.DefaultPort, cfg.UI.Port)
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		dir := useConfig(t, nil)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "hookitup.yaml"), []byte("ui:\n  port: 1\n"), 0600))

		res := testutil.RunCommand(t, NewInitCommand())
		require.Error(t, res.Err)
		assert.Contains(t, res.Err.Error(), "already exists")

		res = testutil.RunCommand(t, NewInitCommand(), "--force")
		require.NoError(t, res.Err)
		data, err := os.ReadFile(filepath.Join(dir, "hookitup.yaml"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "port: 8765")
	})

	t.Run("pages template", func(t *testing.T) {
		dir := useConfig(t, nil)
		res := testutil.RunCommand(t, NewInitCommand(), "--template", "pages")
		require.NoError(t, res.Err)
		assert.FileExists(t, filepath.Join(dir, ".github", "workflows", "pages.yml"))
	})

	t.Run("unknown template", func(t *testing.T) {
		useConfig(t, nil)
		res := testutil.RunCommand(t, NewInitCommand(), "--template", "nope")
		require.Error(t, res.Err)
		assert.Contains(t, res.Err.Error(), "unknown template")
	})
}

func TestServerConfig(t *testing.T) {
	useConfig(t, map[string]string{
		"HOOKITUP_UI_PORT":           "9000",
		"HOOKITUP_UI_SESSION_SECRET": "configured-secret",
		"HOOKITUP_EXPORT_FILE_NAME":  "all-hooks",
		"HOOKITUP_UI_SECURE_COOKIES": "true",
	})

	t.Run("config values", func(t *testing.T) {
		cmd := NewServeCommand()
		cfg := serverConfig(cmd, NewCommandContext(cmd), &ServeOptions{})
		assert.Equal(t, 9000, cfg.Port)
		assert.False(t, cfg.Watch)
		assert.Equal(t, "configured-secret", cfg.SessionSecret)
		assert.True(t, cfg.SecureCookies)
		assert.Equal(t, "all-hooks", cfg.ExportFileName)
		assert.NotNil(t, cfg.Metrics)
		assert.Equal(t, catalog.Default().Len(), cfg.Catalog.Len())
	})

	t.Run("flags override config", func(t *testing.T) {
		cmd := NewServeCommand()
		require.NoError(t, cmd.Flags().Set("watch", "true"))
		staticDir := t.TempDir()
		cfg := serverConfig(cmd, NewCommandContext(cmd), &ServeOptions{
			Port:      9100,
			Watch:     true,
			StaticDir: staticDir,
			NoMetrics: true,
		})
		assert.Equal(t, 9100, cfg.Port)
		assert.True(t, cfg.Watch)
		assert.Equal(t, staticDir, cfg.StaticDir)
		assert.Nil(t, cfg.Metrics)
	})
}

func TestSessionSecret(t *testing.T) {
	useConfig(t, nil)
	cmdCtx := NewCommandContext(NewServeCommand())

	assert.Equal(t, "mine", sessionSecret("mine", cmdCtx))
	a, b := sessionSecret("", cmdCtx), sessionSecret("", cmdCtx)
	assert.Len(t, a, 72)
	assert.NotEqual(t, a, b)
}
