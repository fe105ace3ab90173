package commands

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/hookitup/internal/catalog"
	"github.com/leapstack-labs/hookitup/internal/cli/output"
	"github.com/leapstack-labs/hookitup/internal/markdown"
)

// wordWrap is the glamour wrap width for terminal output.
const wordWrap = 100

// NewShowCommand creates the show command.
func NewShowCommand() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "show <slug>",
		Short: "Show the documentation of one hook",
		Long: `Print one hook's documentation as Markdown.

On a terminal the Markdown is rendered with syntax highlighting. Piped output
and --raw print the same Markdown the export produces for that hook.`,
		Example: `  # Read the useDebounce docs
  hookitup show use-debounce

  # Raw Markdown
  hookitup show use-fetch --raw > use-fetch.md`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return catalog.Default().Slugs(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args[0], raw)
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print Markdown without terminal rendering")

	return cmd
}

func runShow(cmd *cobra.Command, slug string, raw bool) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	doc, err := cmdCtx.Catalog.Lookup(slug)
	if errors.Is(err, catalog.ErrNotFound) {
		return fmt.Errorf("%w: %s", catalog.ErrNotFound, slug)
	}
	if err != nil {
		return err
	}

	md := markdown.SerializeEntry(doc)
	mode := r.EffectiveMode()

	switch {
	case mode == output.ModeJSON:
		return r.JSON(doc)
	case raw || mode == output.ModeMarkdown:
		r.Printf("%s", md)
		return nil
	}

	rendered, err := renderTerminalMarkdown(md, r.IsTTY())
	if err != nil {
		cmdCtx.Logger.Debug("terminal rendering failed, printing raw markdown", "error", err)
		r.Printf("%s", md)
		return nil
	}
	r.Printf("%s", rendered)
	return nil
}

// renderTerminalMarkdown renders md with glamour, without colors when the
// output is not a terminal.
func renderTerminalMarkdown(md string, isTTY bool) (string, error) {
	style := glamour.WithStandardStyle(styles.NoTTYStyle)
	if isTTY {
		style = glamour.WithAutoStyle()
	}
	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(wordWrap))
	if err != nil {
		return "", err
	}
	return renderer.Render(md)
}
