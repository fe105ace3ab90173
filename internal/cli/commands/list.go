package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/hookitup/internal/catalog"
	"github.com/leapstack-labs/hookitup/internal/cli/output"
)

// HookInfo is one hook in JSON output.
type HookInfo struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Params      []string `json:"params"`
	Returns     string   `json:"returns,omitempty"`
}

// ListOutput is the JSON shape of the list command.
type ListOutput struct {
	Hooks      []HookInfo     `json:"hooks"`
	Total      int            `json:"total"`
	ByCategory map[string]int `json:"by_category"`
}

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all hooks in the catalog",
		Long: `List every documented hook with its category and description.

Output adapts to environment:
  - Terminal: table
  - Piped/Scripted: Markdown table (agent-friendly)

Use --output to override: auto, text, markdown, json`,
		Example: `  # List all hooks
  hookitup list

  # Only animation hooks, as JSON
  hookitup list --category Animation --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, category)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Only list hooks in this category")
	_ = cmd.RegisterFlagCompletionFunc("category", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return catalog.Default().Categories(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runList(cmd *cobra.Command, category string) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	hooks := cmdCtx.Catalog.Entries()
	if category != "" {
		hooks = cmdCtx.Catalog.ByCategory(category)
		if len(hooks) == 0 {
			return fmt.Errorf("no hooks in category %q (categories: %s)",
				category, strings.Join(cmdCtx.Catalog.Categories(), ", "))
		}
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return listJSON(hooks, r)
	case output.ModeMarkdown:
		r.Println(output.FormatHeader(1, fmt.Sprintf("Hooks (%d total)", len(hooks))))
		r.Println("")
		t := hookTable(hooks, r)
		t.RenderMarkdown()
		return nil
	default:
		r.Header(1, fmt.Sprintf("Hooks (%d total)", len(hooks)))
		t := hookTable(hooks, r)
		t.SetStyle(table.StyleLight)
		t.Render()
		return nil
	}
}

func hookTable(hooks []catalog.HookDoc, r *output.Renderer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.AppendHeader(table.Row{"#", "Hook", "Slug", "Category", "Description"})
	for i, h := range hooks {
		t.AppendRow(table.Row{i + 1, h.Title, h.Slug, h.Category, h.Description})
	}
	return t
}

// listJSON outputs hooks in JSON format.
func listJSON(hooks []catalog.HookDoc, r *output.Renderer) error {
	out := ListOutput{
		Hooks:      make([]HookInfo, 0, len(hooks)),
		Total:      len(hooks),
		ByCategory: make(map[string]int),
	}
	for _, h := range hooks {
		params := make([]string, 0, len(h.Params))
		for _, p := range h.Params {
			params = append(params, p.Name)
		}
		out.Hooks = append(out.Hooks, HookInfo{
			Slug:        h.Slug,
			Title:       h.Title,
			Category:    h.Category,
			Description: h.Description,
			Params:      params,
			Returns:     h.ReturnsText(),
		})
		out.ByCategory[h.Category]++
	}
	return r.JSON(out)
}
