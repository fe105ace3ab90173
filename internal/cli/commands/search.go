package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/hookitup/internal/cli/output"
	"github.com/leapstack-labs/hookitup/internal/search"
)

// SearchHit is one result in JSON output.
type SearchHit struct {
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Score    int    `json:"score"`
	Matched  []int  `json:"matched"`
}

// NewSearchCommand creates the search command.
func NewSearchCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Fuzzy search the hook catalog",
		Long: `Search hooks by title, description and category.

Title matches are fuzzy and ranked first; hooks whose description or
category contains the query follow in catalog order.`,
		Example: `  # Find hooks about fetching
  hookitup search fetch

  # Top three matches as JSON
  hookitup search dbnc --limit 3 --output json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, strings.Join(args, " "), limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum number of results (0 for all)")

	return cmd
}

func runSearch(cmd *cobra.Command, query string, limit int) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	results := search.NewIndex(cmdCtx.Catalog).Find(query, limit)
	cmdCtx.Logger.Debug("search finished", "query", query, "results", len(results))

	switch r.EffectiveMode() {
	case output.ModeJSON:
		hits := make([]SearchHit, 0, len(results))
		for _, res := range results {
			hits = append(hits, SearchHit{
				Slug:     res.Doc.Slug,
				Title:    res.Doc.Title,
				Category: res.Doc.Category,
				Score:    res.Score,
				Matched:  res.Matched,
			})
		}
		return r.JSON(hits)

	case output.ModeMarkdown:
		r.Println(output.FormatHeader(1, fmt.Sprintf("Search: %s (%d results)", query, len(results))))
		r.Println("")
		for _, res := range results {
			title := search.Highlight(res.Doc.Title, res.Matched, "**", "**")
			r.Printf("- %s (`%s`, %s): %s\n", title, res.Doc.Slug, res.Doc.Category, res.Doc.Description)
		}
		return nil

	default:
		if len(results) == 0 {
			r.Muted(fmt.Sprintf("No hooks match %q", query))
			return nil
		}
		styles := r.Styles()
		for _, res := range results {
			var title strings.Builder
			for _, seg := range search.Segments(res.Doc.Title, res.Matched) {
				if seg.Match {
					title.WriteString(styles.Bold.Render(seg.Text))
				} else {
					title.WriteString(seg.Text)
				}
			}
			r.Printf("%s  %s  %s\n", title.String(), styles.Slug.Render(res.Doc.Slug), styles.Muted.Render(res.Doc.Category))
			r.Printf("    %s\n", res.Doc.Description)
		}
		return nil
	}
}
