package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/hookitup/internal/catalog"
	"github.com/leapstack-labs/hookitup/internal/cli/output"
)

// CheckOutput is the JSON shape of the check command.
type CheckOutput struct {
	Hooks   int      `json:"hooks"`
	Missing []string `json:"missing"`
	OK      bool     `json:"ok"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check that navigation links point at catalog entries",
		Long: `Verify that every hook linked from the sidebar and the featured cards
exists in the catalog. Exits non-zero when a link would lead to the 404 page.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, catalog.DefaultNavigation())
		},
	}
}

func runCheck(cmd *cobra.Command, nav catalog.Navigation) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	missing := catalog.CheckNavigation(cmdCtx.Catalog, nav)
	result := CheckOutput{Hooks: cmdCtx.Catalog.Len(), Missing: missing, OK: len(missing) == 0}
	if result.Missing == nil {
		result.Missing = []string{}
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		if err := r.JSON(result); err != nil {
			return err
		}
	case output.ModeMarkdown:
		r.Println(output.FormatHeader(1, "Navigation check"))
		r.Println("")
		r.Println(output.FormatKeyValue("Hooks", fmt.Sprint(result.Hooks)))
		r.Println(output.FormatKeyValue("Dangling links", fmt.Sprint(len(missing))))
		for _, slug := range missing {
			r.Println("  - `" + slug + "`")
		}
	default:
		if result.OK {
			r.Success(fmt.Sprintf("All navigation links resolve (%d hooks)", result.Hooks))
		}
		for _, slug := range missing {
			r.Error("dangling navigation link: " + slug)
		}
	}

	if !result.OK {
		return fmt.Errorf("%d navigation links do not match a hook: %s", len(missing), strings.Join(missing, ", "))
	}
	return nil
}
