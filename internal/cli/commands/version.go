package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/hookitup/internal/catalog"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display HookItUp version and catalog information.`,
		Run: func(cmd *cobra.Command, _ []string) {
			app := catalog.DefaultAppInfo()
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "HookItUp v%s\n", version)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Catalog v%s, %d hooks (updated %s)\n",
				app.Version, catalog.Default().Len(), app.LastUpdated)
		},
	}
}
