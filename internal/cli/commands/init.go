package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/hookitup/internal/cli/output"
)

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool
	var template string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a starter HookItUp configuration",
		Long: `Write a hookitup.yaml with every option and its default, a .env.example
for secrets, and a .gitignore for generated files.

Use --template pages for a configuration that builds the static site into
docs/ together with a GitHub Pages workflow.`,
		Example: `  # Initialize in current directory
  hookitup init

  # Initialize for GitHub Pages
  hookitup init --template pages

  # Force overwrite existing files
  hookitup init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			cfg := getConfig()
			r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat))
			return runInit(r, dir, template, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files")
	cmd.Flags().StringVar(&template, "template", TemplateConfig, "Starter template ("+strings.Join(templateNames(), "|")+")")
	_ = cmd.RegisterFlagCompletionFunc("template", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return templateNames(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runInit(r *output.Renderer, dir, template string, force bool) error {
	if !slices.Contains(templateNames(), template) {
		return fmt.Errorf("unknown template %q (available: %s)", template, strings.Join(templateNames(), ", "))
	}

	// Create directory if specified and doesn't exist
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	// Check if config already exists
	configPath := filepath.Join(dir, "hookitup.yaml")
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("hookitup.yaml already exists. Use --force to overwrite")
	}

	written, skipped, err := copyTemplate(template, dir, force)
	if err != nil {
		return fmt.Errorf("failed to initialize project: %w", err)
	}

	for _, f := range written {
		r.StatusLine(f, "success", "")
	}
	for _, f := range skipped {
		r.StatusLine(f, "skipped", "already exists")
	}

	r.Println("")
	r.Success("HookItUp configured!")
	r.Println("")
	r.Println("Next steps:")
	r.Println("  hookitup serve    Browse the docs locally")
	r.Println("  hookitup build    Render the static site")
	r.Println("  hookitup export   Save every hook as one Markdown file")

	return nil
}
