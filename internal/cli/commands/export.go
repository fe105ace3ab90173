package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/hookitup/internal/cli/output"
	"github.com/leapstack-labs/hookitup/internal/clipboard"
	"github.com/leapstack-labs/hookitup/internal/export"
	"github.com/leapstack-labs/hookitup/internal/markdown"
)

// ExportOptions holds options for the export command.
type ExportOptions struct {
	Copy      bool
	Download  bool
	Stdout    bool
	OutputDir string
	FileName  string
	OSC52     bool
}

// NewExportCommand creates the export command.
func NewExportCommand() *cobra.Command {
	opts := &ExportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Copy or download every hook as one Markdown document",
		Long: `Serialize the whole hook catalog as Markdown.

--download (the default) saves it as <file-name>.md in the output directory.
--copy puts it on the system clipboard (pbcopy, wl-copy, xclip, xsel or clip),
falling back to an OSC 52 terminal sequence when no tool is installed.
--stdout prints it.`,
		Example: `  # Save hookitup-hooks.md in the current directory
  hookitup export

  # Copy to the clipboard
  hookitup export --copy

  # Copy through the terminal, e.g. over SSH
  hookitup export --copy --osc52

  # Pipe somewhere else
  hookitup export --stdout | wc -l`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Copy, "copy", false, "Copy to the clipboard")
	cmd.Flags().BoolVar(&opts.Download, "download", false, "Save as a Markdown file (default)")
	cmd.Flags().BoolVar(&opts.Stdout, "stdout", false, "Print to standard output")
	cmd.Flags().StringVar(&opts.OutputDir, "output-dir", "", "Directory for --download (default: .)")
	cmd.Flags().StringVar(&opts.FileName, "file-name", "", "File name without extension (default: hookitup-hooks)")
	cmd.Flags().BoolVar(&opts.OSC52, "osc52", false, "Copy with an OSC 52 terminal sequence instead of a clipboard tool")
	cmd.MarkFlagsMutuallyExclusive("copy", "download", "stdout")

	return cmd
}

func runExport(cmd *cobra.Command, opts *ExportOptions) error {
	cmdCtx := NewCommandContext(cmd)
	cat := cmdCtx.Catalog
	source := func() string { return markdown.SerializeCatalog(cat) }

	if opts.Stdout {
		_, err := io.WriteString(cmd.OutOrStdout(), source())
		return err
	}

	kind, dest, err := exportDestination(cmd, cmdCtx, opts)
	if err != nil {
		return err
	}

	ctrl, err := export.NewController(export.Config{
		Kind:        kind,
		Source:      source,
		Destination: dest,
		Notifier:    toastNotifier{r: cmdCtx.Renderer},
		Logger:      cmdCtx.Logger,
		ResetDelay:  cmdCtx.Cfg.Export.ResetDelay,
	})
	if err != nil {
		return err
	}
	defer ctrl.Close()

	if err := ctrl.Invoke(cmd.Context()); err != nil {
		return err
	}

	if fd, ok := dest.(export.FileDestination); ok {
		cmdCtx.Renderer.Muted("Saved to " + fd.Path())
	}
	return nil
}

// exportDestination picks the destination for the selected action.
func exportDestination(cmd *cobra.Command, cmdCtx *CommandContext, opts *ExportOptions) (export.Kind, export.Destination, error) {
	cfg := cmdCtx.Cfg

	if opts.Copy {
		if opts.OSC52 {
			return export.KindCopy, clipboard.OSC52{W: cmd.OutOrStdout()}, nil
		}
		sys := &clipboard.System{}
		if cmdCtx.Renderer.IsTTY() {
			sys.Fallback = cmd.OutOrStdout()
		}
		if tool, ok := sys.Tool(); ok {
			cmdCtx.Logger.Debug("copying with clipboard tool", "tool", tool.String())
		}
		return export.KindCopy, sys, nil
	}

	dest := export.FileDestination{
		Dir:      cfg.Export.OutputDir,
		BaseName: cfg.Export.FileName,
	}
	if opts.OutputDir != "" {
		dest.Dir = opts.OutputDir
	}
	if opts.FileName != "" {
		dest.BaseName = opts.FileName
	}
	if dest.BaseName == "" {
		return "", nil, fmt.Errorf("file name is required")
	}
	return export.KindDownload, dest, nil
}

// toastNotifier shows export notifications as boxed terminal messages.
type toastNotifier struct {
	r *output.Renderer
}

func (n toastNotifier) Notify(note export.Notification) {
	if note.Level == export.LevelFailure {
		msg := note.Message
		if note.Err != nil {
			msg += ": " + note.Err.Error()
		}
		n.r.Toast(msg, true)
		return
	}
	n.r.Toast(note.Message, false)
}
