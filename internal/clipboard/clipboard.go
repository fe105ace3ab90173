// Package clipboard copies text to the system clipboard from the CLI.
//
// It pipes text into the platform clipboard tool (pbcopy, wl-copy, xclip,
// xsel, clip) and can fall back to an OSC 52 escape sequence written to the
// terminal, which also works over SSH.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"
)

// ErrUnsupported is returned when no clipboard mechanism is available.
var ErrUnsupported = errors.New("clipboard not supported")

// Command is a clipboard tool invocation that reads the text from stdin.
type Command struct {
	Name string
	Args []string
}

func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Commands returns the clipboard tools tried on goos, in order of preference.
func Commands(goos string) []Command {
	switch goos {
	case "darwin":
		return []Command{{Name: "pbcopy"}}
	case "windows":
		return []Command{{Name: "clip"}}
	case "linux", "freebsd", "openbsd", "netbsd":
		return []Command{
			{Name: "wl-copy"},
			{Name: "xclip", Args: []string{"-selection", "clipboard"}},
			{Name: "xsel", Args: []string{"--clipboard", "--input"}},
		}
	default:
		return nil
	}
}

// System writes to the system clipboard.
type System struct {
	// GOOS selects the candidate tools. Defaults to runtime.GOOS.
	GOOS string

	// Fallback, when set, receives an OSC 52 sequence if no tool is found.
	Fallback io.Writer

	lookPath func(string) (string, error)
	run      func(ctx context.Context, path string, args []string, stdin string) error
}

// NewSystem returns a System for the current platform. When osc52Fallback is
// true, stdout receives an OSC 52 sequence if no clipboard tool is installed.
func NewSystem(osc52Fallback bool) *System {
	s := &System{}
	if osc52Fallback {
		s.Fallback = os.Stdout
	}
	return s
}

// Write copies text to the clipboard.
func (s *System) Write(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cmd, path, ok := s.resolve()
	if !ok {
		if s.Fallback != nil {
			return OSC52{W: s.Fallback}.Write(ctx, text)
		}
		return fmt.Errorf("%w on %s", ErrUnsupported, s.goos())
	}

	if err := s.runner()(ctx, path, cmd.Args, text); err != nil {
		return fmt.Errorf("%s: %w", cmd, err)
	}
	return nil
}

// Tool returns the clipboard tool Write would use, if any.
func (s *System) Tool() (Command, bool) {
	cmd, _, ok := s.resolve()
	return cmd, ok
}

func (s *System) resolve() (Command, string, bool) {
	lookPath := s.lookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	for _, c := range Commands(s.goos()) {
		if path, err := lookPath(c.Name); err == nil {
			return c, path, true
		}
	}
	return Command{}, "", false
}

func (s *System) goos() string {
	if s.GOOS != "" {
		return s.GOOS
	}
	return runtime.GOOS
}

func (s *System) runner() func(context.Context, string, []string, string) error {
	if s.run != nil {
		return s.run
	}
	return runCommand
}

func runCommand(ctx context.Context, path string, args []string, stdin string) error {
	c := exec.CommandContext(ctx, path, args...)
	c.Stdin = strings.NewReader(stdin)
	if out, err := c.CombinedOutput(); err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("%w: %s", err, msg)
		}
		return err
	}
	return nil
}

// OSC52 writes text as an OSC 52 clipboard escape sequence.
type OSC52 struct {
	W io.Writer

	// Tmux wraps the sequence in a tmux passthrough.
	Tmux bool
}

// Write implements the same contract as System.Write.
func (o OSC52) Write(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if o.W == nil {
		return ErrUnsupported
	}
	seq := osc52.New(text)
	if o.Tmux || os.Getenv("TMUX") != "" {
		seq = seq.Tmux()
	}
	if _, err := seq.WriteTo(o.W); err != nil {
		return fmt.Errorf("osc52: %w", err)
	}
	return nil
}
