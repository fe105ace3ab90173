package clipboard

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommands(t *testing.T) {
	tests := []struct {
		goos  string
		first string
		count int
	}{
		{"darwin", "pbcopy", 1},
		{"windows", "clip", 1},
		{"linux", "wl-copy", 3},
		{"plan9", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			cmds := Commands(tt.goos)
			require.Len(t, cmds, tt.count)
			if tt.count > 0 {
				assert.Equal(t, tt.first, cmds[0].Name)
			}
		})
	}
}

func TestCommand_String(t *testing.T) {
	assert.Equal(t, "xclip -selection clipboard", Command{Name: "xclip", Args: []string{"-selection", "clipboard"}}.String())
	assert.Equal(t, "pbcopy", Command{Name: "pbcopy"}.String())
}

func onlyTools(names ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		for _, n := range names {
			if n == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", exec.ErrNotFound
	}
}

func TestSystem_Write_UsesFirstAvailableTool(t *testing.T) {
	var gotPath, gotInput string
	var gotArgs []string
	s := &System{
		GOOS:     "linux",
		lookPath: onlyTools("xclip", "xsel"),
		run: func(_ context.Context, path string, args []string, stdin string) error {
			gotPath, gotArgs, gotInput = path, args, stdin
			return nil
		},
	}

	require.NoError(t, s.Write(context.Background(), "# hooks"))
	assert.Equal(t, "/usr/bin/xclip", gotPath)
	assert.Equal(t, []string{"-selection", "clipboard"}, gotArgs)
	assert.Equal(t, "# hooks", gotInput)

	tool, ok := s.Tool()
	assert.True(t, ok)
	assert.Equal(t, "xclip", tool.Name)
}

func TestSystem_Write_ToolFailure(t *testing.T) {
	s := &System{
		GOOS:     "darwin",
		lookPath: onlyTools("pbcopy"),
		run: func(context.Context, string, []string, string) error {
			return errors.New("exit status 1")
		},
	}

	err := s.Write(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pbcopy")
}

func TestSystem_Write_NoTool(t *testing.T) {
	s := &System{GOOS: "linux", lookPath: onlyTools()}

	err := s.Write(context.Background(), "x")
	assert.ErrorIs(t, err, ErrUnsupported)

	_, ok := s.Tool()
	assert.False(t, ok)
}

func TestSystem_Write_OSC52Fallback(t *testing.T) {
	t.Setenv("TMUX", "")
	var out bytes.Buffer
	s := &System{GOOS: "linux", lookPath: onlyTools(), Fallback: &out}

	require.NoError(t, s.Write(context.Background(), "hello"))
	assert.Contains(t, out.String(), "\x1b]52;c;")
	assert.Contains(t, out.String(), base64.StdEncoding.EncodeToString([]byte("hello")))
}

func TestSystem_Write_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := &System{GOOS: "darwin", lookPath: onlyTools("pbcopy")}
	assert.ErrorIs(t, s.Write(ctx, "x"), context.Canceled)
}

func TestOSC52_NoWriter(t *testing.T) {
	assert.ErrorIs(t, OSC52{}.Write(context.Background(), "x"), ErrUnsupported)
}
