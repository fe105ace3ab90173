package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultBaseName is the download's file name without extension.
	DefaultBaseName = "hookitup-hooks"

	// FileExtension is appended to every exported file name.
	FileExtension = ".md"

	// MarkdownContentType is served with downloads.
	MarkdownContentType = "text/markdown; charset=utf-8"
)

// FileName returns base with the Markdown extension, using DefaultBaseName
// when base is empty.
func FileName(base string) string {
	if base == "" {
		base = DefaultBaseName
	}
	return base + FileExtension
}

// FileDestination saves the document as <Dir>/<BaseName>.md.
//
// The content is staged in a temporary file which is renamed into place;
// the temporary file is always released before Write returns.
type FileDestination struct {
	Dir      string
	BaseName string
}

// FileName returns the name of the file Write produces.
func (d FileDestination) FileName() string {
	return FileName(d.BaseName)
}

// Path returns the full path Write produces.
func (d FileDestination) Path() string {
	dir := d.Dir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, d.FileName())
}

// Write implements Destination.
func (d FileDestination) Write(ctx context.Context, payload string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.ContainsAny(d.BaseName, `/\`) {
		return fmt.Errorf("invalid file name %q", d.BaseName)
	}

	target := d.Path()
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+d.FileName()+".*")
	if err != nil {
		return fmt.Errorf("failed to stage %s: %w", d.FileName(), err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.WriteString(payload); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write %s: %w", d.FileName(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", d.FileName(), err)
	}

	if err := os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("failed to save %s: %w", target, err)
	}
	return nil
}
