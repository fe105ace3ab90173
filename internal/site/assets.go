package site

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
)

// copyAssets writes every file of assets under static/, minifying
// stylesheets and scripts when enabled. It returns the written paths.
func (b *Builder) copyAssets(assets fs.FS) ([]string, error) {
	var written []string
	err := fs.WalkDir(assets, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		content, err := fs.ReadFile(assets, p)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", p, err)
		}
		if b.Minify {
			if content, err = minify(p, content); err != nil {
				return err
			}
		}

		out := path.Join("static", p)
		if err := b.writeFile(out, content); err != nil {
			return err
		}
		written = append(written, out)
		return nil
	})
	return written, err
}

// minify shrinks CSS and JavaScript with esbuild. Other files pass through.
func minify(name string, content []byte) ([]byte, error) {
	var loader api.Loader
	switch path.Ext(name) {
	case ".css":
		loader = api.LoaderCSS
	case ".js":
		loader = api.LoaderJS
	default:
		return content, nil
	}

	result := api.Transform(string(content), api.TransformOptions{
		Loader:            loader,
		Sourcefile:        name,
		Target:            api.ES2020,
		MinifyWhitespace:  true,
		MinifyIdentifiers: true,
		MinifySyntax:      true,
		LogLevel:          api.LogLevelSilent,
	})

	if len(result.Errors) > 0 {
		var errMsg strings.Builder
		for _, err := range result.Errors {
			line, col := 0, 0
			if err.Location != nil {
				line, col = err.Location.Line, err.Location.Column
			}
			fmt.Fprintf(&errMsg, "%s:%d:%d: %s\n", name, line, col, err.Text)
		}
		return nil, fmt.Errorf("esbuild errors:\n%s", errMsg.String())
	}
	return result.Code, nil
}
