// Package resources serves the site's stylesheet and scripts.
package resources

// StaticDirectoryPath is the path to static assets from the project root.
const StaticDirectoryPath = "internal/ui/resources/static"

// Asset file names under the static directory.
const (
	StylesheetFile = "app.css"
	ScriptFile     = "app.js"
)

// StaticPath returns the URL path for a static asset.
func StaticPath(path string) string {
	return "/static/" + path
}
