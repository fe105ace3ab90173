package common

import "strings"

// DefaultOpenCategory is expanded in the sidebar on every page.
const DefaultOpenCategory = "State Management"

// LineCount returns the number of lines in s, ignoring one trailing newline.
func LineCount(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(strings.TrimSuffix(s, "\n"), "\n") + 1
}

// IsActive reports whether href is the current page. The home link is only
// active on "/" itself.
func IsActive(currentPath, href string) bool {
	if href == "/" {
		return currentPath == "/"
	}
	return currentPath == href || strings.HasPrefix(currentPath, href+"/")
}
