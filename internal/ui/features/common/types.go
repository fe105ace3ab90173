// Package common provides shared types and utilities for UI features.
package common

import "github.com/leapstack-labs/hookitup/internal/catalog"

// PageData is what every page needs to render the shell around its content.
type PageData struct {
	Title       string
	Description string
	CurrentPath string
	App         catalog.AppInfo
	Nav         catalog.Navigation

	// IsDev enables the live reload listener.
	IsDev bool

	// Static renders export controls that work without a server.
	Static bool

	// ExportFile is the URL path of the Markdown export.
	ExportFile string
}

// Shell holds the site-wide data handed to every feature.
type Shell struct {
	App        catalog.AppInfo
	Nav        catalog.Navigation
	IsDev      bool
	Static     bool
	ExportFile string
}

// Page returns PageData for one page of the site.
func (s Shell) Page(title, description, currentPath string) PageData {
	return PageData{
		Title:       title,
		Description: description,
		CurrentPath: currentPath,
		App:         s.App,
		Nav:         s.Nav,
		IsDev:       s.IsDev,
		Static:      s.Static,
		ExportFile:  s.ExportFile,
	}
}

// DefaultShell returns the shell for the built-in catalog.
func DefaultShell(isDev bool) Shell {
	return Shell{
		App:   catalog.DefaultAppInfo(),
		Nav:   catalog.DefaultNavigation(),
		IsDev: isDev,
	}
}
