// Package config provides configuration management for the HookItUp CLI.
//
// Values are layered with koanf: defaults, then hookitup.yaml, then
// HOOKITUP_* environment variables (including a .env file), then flags.
package config

import (
	"time"

	"github.com/leapstack-labs/hookitup/internal/export"
)

// Default configuration values.
const (
	DefaultOutput     = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultLogLevel   = "info"
	DefaultPort       = 8765
	DefaultOutputDir  = "."
	DefaultBuildDir   = "./site"
	DefaultBaseURL    = "/"
	DefaultConfigName = "hookitup"
	EnvPrefix         = "HOOKITUP_"
)

// UIConfig holds configuration for the site server.
type UIConfig struct {
	Port          int    `koanf:"port"`
	AutoOpen      bool   `koanf:"auto_open"`
	Watch         bool   `koanf:"watch"`
	SessionSecret string `koanf:"session_secret"`
	StaticDir     string `koanf:"static_dir"`
	SecureCookies bool   `koanf:"secure_cookies"`
}

// ExportConfig holds configuration for the copy and download actions.
type ExportConfig struct {
	FileName   string        `koanf:"file_name"`
	OutputDir  string        `koanf:"output_dir"`
	ResetDelay time.Duration `koanf:"reset_delay"`
}

// BuildConfig holds configuration for the static site build.
type BuildConfig struct {
	OutputDir string `koanf:"output_dir"`
	Minify    bool   `koanf:"minify"`
	BaseURL   string `koanf:"base_url"`
}

// Config holds all CLI configuration options.
type Config struct {
	Verbose      bool         `koanf:"verbose"`
	LogLevel     string       `koanf:"log_level"`
	OutputFormat string       `koanf:"output"`
	Trace        bool         `koanf:"trace"`
	UI           UIConfig     `koanf:"ui"`
	Export       ExportConfig `koanf:"export"`
	Build        BuildConfig  `koanf:"build"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		LogLevel:     DefaultLogLevel,
		OutputFormat: DefaultOutput,
		UI: UIConfig{
			Port:     DefaultPort,
			AutoOpen: true,
		},
		Export: ExportConfig{
			FileName:   export.DefaultBaseName,
			OutputDir:  DefaultOutputDir,
			ResetDelay: export.DefaultResetDelay,
		},
		Build: BuildConfig{
			OutputDir: DefaultBuildDir,
			Minify:    true,
			BaseURL:   DefaultBaseURL,
		},
	}
}

// defaults flattens Default into koanf keys.
func defaults() map[string]any {
	d := Default()
	return map[string]any{
		"verbose":            d.Verbose,
		"log_level":          d.LogLevel,
		"output":             d.OutputFormat,
		"trace":              d.Trace,
		"ui.port":            d.UI.Port,
		"ui.auto_open":       d.UI.AutoOpen,
		"ui.watch":           d.UI.Watch,
		"ui.session_secret":  d.UI.SessionSecret,
		"ui.static_dir":      d.UI.StaticDir,
		"ui.secure_cookies":  d.UI.SecureCookies,
		"export.file_name":   d.Export.FileName,
		"export.output_dir":  d.Export.OutputDir,
		"export.reset_delay": d.Export.ResetDelay.String(),
		"build.output_dir":   d.Build.OutputDir,
		"build.minify":       d.Build.Minify,
		"build.base_url":     d.Build.BaseURL,
	}
}
