package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.UI.Port < 0 || c.UI.Port > 65535 {
		return fmt.Errorf("ui.port must be between 0 and 65535, got %d", c.UI.Port)
	}
	if c.Export.FileName == "" {
		return fmt.Errorf("export.file_name is required")
	}
	if strings.ContainsAny(c.Export.FileName, `/\`) {
		return fmt.Errorf("export.file_name must not contain a path separator: %q", c.Export.FileName)
	}
	if c.Export.ResetDelay <= 0 {
		return fmt.Errorf("export.reset_delay must be positive, got %s", c.Export.ResetDelay)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.OutputFormat {
	case "", "auto", "text", "markdown", "json":
	default:
		return fmt.Errorf("output must be one of auto, text, markdown, json, got %q", c.OutputFormat)
	}
	return nil
}

// Level returns the slog level for log_level. Verbose forces debug.
func (c *Config) Level() (slog.Level, error) {
	if c.Verbose {
		return slog.LevelDebug, nil
	}
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
