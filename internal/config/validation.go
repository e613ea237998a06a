package config

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/Cyclone1070/volpick/internal/selection"
)

// Validate checks config values for correctness.
// Returns an error listing every invalid value.
func (c *Config) Validate() error {
	var errs []string

	// Picker validation
	// Same spellings the picker accepts at runtime
	if _, err := selection.ParseMode(c.Picker.SelectionFilter); err != nil {
		errs = append(errs, fmt.Sprintf("picker.selection_filter must be one of all, directory, file (got %q)", c.Picker.SelectionFilter))
	}
	for i, ext := range c.Picker.Extensions {
		switch {
		case strings.TrimSpace(strings.TrimPrefix(ext, ".")) == "":
			errs = append(errs, fmt.Sprintf("picker.extensions[%d] must not be empty", i))
		case strings.ContainsAny(ext, "*?[{") && !doublestar.ValidatePattern(ext):
			errs = append(errs, fmt.Sprintf("picker.extensions[%d] is not a valid glob (got %q)", i, ext))
		}
	}

	// UI validation
	if c.UI.ColorPrimary == "" {
		errs = append(errs, "ui.color_primary must not be empty")
	}
	if c.UI.ColorBorder == "" {
		errs = append(errs, "ui.color_border must not be empty")
	}
	if c.UI.ColorMuted == "" {
		errs = append(errs, "ui.color_muted must not be empty")
	}

	// Log validation
	switch c.Log.Level {
	case "trace", "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Sprintf("log.level is not a known level (got %q)", c.Log.Level))
	}
	if c.Log.MaxSizeMB < 1 {
		errs = append(errs, "log.max_size_mb must be >= 1")
	}
	if c.Log.MaxBackups < 0 {
		errs = append(errs, "log.max_backups must be >= 0")
	}
	if c.Log.MaxAgeDays < 0 {
		errs = append(errs, "log.max_age_days must be >= 0")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}
