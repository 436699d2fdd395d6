package config

import (
	"fmt"
	"strings"
)

// Validate checks config values for correctness.
// Returns an error if any values are invalid.
func (c *Config) Validate() error {
	var errs []string

	if c.UI.DefaultTarget == "" {
		errs = append(errs, "ui.default_target must not be empty")
	}
	if len(c.UI.MarkGlyph) != 1 {
		errs = append(errs, "ui.mark_glyph must be a single character")
	}

	if c.Preview.WordWrap < 20 {
		errs = append(errs, "preview.word_wrap must be >= 20")
	}
	if c.Preview.MaxFileSize < 1 {
		errs = append(errs, "preview.max_file_size must be >= 1")
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}
	return nil
}
