package config

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile.
// NOTE: Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	UI      UIConfig      `json:"ui"`
	Preview PreviewConfig `json:"preview"`
}

type UIConfig struct {
	// DefaultTarget is the session whose context list opens first.
	DefaultTarget string `json:"default_target"` // Default: "default"

	// ConfirmDelete controls whether delete-at-point asks before
	// removing the item. Batch execute never asks; marks are the
	// confirmation.
	ConfirmDelete bool `json:"confirm_delete"` // Default: true

	// MarkGlyph is the character shown in the Mark column for items
	// flagged for deletion.
	MarkGlyph string `json:"mark_glyph"` // Default: "D"
}

type PreviewConfig struct {
	// WordWrap is the column the preview renderer wraps at.
	WordWrap int `json:"word_wrap"` // Default: 80

	// MaxFileSize caps how much of a file the preview and session
	// assembly will read.
	MaxFileSize int64 `json:"max_file_size"` // Default: 4 * 1024 * 1024 (4MB)
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			DefaultTarget: "default",
			ConfirmDelete: true,
			MarkGlyph:     "D",
		},
		Preview: PreviewConfig{
			WordWrap:    80,
			MaxFileSize: 4 * 1024 * 1024,
		},
	}
}
