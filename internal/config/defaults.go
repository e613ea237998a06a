package config

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile.
// NOTE: Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	Picker PickerConfig `mapstructure:"picker"`
	UI     UIConfig     `mapstructure:"ui"`
	Log    LogConfig    `mapstructure:"log"`
}

type PickerConfig struct {
	// Informational; used to pick the initially focused volume.
	StartingDirectory string `mapstructure:"starting_directory"` // Default: "" (current directory)

	// Selection filter: "all", "directory" or "file"
	SelectionFilter string   `mapstructure:"selection_filter"` // Default: "all"
	Extensions      []string `mapstructure:"extensions"`       // Default: [] (any)
	EnforceFilter   bool     `mapstructure:"enforce_filter"`   // Default: false

	// Tree listing
	ShowHidden       bool `mapstructure:"show_hidden"`       // Default: false
	RespectGitignore bool `mapstructure:"respect_gitignore"` // Default: false
}

type UIConfig struct {
	ColorPrimary string `mapstructure:"color_primary"` // Default: "63"
	ColorBorder  string `mapstructure:"color_border"`  // Default: "240" (grey)
	ColorMuted   string `mapstructure:"color_muted"`   // Default: "241"
	AltScreen    bool   `mapstructure:"alt_screen"`    // Default: true
}

type LogConfig struct {
	Enabled    bool   `mapstructure:"enabled"`      // Default: true
	Level      string `mapstructure:"level"`        // Default: "info"
	Path       string `mapstructure:"path"`         // Default: "" (user cache dir)
	MaxSizeMB  int    `mapstructure:"max_size_mb"`  // Default: 5
	MaxBackups int    `mapstructure:"max_backups"`  // Default: 3
	MaxAgeDays int    `mapstructure:"max_age_days"` // Default: 14
	Compress   bool   `mapstructure:"compress"`     // Default: true
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Picker: PickerConfig{
			StartingDirectory: "",
			SelectionFilter:   "all",
			Extensions:        []string{},
			EnforceFilter:     false,
			ShowHidden:        false,
			RespectGitignore:  false,
		},
		UI: UIConfig{
			ColorPrimary: "63",
			ColorBorder:  "240",
			ColorMuted:   "241",
			AltScreen:    true,
		},
		Log: LogConfig{
			Enabled:    true,
			Level:      "info",
			Path:       "",
			MaxSizeMB:  5,
			MaxBackups: 3,
			MaxAgeDays: 14,
			Compress:   true,
		},
	}
}
