// Package config loads, validates, writes and watches the schemer TOML configuration.
package config

// Config represents the complete configuration for schemer.
type Config struct {
	Appearance AppearanceConfig `mapstructure:"appearance" toml:"appearance" json:"appearance"`
	Logging    LoggingConfig    `mapstructure:"logging" toml:"logging" json:"logging"`
	Database   DatabaseConfig   `mapstructure:"database" toml:"database" json:"database"`
}

// Accepted values for appearance.color_scheme.
const (
	ColorSchemeSystem = "system"
	ColorSchemeDay    = "day"
	ColorSchemeNight  = "night"
)

// AppearanceConfig holds the scheme used when nothing was picked yet.
type AppearanceConfig struct {
	// ColorScheme is the fallback selection: "system" (follows the desktop), "day" or "night".
	// A scheme picked interactively is stored in the database and wins over this value.
	ColorScheme string `mapstructure:"color_scheme" toml:"color_scheme" json:"color_scheme" jsonschema:"enum=system,enum=day,enum=night,default=system"` //nolint:lll // struct tags exceed lll limit
	// Locale overrides LANG for labels (BCP 47, e.g. "fr" or "de-AT"). Empty uses the environment.
	Locale string `mapstructure:"locale" toml:"locale" json:"locale,omitempty"`
}

// LoggingConfig holds logging preferences.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,default=warn"` //nolint:lll // struct tags exceed lll limit
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json,default=console"`
}

// DatabaseConfig holds the preferences database location.
type DatabaseConfig struct {
	// Path of the SQLite file. Empty resolves to $XDG_DATA_HOME/schemer/schemer.db.
	Path string `mapstructure:"path" toml:"path" json:"path,omitempty"`
}
