package config

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// DefaultConfig returns the configuration written on first run.
func DefaultConfig() *Config {
	return &Config{
		Appearance: AppearanceConfig{
			ColorScheme: ColorSchemeSystem,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}
