package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/bnema/schemer/internal/domain/entity"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config         *Config
	viper          *viper.Viper
	configDir      string
	mu             sync.RWMutex
	callbacks      []func(*Config)
	watching       bool
	skipNextReload bool
}

// NewManager creates a configuration manager rooted at the XDG config directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerAt(configDir)
}

// NewManagerAt creates a configuration manager reading config.toml from configDir.
func NewManagerAt(configDir string) (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	// SCHEMER_APPEARANCE_COLOR_SCHEME, SCHEMER_DATABASE_PATH, ...
	v.SetEnvPrefix("SCHEMER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "SCHEMER_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind SCHEMER_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "SCHEMER_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind SCHEMER_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		configDir: configDir,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A default config file is created when none exists.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	return m.reload()
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configFile(), err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf("failed to create default config at %s: %w", m.configDir, createErr)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

// reload re-reads viper state into m.config. Caller must hold the write lock.
func (m *Manager) reload() error {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}

	if config.Database.Path == "" {
		dbPath, err := GetDatabaseFile()
		if err != nil {
			return fmt.Errorf("failed to get database path: %w", err)
		}
		config.Database.Path = dbPath
	}

	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

// normalizeConfig maps aliases onto canonical values and trims whitespace.
func normalizeConfig(config *Config) {
	scheme := strings.TrimSpace(config.Appearance.ColorScheme)
	if scheme == "" {
		config.Appearance.ColorScheme = ColorSchemeSystem
	} else if parsed, err := entity.ParseColorScheme(scheme); err == nil {
		config.Appearance.ColorScheme = parsed.String()
	}

	config.Appearance.Locale = strings.TrimSpace(config.Appearance.Locale)
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "" {
		config.Logging.Format = "console"
	}
	config.Database.Path = strings.TrimSpace(config.Database.Path)
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// Save validates cfg and writes it to the config file.
func (m *Manager) Save(cfg *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	normalizeConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if m.watching {
		m.skipNextReload = true
	}
	if err := WriteConfigOrdered(cfg, m.configFile()); err != nil {
		m.skipNextReload = false
		return err
	}
	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to re-read config after save: %w", err)
	}

	return m.reload()
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return m.configFile()
}

func (m *Manager) configFile() string {
	return filepath.Join(m.configDir, configName)
}

// createDefaultConfig writes DefaultConfig to the config directory.
func (m *Manager) createDefaultConfig() error {
	if err := os.MkdirAll(m.configDir, dirPerm); err != nil {
		return err
	}
	return WriteConfigOrdered(DefaultConfig(), m.configFile())
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("appearance.color_scheme", defaults.Appearance.ColorScheme)
	m.viper.SetDefault("appearance.locale", defaults.Appearance.Locale)
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	// Database.Path is resolved in reload(); a default here would mask env overrides.
	m.viper.SetDefault("database.path", "")
}
