package config

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/bnema/schemer/internal/domain/entity"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateAppearance(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateAppearance(config *Config) []string {
	var validationErrors []string
	if _, err := entity.ParseColorScheme(config.Appearance.ColorScheme); err != nil {
		validationErrors = append(validationErrors,
			fmt.Sprintf("appearance.color_scheme must be one of system, day, night (got %q)", config.Appearance.ColorScheme))
	}
	if config.Appearance.Locale != "" {
		if _, err := language.Parse(strings.ReplaceAll(config.Appearance.Locale, "_", "-")); err != nil {
			validationErrors = append(validationErrors,
				fmt.Sprintf("appearance.locale %q is not a valid language tag", config.Appearance.Locale))
		}
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "", "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error (got %q)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be console or json (got %q)", config.Logging.Format))
	}
	return validationErrors
}
