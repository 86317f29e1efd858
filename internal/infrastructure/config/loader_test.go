package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	return root
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "system", mgr.viper.GetString("appearance.color_scheme"))
	assert.Equal(t, "warn", mgr.viper.GetString("logging.level"))
	assert.Equal(t, "console", mgr.viper.GetString("logging.format"))
}

func TestManager_LoadCreatesDefaultFile(t *testing.T) {
	root := isolateXDG(t)
	dir := filepath.Join(root, "config", "schemer")

	mgr, err := NewManagerAt(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	_, statErr := os.Stat(filepath.Join(dir, "config.toml"))
	require.NoError(t, statErr)

	cfg := mgr.Get()
	assert.Equal(t, ColorSchemeSystem, cfg.Appearance.ColorScheme)
	assert.Equal(t, filepath.Join(root, "data", "schemer", "schemer.db"), cfg.Database.Path)
	assert.Equal(t, filepath.Join(dir, "config.toml"), mgr.GetConfigFile())
}

func TestManager_LoadNormalizesAliases(t *testing.T) {
	isolateXDG(t)
	dir := t.TempDir()
	content := "[appearance]\ncolor_scheme = \"prefer-dark\"\nlocale = \" fr \"\n\n[logging]\nlevel = \"DEBUG\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o600))

	mgr, err := NewManagerAt(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, ColorSchemeNight, cfg.Appearance.ColorScheme)
	assert.Equal(t, "fr", cfg.Appearance.Locale)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestManager_LoadRejectsInvalidScheme(t *testing.T) {
	isolateXDG(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"),
		[]byte("[appearance]\ncolor_scheme = \"sepia\"\n"), 0o600))

	mgr, err := NewManagerAt(dir)
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "appearance.color_scheme")
}

func TestManager_EnvOverride(t *testing.T) {
	isolateXDG(t)
	t.Setenv("SCHEMER_APPEARANCE_COLOR_SCHEME", "day")
	t.Setenv("SCHEMER_LOG_LEVEL", "error")

	mgr, err := NewManagerAt(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, ColorSchemeDay, cfg.Appearance.ColorScheme)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestManager_SaveRoundTrip(t *testing.T) {
	isolateXDG(t)
	dir := t.TempDir()

	mgr, err := NewManagerAt(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Appearance.ColorScheme = "light"
	cfg.Database.Path = filepath.Join(dir, "custom.db")
	require.NoError(t, mgr.Save(cfg))

	reloaded, err := NewManagerAt(dir)
	require.NoError(t, err)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, ColorSchemeDay, reloaded.Get().Appearance.ColorScheme)
	assert.Equal(t, filepath.Join(dir, "custom.db"), reloaded.Get().Database.Path)
}

func TestManager_SaveRejectsInvalid(t *testing.T) {
	isolateXDG(t)
	mgr, err := NewManagerAt(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Logging.Format = "xml"
	require.Error(t, mgr.Save(cfg))
	require.Error(t, mgr.Save(nil))
}

func TestManager_GetBeforeLoadReturnsDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	assert.Equal(t, DefaultConfig(), mgr.Get())
}
