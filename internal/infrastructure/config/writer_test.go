package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteConfigOrdered(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()
	cfg.Appearance.ColorScheme = ColorSchemeNight

	require.NoError(t, WriteConfigOrdered(cfg, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "[appearance]")
	assert.Contains(t, content, "color_scheme = 'night'")
	assert.Less(t, strings.Index(content, "[appearance]"), strings.Index(content, "[logging]"))
}

func TestWriteConfigOrdered_NilConfig(t *testing.T) {
	require.Error(t, WriteConfigOrdered(nil, filepath.Join(t.TempDir(), "x.toml")))
}

func TestJSONSchema(t *testing.T) {
	data, err := JSONSchema()
	require.NoError(t, err)

	schema := string(data)
	assert.Contains(t, schema, `"color_scheme"`)
	assert.Contains(t, schema, `"night"`)
	assert.Contains(t, schema, "schemer configuration")
}
