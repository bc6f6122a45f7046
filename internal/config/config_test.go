package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadFile_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
ui:
  theme: catppuccin
  popup_height: 10
filter:
  date_format: "2006-01-02"
log:
  level: debug
  file: /tmp/lazyfilter.log
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "catppuccin", cfg.UI.Theme)
	assert.Equal(t, 10, cfg.UI.PopupHeight)
	assert.True(t, cfg.UI.MouseEnabled, "unset keys keep their defaults")
	assert.Equal(t, "2006-01-02", cfg.Filter.DateFormat)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/lazyfilter.log", cfg.Log.File)
	assert.Equal(t, "json", cfg.Export.DefaultFormat)
}

func TestLoadFile_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"popup height", "ui:\n  popup_height: 0\n"},
		{"export format", "export:\n  default_format: xml\n"},
		{"malformed yaml", "ui: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestGetDefaults_Valid(t *testing.T) {
	require.NoError(t, GetDefaults().Validate())
}
