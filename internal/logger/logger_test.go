package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NoFileIsNop(t *testing.T) {
	l, err := New("debug", "")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(-1))
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("loud", filepath.Join(t.TempDir(), "app.log"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	l, err := New("debug", path)
	require.NoError(t, err)

	l.Debug("dispatch")
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"dispatch"`)
	assert.Contains(t, string(data), `"logger":"lazyfilter"`)
}
