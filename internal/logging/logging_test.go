package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdxmph/clientbook/internal/config"
)

func TestNew_EmptyPathIsNop(t *testing.T) {
	logger, err := New(config.LogConfig{})
	require.NoError(t, err)
	logger.Info("dropped")
	assert.NoError(t, logger.Sync())
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "clientbook.log")

	logger, err := New(config.LogConfig{Path: path, Level: "debug"})
	require.NoError(t, err)
	logger.Debug("hello from test")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(config.LogConfig{Path: filepath.Join(t.TempDir(), "x.log"), Level: "loud"})
	assert.Error(t, err)
}
