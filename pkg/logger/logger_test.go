package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appConfig "github.com/nwssu/gymadmin/internal/config"
)

func TestNew(t *testing.T) {
	log, err := New()
	require.NoError(t, err)
	assert.NotNil(t, log)
}

func TestNewWithConfig(t *testing.T) {
	t.Run("production json", func(t *testing.T) {
		cfg := appConfig.LoggerConfig{Level: "info", Format: "json", Output: "stdout"}
		log, err := NewWithConfig(cfg)
		require.NoError(t, err)
		assert.NotNil(t, log)
	})

	t.Run("development console", func(t *testing.T) {
		cfg := appConfig.LoggerConfig{Level: "debug", Format: "console", Output: "stderr"}
		log, err := NewWithConfig(cfg)
		require.NoError(t, err)
		assert.NotNil(t, log)
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		cfg := appConfig.LoggerConfig{Level: "chatty", Format: "json", Output: "stdout"}
		log, err := NewWithConfig(cfg)
		require.NoError(t, err)
		assert.NotNil(t, log)
	})

	t.Run("unsupported output falls back to stdout", func(t *testing.T) {
		cfg := appConfig.LoggerConfig{Level: "info", Format: "json", Output: "/var/log/gym.log"}
		log, err := NewWithConfig(cfg)
		require.NoError(t, err)
		assert.NotNil(t, log)
	})
}
