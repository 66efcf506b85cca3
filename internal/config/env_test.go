package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Run("returns value when set", func(t *testing.T) {
		t.Setenv("TEST_KEY", "custom")
		assert.Equal(t, "custom", GetEnv("TEST_KEY", "default"))
	})

	t.Run("returns default when missing", func(t *testing.T) {
		assert.Equal(t, "default", GetEnv("TEST_KEY_MISSING", "default"))
	})

	t.Run("returns default when empty", func(t *testing.T) {
		t.Setenv("TEST_KEY_EMPTY", "")
		assert.Equal(t, "default", GetEnv("TEST_KEY_EMPTY", "default"))
	})
}

func TestGetEnvInt(t *testing.T) {
	t.Run("parses valid integer", func(t *testing.T) {
		t.Setenv("TEST_INT", "42")
		assert.Equal(t, 42, GetEnvInt("TEST_INT", 0))
	})

	t.Run("returns default on invalid value", func(t *testing.T) {
		t.Setenv("TEST_INT_INVALID", "not-a-number")
		assert.Equal(t, 10, GetEnvInt("TEST_INT_INVALID", 10))
	})

	t.Run("returns default when missing", func(t *testing.T) {
		assert.Equal(t, 5, GetEnvInt("TEST_INT_MISSING", 5))
	})
}

func TestGetEnvDuration(t *testing.T) {
	t.Run("parses valid duration", func(t *testing.T) {
		t.Setenv("TEST_DUR", "30s")
		assert.Equal(t, 30*time.Second, GetEnvDuration("TEST_DUR", time.Minute))
	})

	t.Run("returns default on invalid value", func(t *testing.T) {
		t.Setenv("TEST_DUR_INVALID", "soon")
		assert.Equal(t, time.Minute, GetEnvDuration("TEST_DUR_INVALID", time.Minute))
	})

	t.Run("returns default when missing", func(t *testing.T) {
		assert.Equal(t, time.Minute, GetEnvDuration("TEST_DUR_MISSING", time.Minute))
	})
}
