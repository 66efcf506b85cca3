package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig() Config {
	return Config{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
	}
}

func TestDo(t *testing.T) {
	ctx := context.Background()

	t.Run("succeeds first try", func(t *testing.T) {
		calls := 0
		err := Do(ctx, fastConfig(), func() error {
			calls++
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries until success", func(t *testing.T) {
		calls := 0
		err := Do(ctx, fastConfig(), func() error {
			calls++
			if calls < 3 {
				return errors.New("transient")
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("exhausts attempts", func(t *testing.T) {
		calls := 0
		failure := errors.New("still broken")
		err := Do(ctx, fastConfig(), func() error {
			calls++
			return failure
		})
		assert.ErrorIs(t, err, failure)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops on non-retryable error", func(t *testing.T) {
		cfg := fastConfig()
		cfg.RetryablePatterns = []string{"connection refused"}

		calls := 0
		err := Do(ctx, cfg, func() error {
			calls++
			return errors.New("permission denied")
		})
		assert.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("rejects zero max attempts", func(t *testing.T) {
		err := Do(ctx, Config{}, func() error { return nil })
		assert.Error(t, err)
	})
}

func TestDoWithResult(t *testing.T) {
	ctx := context.Background()

	t.Run("returns result", func(t *testing.T) {
		got, err := DoWithResult(ctx, fastConfig(), func() (int, error) {
			return 42, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 42, got)
	})

	t.Run("honors context cancellation", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := DoWithResult(cancelled, fastConfig(), func() (int, error) {
			return 0, errors.New("transient")
		})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestIsRetryable(t *testing.T) {
	t.Run("nil error is not retryable", func(t *testing.T) {
		assert.False(t, IsRetryable(nil, DefaultConfig()))
	})

	t.Run("everything retryable without patterns", func(t *testing.T) {
		assert.True(t, IsRetryable(errors.New("anything"), DefaultConfig()))
	})

	t.Run("postgres patterns match", func(t *testing.T) {
		cfg := PostgresConfig()
		assert.True(t, IsRetryable(errors.New("dial tcp 127.0.0.1:5432: connection refused"), cfg))
		assert.False(t, IsRetryable(errors.New("syntax error at or near"), cfg))
	})
}

func TestBackoffDelay(t *testing.T) {
	cfg := Config{InitialDelay: 100 * time.Millisecond, MaxDelay: time.Second, Multiplier: 2.0}

	// Jitter is ±10%, so bound checks use a wide margin.
	d0 := backoffDelay(0, cfg)
	assert.InDelta(t, float64(100*time.Millisecond), float64(d0), float64(20*time.Millisecond))

	// Large attempts are capped at MaxDelay.
	dBig := backoffDelay(20, cfg)
	assert.LessOrEqual(t, dBig, time.Second+200*time.Millisecond)
}
