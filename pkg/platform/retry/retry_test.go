package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	errTransient = errors.New("transient")
	errFatal     = errors.New("fatal")
)

func isTransient(err error) bool { return errors.Is(err, errTransient) }

func TestDo(t *testing.T) {
	policy := Policy{MaxAttempts: 3, Delay: time.Millisecond, Retryable: isTransient}

	t.Run("succeeds on first attempt", func(t *testing.T) {
		calls := 0
		got, err := Do(context.Background(), policy, func(context.Context, int) (string, error) {
			calls++
			return "ok", nil
		})
		require.NoError(t, err)
		assert.Equal(t, "ok", got)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries transient failures until success", func(t *testing.T) {
		calls := 0
		got, err := Do(context.Background(), policy, func(_ context.Context, attempt int) (int, error) {
			calls++
			if attempt < 3 {
				return 0, errTransient
			}
			return 42, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 42, got)
		assert.Equal(t, 3, calls)
	})

	t.Run("returns last error when attempts run out", func(t *testing.T) {
		calls := 0
		_, err := Do(context.Background(), policy, func(context.Context, int) (int, error) {
			calls++
			return 0, errTransient
		})
		assert.ErrorIs(t, err, errTransient)
		assert.Equal(t, 3, calls)
	})

	t.Run("does not retry non-retryable errors", func(t *testing.T) {
		calls := 0
		_, err := Do(context.Background(), policy, func(context.Context, int) (int, error) {
			calls++
			return 0, errFatal
		})
		assert.ErrorIs(t, err, errFatal)
		assert.Equal(t, 1, calls)
	})

	t.Run("nil predicate means a single attempt", func(t *testing.T) {
		calls := 0
		_, err := Do(context.Background(), Policy{MaxAttempts: 3}, func(context.Context, int) (int, error) {
			calls++
			return 0, errTransient
		})
		assert.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("zero attempts still runs once", func(t *testing.T) {
		calls := 0
		_, _ = Do(context.Background(), Policy{Retryable: isTransient}, func(context.Context, int) (int, error) {
			calls++
			return 0, errTransient
		})
		assert.Equal(t, 1, calls)
	})
}

func TestDo_StopsOnCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	policy := Policy{MaxAttempts: 5, Delay: time.Hour, Retryable: isTransient}

	calls := 0
	_, err := Do(ctx, policy, func(context.Context, int) (int, error) {
		calls++
		cancel()
		return 0, errTransient
	})

	assert.ErrorIs(t, err, errTransient)
	assert.Equal(t, 1, calls)
}

func TestDo_BackoffGrowsWithMultiplier(t *testing.T) {
	var waits []time.Duration
	policy := Policy{
		MaxAttempts: 4,
		Delay:       time.Millisecond,
		Multiplier:  2,
		Retryable:   isTransient,
		OnRetry: func(_ int, _ error, wait time.Duration) {
			waits = append(waits, wait)
		},
	}

	_, _ = Do(context.Background(), policy, func(context.Context, int) (int, error) {
		return 0, errTransient
	})

	assert.Equal(t, []time.Duration{time.Millisecond, 2 * time.Millisecond, 4 * time.Millisecond}, waits)
}

func TestDo_FixedBackoff(t *testing.T) {
	var waits []time.Duration
	policy := Policy{
		MaxAttempts: 3,
		Delay:       time.Millisecond,
		Retryable:   isTransient,
		OnRetry: func(_ int, _ error, wait time.Duration) {
			waits = append(waits, wait)
		},
	}

	_, _ = Do(context.Background(), policy, func(context.Context, int) (int, error) {
		return 0, errTransient
	})

	assert.Equal(t, []time.Duration{time.Millisecond, time.Millisecond}, waits)
}
