package corpus

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackoffFirstAttempt(t *testing.T) {
	calls := 0
	err := backoff{attempts: 3, base: 10 * time.Millisecond}.run(context.Background(), func() error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestBackoffRecovers(t *testing.T) {
	calls := 0
	err := backoff{attempts: 5, base: time.Millisecond}.run(context.Background(), func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestBackoffExhausted(t *testing.T) {
	calls := 0
	wantErr := errors.New("persistent")
	err := backoff{attempts: 3, base: time.Millisecond}.run(context.Background(), func() error {
		calls++
		return wantErr
	})

	assert.ErrorIs(t, err, wantErr, "the last error surfaces unchanged")
	assert.Equal(t, 3, calls, "no more calls than the policy allows")
}

func TestBackoffDoublesWait(t *testing.T) {
	var gaps []time.Duration
	last := time.Now()
	calls := 0

	err := backoff{attempts: 5, base: 10 * time.Millisecond}.run(context.Background(), func() error {
		now := time.Now()
		if calls > 0 {
			gaps = append(gaps, now.Sub(last))
		}
		last = now
		calls++
		if calls < 4 {
			return errors.New("transient")
		}
		return nil
	})

	require.NoError(t, err)
	require.Len(t, gaps, 3)
	assert.Greater(t, gaps[1], gaps[0])
	assert.Greater(t, gaps[2], gaps[1])
}

func TestBackoffContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0

	err := backoff{attempts: 10, base: 10 * time.Millisecond}.run(ctx, func() error {
		calls++
		if calls == 2 {
			cancel()
		}
		return errors.New("transient")
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.LessOrEqual(t, calls, 2, "cancellation stops further attempts")
}

func TestBackoffInvalidAttempts(t *testing.T) {
	for _, attempts := range []int{0, -1} {
		calls := 0
		err := backoff{attempts: attempts, base: time.Millisecond}.run(context.Background(), func() error {
			calls++
			return nil
		})

		assert.ErrorIs(t, err, ErrInvalidMaxAttempts)
		assert.Equal(t, 0, calls)
	}
}
