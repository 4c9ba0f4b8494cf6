package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/medroute/hospital-finder/pkg/retry"
	"github.com/stretchr/testify/assert"
)

func fastConfig() retry.Config {
	return retry.Config{
		MaxAttempts:     3,
		InitialDelay:    time.Millisecond,
		MaxDelay:        5 * time.Millisecond,
		BackoffFactor:   2.0,
		MaxTotalTimeout: time.Second,
	}
}

func TestDo_SucceedsFirstAttempt(t *testing.T) {
	calls := 0

	err := retry.Do(context.Background(), fastConfig(), func() error {
		calls++
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_RetriesUntilSuccess(t *testing.T) {
	calls := 0

	err := retry.Do(context.Background(), fastConfig(), func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_ExhaustsAttempts(t *testing.T) {
	calls := 0
	sentinel := errors.New("permanent")

	err := retry.Do(context.Background(), fastConfig(), func() error {
		calls++
		return sentinel
	})

	assert.Error(t, err)
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 3, calls)
}

func TestDo_RespectsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := retry.Do(ctx, fastConfig(), func() error {
		return errors.New("never succeeds")
	})

	assert.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDoWithLog_LogsEachFailedAttempt(t *testing.T) {
	var attempts []int

	err := retry.DoWithLog(context.Background(), fastConfig(), "test-service",
		func() error { return errors.New("down") },
		func(attempt int, err error, nextDelay time.Duration) {
			attempts = append(attempts, attempt)
		},
	)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "test-service")
	// The final attempt returns instead of logging.
	assert.Equal(t, []int{1, 2}, attempts)
}
