//go:build unit

package uow

import (
	"context"
	"testing"
	"time"

	"car-rental/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestRetryPolicy(t *testing.T) {
	p := retryPolicy{maxAttempts: 3, base: 100 * time.Millisecond}
	deadlock := errs.Wrap(&pgconn.PgError{Code: pgDeadlockDetected}, "save rental")
	serialization := &pgconn.PgError{Code: pgSerializationFailure}
	exclusion := &pgconn.PgError{Code: "23P01"}

	t.Run("retries lock conflicts until the last attempt", func(t *testing.T) {
		assert.True(t, p.allows(deadlock, 1))
		assert.True(t, p.allows(serialization, 2))
		assert.False(t, p.allows(serialization, 3))
	})

	t.Run("never retries other failures", func(t *testing.T) {
		assert.False(t, p.allows(exclusion, 1))
		assert.False(t, p.allows(errs.New("car not found"), 1))
		assert.False(t, p.allows(context.Canceled, 1))
	})

	t.Run("backoff doubles with bounded jitter", func(t *testing.T) {
		for attempt, floor := range map[int]time.Duration{1: 100 * time.Millisecond, 2: 200 * time.Millisecond, 3: 400 * time.Millisecond} {
			got := p.backoff(attempt)
			assert.GreaterOrEqual(t, got, floor)
			assert.Less(t, got, floor+floor/5)
		}
	})
}

func TestSleepCtx(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, sleepCtx(ctx, time.Hour), context.Canceled)
	assert.NoError(t, sleepCtx(context.Background(), time.Millisecond))
}
