package uow

import (
	"context"
	"math/rand/v2"
	"time"

	"car-rental/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

type retryPolicy struct {
	maxAttempts int
	base        time.Duration
}

var defaultRetryPolicy = retryPolicy{maxAttempts: 4, base: 100 * time.Millisecond}

func (p retryPolicy) allows(err error, attempt int) bool {
	return attempt < p.maxAttempts && isRetryable(err)
}

// backoff doubles per attempt and adds up to 20% jitter.
func (p retryPolicy) backoff(attempt int) time.Duration {
	wait := p.base << (attempt - 1)
	if jitter := int64(wait / 5); jitter > 0 {
		wait += time.Duration(rand.Int64N(jitter))
	}
	return wait
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errs.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgSerializationFailure || pgErr.Code == pgDeadlockDetected
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
