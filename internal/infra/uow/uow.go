package uow

import (
	"context"
	"log/slog"

	"car-rental/internal/infra/query"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errBegin  = errs.New("begin transaction")
	errCommit = errs.New("commit transaction")
)

// PostgresUoW runs booking commands in ReadCommitted transactions. Races on
// the same car or discount code are serialized by row locks and by the
// rentals exclusion constraint, and lock conflicts are retried.
type PostgresUoW struct {
	pool   *pgxpool.Pool
	q      *query.Queries
	retry  retryPolicy
	logger *slog.Logger
}

func NewPostgresUoW(pool *pgxpool.Pool, q *query.Queries, logger *slog.Logger) shared.UnitOfWork {
	return &PostgresUoW{
		pool:   pool,
		q:      q,
		retry:  defaultRetryPolicy,
		logger: logger,
	}
}

func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	var err error
	for attempt := 1; ; attempt++ {
		err = u.runOnce(ctx, fn)
		if err == nil || !u.retry.allows(err, attempt) {
			break
		}

		wait := u.retry.backoff(attempt)
		u.logger.Warn("retrying transaction",
			"attempt", attempt,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())

		if sleepErr := sleepCtx(ctx, wait); sleepErr != nil {
			return sleepErr
		}
	}

	if err != nil && isRetryable(err) {
		u.logger.Error("transaction gave up", "attempts", u.retry.maxAttempts, "error", err.Error())
	}
	return err
}

func (u *PostgresUoW) runOnce(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Mark(err, errBegin)
	}

	if err := fn(ctx, newTx(u.q, pgxTx)); err != nil {
		u.rollback(ctx, pgxTx)
		return err
	}

	if err := pgxTx.Commit(ctx); err != nil {
		u.rollback(ctx, pgxTx)
		return errs.Mark(err, errCommit)
	}
	return nil
}

func (u *PostgresUoW) rollback(ctx context.Context, tx pgx.Tx) {
	// the caller's ctx may already be cancelled
	if err := tx.Rollback(context.WithoutCancel(ctx)); err != nil && !errs.Is(err, pgx.ErrTxClosed) {
		u.logger.Warn("rollback failed", "error", err.Error())
	}
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return newReads(u.q, u.pool)
}
