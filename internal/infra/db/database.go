package db

import (
	"context"
	"log/slog"
	"time"

	"car-rental/internal/pkg/config"
	"car-rental/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

const connectAttempts = 5

// Connect opens a pool and pings it, backing off between attempts while the
// database comes up.
func Connect(cfg config.DBConfig) (*pgxpool.Pool, func(), error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.BuildDSN())
	if err != nil {
		return nil, nil, errs.Wrap(err, "parse database config")
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	poolCfg.MaxConnLifetime = time.Hour

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	for attempt := 0; attempt < connectAttempts; attempt++ {
		var pool *pgxpool.Pool
		pool, err = pgxpool.NewWithConfig(ctx, poolCfg)
		if err == nil {
			if pingErr := pool.Ping(ctx); pingErr == nil {
				cleanup := func() {
					pool.Close()
				}
				return pool, cleanup, nil
			} else {
				pool.Close()
				err = errs.Wrap(pingErr, "ping")
			}
		}

		backoff := time.Duration(1<<attempt) * 500 * time.Millisecond
		slog.Warn("database connection failed, retrying",
			"attempt", attempt+1,
			"next_retry_in", backoff.String(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return nil, nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, nil, errs.Wrapf(err, "connect after %d attempts", connectAttempts)
}
