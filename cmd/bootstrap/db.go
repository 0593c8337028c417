package bootstrap

import (
	"context"
	"log/slog"

	"car-rental/internal/infra/db"
	"car-rental/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(NewDB),
)

// NewDB connects before the app starts so a missing database fails startup
// instead of the first booking.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("database connected", "host", cfg.DB.Host, "max_conns", pool.Config().MaxConns)

	lc.Append(fx.StopHook(func(context.Context) {
		cleanup()
		logger.Info("database pool closed")
	}))

	return pool, nil
}
