package components

import (
	"car-rental/internal/infra/query"
	"car-rental/internal/infra/readstore"
	"car-rental/internal/infra/uow"
	"car-rental/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewSQLQueries,
		NewDBTX,
		uow.NewPostgresUoW,
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewRentalReadStore,
			fx.As(new(queries.RentalReadStore)),
		),
		fx.Annotate(
			readstore.NewPaymentReadStore,
			fx.As(new(queries.PaymentReadStore)),
		),
		fx.Annotate(
			readstore.NewCarReadStore,
			fx.As(new(queries.CarReadStore)),
		),
		fx.Annotate(
			readstore.NewCustomerReadStore,
			fx.As(new(queries.CustomerReadStore)),
		),
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.RentalViewQueries)),
			fx.As(new(readstore.PaymentViewQueries)),
			fx.As(new(readstore.CarViewQueries)),
			fx.As(new(readstore.CustomerReadQueries)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *query.Queries {
	return query.New()
}

func NewDBTX(pool *pgxpool.Pool) query.DBTX {
	return pool
}
