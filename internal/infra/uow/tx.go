package uow

import (
	"context"

	"car-rental/internal/domain/discount"
	"car-rental/internal/domain/rental"
	"car-rental/internal/infra/query"
	"car-rental/internal/infra/readstore"
	"car-rental/internal/infra/repository"
	"car-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

// pgTx hands out repositories bound to one pgx transaction.
type pgTx struct {
	q    *query.Queries
	dbtx query.DBTX
}

func newTx(q *query.Queries, dbtx query.DBTX) *pgTx {
	return &pgTx{q: q, dbtx: dbtx}
}

func (t *pgTx) Rentals() shared.RentalRepository {
	return repository.NewRentalRepository(t.q, t.dbtx)
}

func (t *pgTx) Cars() shared.CarRepository {
	return repository.NewCarRepository(t.q, t.dbtx)
}

func (t *pgTx) Discounts() shared.DiscountRepository {
	return repository.NewDiscountRepository(t.q, t.dbtx)
}

func (t *pgTx) Payments() shared.PaymentRepository {
	return repository.NewPaymentRepository(t.q, t.dbtx)
}

func (t *pgTx) Customers() shared.CustomerRepository {
	return repository.NewCustomerRepository(t.q, t.dbtx)
}

func (t *pgTx) Reads() shared.CommandReads {
	return newReads(t.q, t.dbtx)
}

// reads answers availability and discount lookups on either the pool or a tx.
type reads struct {
	overlaps  *repository.OverlapReader
	discounts *readstore.DiscountReadStore
}

func newReads(q *query.Queries, dbtx query.DBTX) *reads {
	return &reads{
		overlaps:  repository.NewOverlapReader(q, dbtx),
		discounts: readstore.NewDiscountReadStore(q, dbtx),
	}
}

func (r *reads) HasOverlap(ctx context.Context, carID uuid.UUID, period rental.DateRange, statuses []rental.Status) (bool, error) {
	return r.overlaps.HasOverlap(ctx, carID, period, statuses)
}

func (r *reads) DiscountByCode(ctx context.Context, code string) (*discount.Code, error) {
	return r.discounts.FindByCode(ctx, code)
}
