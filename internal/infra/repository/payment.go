package repository

import (
	"context"

	"car-rental/internal/domain/payment"
	"car-rental/internal/infra"
	"car-rental/internal/infra/query"
	"car-rental/internal/infra/repository/converter"
	"car-rental/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PaymentWriteQueries interface {
	CreatePayment(ctx context.Context, db query.DBTX, arg query.CreatePaymentParams) (uuid.UUID, error)
	GetPaymentForUpdate(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Payment, error)
	GetPaymentRentalID(ctx context.Context, db query.DBTX, id uuid.UUID) (uuid.UUID, error)
	HasOpenPayment(ctx context.Context, db query.DBTX, rentalID uuid.UUID) (bool, error)
	UpdatePaymentStatus(ctx context.Context, db query.DBTX, arg query.UpdatePaymentStatusParams) (int64, error)
}

type PaymentRepository struct {
	queries PaymentWriteQueries
	db      query.DBTX
}

func NewPaymentRepository(queries PaymentWriteQueries, db query.DBTX) *PaymentRepository {
	return &PaymentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) (uuid.UUID, error) {
	id, err := r.queries.CreatePayment(ctx, r.db, converter.PaymentToCreateParams(p))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create payment", err)
	}
	return id, nil
}

func (r *PaymentRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
	row, err := r.queries.GetPaymentForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock payment", err)
	}

	p, err := converter.PaymentFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode payment", err)
	}
	return p, nil
}

func (r *PaymentRepository) RentalIDOf(ctx context.Context, paymentID uuid.UUID) (uuid.UUID, error) {
	rentalID, err := r.queries.GetPaymentRentalID(ctx, r.db, paymentID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to find payment rental", err)
	}
	return rentalID, nil
}

func (r *PaymentRepository) HasOpen(ctx context.Context, rentalID uuid.UUID) (bool, error) {
	exists, err := r.queries.HasOpenPayment(ctx, r.db, rentalID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check open payment", err)
	}
	return exists, nil
}

func (r *PaymentRepository) Save(ctx context.Context, p *payment.Payment) error {
	affected, err := r.queries.UpdatePaymentStatus(ctx, r.db, query.UpdatePaymentStatusParams{
		ID:            p.ID(),
		PaymentStatus: p.Status().String(),
		RefundReason:  pgconv.StringPtrToPgtype(p.RefundReason()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update payment", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
	}
	return nil
}
