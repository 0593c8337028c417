package commands

import (
	"context"

	"car-rental/internal/domain/payment"
	"car-rental/internal/domain/rental"
	"car-rental/internal/infra"
	"car-rental/internal/pkg/clock"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/usecase"
	"car-rental/internal/usecase/queries"
	"car-rental/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPaymentMethod = errs.New("invalid payment method")
	ErrPaymentExists        = errs.New("payment already exists for this rental")
	ErrPaymentNotFound      = errs.New("payment not found")
	ErrAlreadyRefunded      = errs.New("payment already refunded")
	ErrPaymentNotCompleted  = errs.New("payment not completed")
)

type ProcessPaymentRequest struct {
	RentalID      uuid.UUID
	Method        string
	TransactionID *string
}

type RefundResult struct {
	PaymentID    uuid.UUID
	RefundAmount decimal.Decimal
	Reason       string
}

type PaymentCommands interface {
	ProcessPayment(ctx context.Context, req ProcessPaymentRequest, customerID uuid.UUID) (*queries.PaymentView, error)
	ProcessRefund(ctx context.Context, actor usecase.Principal, paymentID uuid.UUID, reason string) (*RefundResult, error)
}

type paymentUseCaseImpl struct {
	uow         shared.UnitOfWork
	permissions usecase.PermissionChecker
	payments    queries.PaymentQueries
	clock       clock.Clock
}

func NewPaymentUseCase(
	uow shared.UnitOfWork,
	permissions usecase.PermissionChecker,
	payments queries.PaymentQueries,
	clk clock.Clock,
) PaymentCommands {
	return &paymentUseCaseImpl{
		uow:         uow,
		permissions: permissions,
		payments:    payments,
		clock:       clk,
	}
}

func (uc *paymentUseCaseImpl) ProcessPayment(ctx context.Context, req ProcessPaymentRequest, customerID uuid.UUID) (*queries.PaymentView, error) {
	method, err := payment.NewMethod(req.Method)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPaymentMethod)
	}

	var paymentID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rent, derr := tx.Rentals().FindForUpdate(ctx, req.RentalID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrRentalNotFound
			}
			return derr
		}
		if rent.CustomerID() != customerID {
			return ErrRentalNotFound
		}
		if !rent.IsPayable() {
			return ErrInvalidRentalState
		}

		open, derr := tx.Payments().HasOpen(ctx, rent.ID())
		if derr != nil {
			return derr
		}
		if open {
			return ErrPaymentExists
		}

		now := uc.clock.Now()
		p, derr := payment.NewCompletedPayment(rent.ID(), rent.FinalAmount(), method, req.TransactionID, now)
		if derr != nil {
			return errs.Mark(derr, ErrInvalidPaymentMethod)
		}
		id, derr := tx.Payments().Create(ctx, p)
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return errs.Mark(derr, ErrPaymentExists)
			}
			return derr
		}
		paymentID = id

		if rent.Status() == rental.StatusPending {
			if derr = rent.Confirm(now); derr != nil {
				return markRentalErr(derr)
			}
			return saveRental(ctx, tx, rent)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.payments.GetPaymentSystem(ctx, paymentID)
}

func (uc *paymentUseCaseImpl) ProcessRefund(ctx context.Context, actor usecase.Principal, paymentID uuid.UUID, reason string) (*RefundResult, error) {
	var result *RefundResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rentalID, derr := tx.Payments().RentalIDOf(ctx, paymentID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrPaymentNotFound
			}
			return derr
		}

		// car, rental, payment
		c, rent, derr := lockCarAndRental(ctx, tx, rentalID)
		if derr != nil {
			return derr
		}
		if rent.CustomerID() != actor.ID && !uc.permissions.Can(actor, usecase.ManageFleet) {
			return ErrPaymentNotFound
		}

		p, derr := tx.Payments().FindForUpdate(ctx, paymentID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrPaymentNotFound
			}
			return derr
		}

		recorded, derr := p.Refund(reason)
		if derr != nil {
			switch {
			case errs.Is(derr, payment.ErrAlreadyRefunded):
				return errs.Mark(derr, ErrAlreadyRefunded)
			case errs.Is(derr, payment.ErrNotCompleted):
				return errs.Mark(derr, ErrPaymentNotCompleted)
			default:
				return derr
			}
		}
		if derr = tx.Payments().Save(ctx, p); derr != nil {
			return derr
		}

		now := uc.clock.Now()
		changed, wasActive := rent.CancelForRefund(now)
		if changed {
			if derr = saveRental(ctx, tx, rent); derr != nil {
				return derr
			}
		}
		if wasActive {
			if derr = c.Release(c.Mileage(), now); derr != nil {
				return derr
			}
			if derr = tx.Cars().Save(ctx, c); derr != nil {
				return derr
			}
		}

		result = &RefundResult{
			PaymentID:    p.ID(),
			RefundAmount: p.Amount(),
			Reason:       recorded,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
