package converter

import (
	"car-rental/internal/domain/payment"
	"car-rental/internal/infra/query"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/pkg/pgconv"
)

func PaymentToCreateParams(p *payment.Payment) query.CreatePaymentParams {
	return query.CreatePaymentParams{
		ID:            p.ID(),
		RentalID:      p.RentalID(),
		Amount:        pgconv.DecimalToNumeric(p.Amount()),
		PaymentMethod: p.Method().String(),
		PaymentStatus: p.Status().String(),
		TransactionID: pgconv.StringPtrToPgtype(p.TransactionID()),
		PaymentDate:   pgconv.TimeToPgtype(p.PaymentDate()),
		CreatedAt:     pgconv.TimeToPgtype(p.CreatedAt()),
	}
}

func PaymentFromRow(row query.Payment) (*payment.Payment, error) {
	amount, err := pgconv.DecimalFromNumeric(row.Amount)
	if err != nil {
		return nil, errs.Wrapf(err, "payment %s", row.ID)
	}
	status := payment.Status(row.PaymentStatus)
	if !status.IsValid() {
		return nil, errs.Newf("payment %s: unknown status %q", row.ID, row.PaymentStatus)
	}
	return payment.Reconstruct(
		row.ID, row.RentalID,
		amount,
		payment.Method(row.PaymentMethod),
		status,
		pgconv.StringPtrFromPgtype(row.TransactionID),
		pgconv.StringPtrFromPgtype(row.RefundReason),
		pgconv.TimeFromPgtype(row.PaymentDate),
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}
