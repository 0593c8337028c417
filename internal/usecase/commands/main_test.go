//go:build unit

package commands_test

import (
	"context"
	"maps"
	"slices"

	"car-rental/internal/domain/car"
	"car-rental/internal/domain/discount"
	"car-rental/internal/domain/payment"
	"car-rental/internal/domain/rental"
	"car-rental/internal/infra"
	"car-rental/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// memUoW is an in-memory unit of work. Entities are stored by value so a
// command only changes state through Save, and a failed Within rolls back.
type memUoW struct {
	cars     map[uuid.UUID]car.Car
	rates    map[uuid.UUID]decimal.Decimal
	rentals  map[uuid.UUID]rental.Rental
	codes    map[string]discount.Code
	payments map[uuid.UUID]payment.Payment
	logins   []uuid.UUID
}

func newMemUoW() *memUoW {
	return &memUoW{
		cars:     map[uuid.UUID]car.Car{},
		rates:    map[uuid.UUID]decimal.Decimal{},
		rentals:  map[uuid.UUID]rental.Rental{},
		codes:    map[string]discount.Code{},
		payments: map[uuid.UUID]payment.Payment{},
	}
}

func (u *memUoW) addCar(c *car.Car, rate decimal.Decimal) {
	u.cars[c.ID()] = *c
	u.rates[c.ID()] = rate
}

func (u *memUoW) addRental(r *rental.Rental) { u.rentals[r.ID()] = *r }

func (u *memUoW) addCode(c *discount.Code) { u.codes[c.Code()] = *c }

func (u *memUoW) addPayment(p *payment.Payment) { u.payments[p.ID()] = *p }

func (u *memUoW) carOf(id uuid.UUID) *car.Car {
	c := u.cars[id]
	return &c
}

func (u *memUoW) rentalOf(id uuid.UUID) *rental.Rental {
	r := u.rentals[id]
	return &r
}

func (u *memUoW) paymentOf(id uuid.UUID) *payment.Payment {
	p := u.payments[id]
	return &p
}

func (u *memUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	snapshot := u.clone()
	if err := fn(ctx, &memTx{u: u}); err != nil {
		*u = *snapshot
		return err
	}
	return nil
}

func (u *memUoW) CommandReads() shared.CommandReads { return memReads{u: u} }

func (u *memUoW) clone() *memUoW {
	return &memUoW{
		cars:     maps.Clone(u.cars),
		rates:    maps.Clone(u.rates),
		rentals:  maps.Clone(u.rentals),
		codes:    maps.Clone(u.codes),
		payments: maps.Clone(u.payments),
		logins:   slices.Clone(u.logins),
	}
}

func notFound(what string) error {
	return infra.WrapRepoErr(what+" not found", nil, infra.KindNotFound)
}

type memTx struct{ u *memUoW }

func (t *memTx) Rentals() shared.RentalRepository     { return memRentals{t.u} }
func (t *memTx) Cars() shared.CarRepository           { return memCars{t.u} }
func (t *memTx) Discounts() shared.DiscountRepository { return memDiscounts{t.u} }
func (t *memTx) Payments() shared.PaymentRepository   { return memPayments{t.u} }
func (t *memTx) Customers() shared.CustomerRepository { return memCustomers{t.u} }
func (t *memTx) Reads() shared.CommandReads           { return memReads{t.u} }

type memReads struct{ u *memUoW }

func (r memReads) HasOverlap(ctx context.Context, carID uuid.UUID, period rental.DateRange, statuses []rental.Status) (bool, error) {
	return memRentals(r).HasOverlap(ctx, carID, period, statuses)
}

func (r memReads) DiscountByCode(_ context.Context, code string) (*discount.Code, error) {
	dc, ok := r.u.codes[code]
	if !ok {
		return nil, notFound("discount code")
	}
	return &dc, nil
}

type memRentals struct{ u *memUoW }

func (r memRentals) HasOverlap(_ context.Context, carID uuid.UUID, period rental.DateRange, statuses []rental.Status) (bool, error) {
	for _, rent := range r.u.rentals {
		if rent.CarID() == carID && slices.Contains(statuses, rent.Status()) && rent.Period().Overlaps(period) {
			return true, nil
		}
	}
	return false, nil
}

func (r memRentals) Create(_ context.Context, rent *rental.Rental) (uuid.UUID, error) {
	r.u.rentals[rent.ID()] = *rent
	return rent.ID(), nil
}

func (r memRentals) FindForUpdate(_ context.Context, id uuid.UUID) (*rental.Rental, error) {
	rent, ok := r.u.rentals[id]
	if !ok {
		return nil, notFound("rental")
	}
	return &rent, nil
}

func (r memRentals) CarIDOf(_ context.Context, rentalID uuid.UUID) (uuid.UUID, error) {
	rent, ok := r.u.rentals[rentalID]
	if !ok {
		return uuid.Nil, notFound("rental")
	}
	return rent.CarID(), nil
}

func (r memRentals) Save(_ context.Context, rent *rental.Rental) error {
	if _, ok := r.u.rentals[rent.ID()]; !ok {
		return notFound("rental")
	}
	r.u.rentals[rent.ID()] = *rent
	return nil
}

func (r memRentals) CountForCar(_ context.Context, carID uuid.UUID, statuses []rental.Status) (int64, error) {
	var n int64
	for _, rent := range r.u.rentals {
		if rent.CarID() == carID && slices.Contains(statuses, rent.Status()) {
			n++
		}
	}
	return n, nil
}

func (r memRentals) DeleteForCar(_ context.Context, carID uuid.UUID, statuses []rental.Status) (int64, error) {
	var n int64
	for id, rent := range r.u.rentals {
		if rent.CarID() == carID && slices.Contains(statuses, rent.Status()) {
			delete(r.u.rentals, id)
			n++
		}
	}
	return n, nil
}

type memCars struct{ u *memUoW }

func (r memCars) FindForUpdate(_ context.Context, id uuid.UUID) (*car.Car, decimal.Decimal, error) {
	c, ok := r.u.cars[id]
	if !ok {
		return nil, decimal.Zero, notFound("car")
	}
	return &c, r.u.rates[id], nil
}

func (r memCars) Save(_ context.Context, c *car.Car) error {
	for id, other := range r.u.cars {
		if id != c.ID() && other.LicensePlate() == c.LicensePlate() {
			return infra.WrapRepoErr("duplicate plate", nil, infra.KindDuplicateKey)
		}
	}
	r.u.cars[c.ID()] = *c
	return nil
}

func (r memCars) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.u.cars[id]; !ok {
		return notFound("car")
	}
	for _, rent := range r.u.rentals {
		if rent.CarID() == id {
			return infra.WrapRepoErr("car is referenced", nil, infra.KindForeignKeyViolated)
		}
	}
	delete(r.u.cars, id)
	return nil
}

type memDiscounts struct{ u *memUoW }

func (r memDiscounts) FindByCodeForUpdate(ctx context.Context, code string) (*discount.Code, error) {
	return memReads(r).DiscountByCode(ctx, code)
}

func (r memDiscounts) IncrementUsage(_ context.Context, id uuid.UUID) (bool, error) {
	for key, dc := range r.u.codes {
		if dc.ID() != id {
			continue
		}
		if limit := dc.UsageLimit(); limit != nil && dc.TimesUsed() >= *limit {
			return false, nil
		}
		r.u.codes[key] = *discount.Reconstruct(
			dc.ID(), dc.Code(), dc.Type(), dc.Value(), dc.MinRentalDays(), dc.MaxDiscountAmount(),
			dc.ValidFrom(), dc.ValidUntil(), dc.UsageLimit(), dc.TimesUsed()+1, dc.IsActive(),
		)
		return true, nil
	}
	return false, notFound("discount code")
}

type memPayments struct{ u *memUoW }

func (r memPayments) Create(_ context.Context, p *payment.Payment) (uuid.UUID, error) {
	r.u.payments[p.ID()] = *p
	return p.ID(), nil
}

func (r memPayments) FindForUpdate(_ context.Context, id uuid.UUID) (*payment.Payment, error) {
	p, ok := r.u.payments[id]
	if !ok {
		return nil, notFound("payment")
	}
	return &p, nil
}

func (r memPayments) RentalIDOf(_ context.Context, paymentID uuid.UUID) (uuid.UUID, error) {
	p, ok := r.u.payments[paymentID]
	if !ok {
		return uuid.Nil, notFound("payment")
	}
	return p.RentalID(), nil
}

func (r memPayments) HasOpen(_ context.Context, rentalID uuid.UUID) (bool, error) {
	for _, p := range r.u.payments {
		if p.RentalID() == rentalID && p.Status().Open() {
			return true, nil
		}
	}
	return false, nil
}

func (r memPayments) Save(_ context.Context, p *payment.Payment) error {
	if _, ok := r.u.payments[p.ID()]; !ok {
		return notFound("payment")
	}
	r.u.payments[p.ID()] = *p
	return nil
}

type memCustomers struct{ u *memUoW }

func (r memCustomers) UpdateLastLogin(_ context.Context, customerID uuid.UUID) error {
	r.u.logins = append(r.u.logins, customerID)
	return nil
}
