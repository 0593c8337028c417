//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"car-rental/internal/domain/car"
	"car-rental/internal/domain/customer"
	"car-rental/internal/domain/discount"
	"car-rental/internal/domain/rental"
	"car-rental/internal/pkg/clock"
	"car-rental/internal/pkg/config"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/pkg/ptr"
	"car-rental/internal/usecase"
	"car-rental/internal/usecase/commands"
	"car-rental/internal/usecase/queries"
	"car-rental/internal/usecase/shared"
	"car-rental/tests/common/builder"
	queriesmock "car-rental/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	testNow  = time.Date(2030, 6, 1, 9, 0, 0, 0, time.UTC)
	dailyFee = decimal.NewFromInt(35)
)

func day(d int) time.Time {
	return time.Date(2030, 6, d, 0, 0, 0, 0, time.UTC)
}

type rentalFixture struct {
	uow      *memUoW
	cmds     commands.RentalCommands
	car      *car.Car
	customer uuid.UUID
	owner    usecase.Principal
}

func newRentalFixture(t *testing.T, cfg config.RentalConfig) *rentalFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	uow := newMemUoW()

	views := queriesmock.NewMockRentalQueries(ctrl)
	views.EXPECT().GetRentalSystem(gomock.Any(), gomock.Any()).AnyTimes().
		DoAndReturn(func(_ context.Context, id uuid.UUID) (*queries.RentalView, error) {
			r := uow.rentalOf(id)
			return &queries.RentalView{
				ID:             id,
				CarID:          r.CarID(),
				TotalDays:      r.TotalDays(),
				TotalAmount:    r.TotalAmount(),
				DiscountAmount: r.DiscountAmount(),
				FinalAmount:    r.FinalAmount(),
				Status:         r.Status().String(),
				StartMileage:   r.StartMileage(),
				EndMileage:     r.EndMileage(),
			}, nil
		})

	c := builder.NewCarBuilder().BuildDomain()
	uow.addCar(c, dailyFee)

	clk := clock.NewMockClock(testNow)
	cmds := commands.NewRentalUseCase(
		uow,
		shared.NewAvailabilityChecker(cfg),
		shared.NewDiscountValidator(clk, time.UTC),
		usecase.NewPermissionChecker(),
		views,
		clk,
		time.UTC,
	)
	return &rentalFixture{
		uow:      uow,
		cmds:     cmds,
		car:      c,
		customer: uuid.New(),
		owner:    usecase.Principal{ID: uuid.New(), Role: customer.RoleOwner},
	}
}

func (f *rentalFixture) stored(status rental.Status, start, end time.Time) *rental.Rental {
	b := builder.NewRentalBuilder().WithDates(start, end).WithStatus(status)
	b.CarID = f.car.ID()
	b.CustomerID = f.customer
	if status == rental.StatusActive {
		b.WithStartMileage(f.car.Mileage())
	}
	r := b.BuildStored()
	f.uow.addRental(r)
	return r
}

func TestCreateRental(t *testing.T) {
	ctx := context.Background()
	blockPending := config.RentalConfig{BlockPending: true}

	t.Run("prices and stores a pending rental", func(t *testing.T) {
		f := newRentalFixture(t, blockPending)

		view, err := f.cmds.CreateRental(ctx, commands.CreateRentalRequest{
			CarID: f.car.ID(), StartDate: day(2), EndDate: day(4),
		}, f.customer)
		require.NoError(t, err)

		assert.Equal(t, "pending", view.Status)
		assert.Equal(t, 2, view.TotalDays)
		assert.True(t, decimal.NewFromInt(70).Equal(view.FinalAmount))
		stored := f.uow.rentalOf(view.ID)
		assert.Equal(t, f.customer, stored.CustomerID())
		assert.Equal(t, f.car.BranchID(), stored.BranchID())
	})

	t.Run("applies and redeems a discount code", func(t *testing.T) {
		f := newRentalFixture(t, blockPending)
		code := builder.NewDiscountBuilder().WithUsage(5, 0).BuildDomain()
		f.uow.addCode(code)

		view, err := f.cmds.CreateRental(ctx, commands.CreateRentalRequest{
			CarID: f.car.ID(), StartDate: day(2), EndDate: day(4), DiscountCode: ptr.Of(" summer10 "),
		}, f.customer)
		require.NoError(t, err)

		assert.True(t, decimal.NewFromInt(7).Equal(view.DiscountAmount), view.DiscountAmount.String())
		assert.True(t, decimal.NewFromInt(63).Equal(view.FinalAmount), view.FinalAmount.String())
		redeemed := f.uow.codes["SUMMER10"]
		assert.Equal(t, 1, redeemed.TimesUsed())
		assert.Equal(t, code.ID(), *f.uow.rentalOf(view.ID).DiscountCodeID())
	})

	t.Run("blank discount code is ignored", func(t *testing.T) {
		f := newRentalFixture(t, blockPending)

		view, err := f.cmds.CreateRental(ctx, commands.CreateRentalRequest{
			CarID: f.car.ID(), StartDate: day(2), EndDate: day(4), DiscountCode: ptr.Of("  "),
		}, f.customer)
		require.NoError(t, err)
		assert.True(t, view.DiscountAmount.IsZero())
	})

	t.Run("back-to-back bookings are allowed", func(t *testing.T) {
		f := newRentalFixture(t, blockPending)
		f.stored(rental.StatusConfirmed, day(4), day(6))
		f.stored(rental.StatusConfirmed, day(1), day(2))

		_, err := f.cmds.CreateRental(ctx, commands.CreateRentalRequest{
			CarID: f.car.ID(), StartDate: day(2), EndDate: day(4),
		}, f.customer)
		assert.NoError(t, err)
	})

	t.Run("pending rentals block only when configured", func(t *testing.T) {
		blocking := newRentalFixture(t, blockPending)
		blocking.stored(rental.StatusPending, day(3), day(5))
		_, err := blocking.cmds.CreateRental(ctx, commands.CreateRentalRequest{
			CarID: blocking.car.ID(), StartDate: day(2), EndDate: day(4),
		}, blocking.customer)
		assert.True(t, errs.Is(err, commands.ErrCarUnavailable))

		lenient := newRentalFixture(t, config.RentalConfig{BlockPending: false})
		lenient.stored(rental.StatusPending, day(3), day(5))
		_, err = lenient.cmds.CreateRental(ctx, commands.CreateRentalRequest{
			CarID: lenient.car.ID(), StartDate: day(2), EndDate: day(4),
		}, lenient.customer)
		assert.NoError(t, err)
	})

	t.Run("cancelled and completed rentals never block", func(t *testing.T) {
		f := newRentalFixture(t, blockPending)
		f.stored(rental.StatusCancelled, day(2), day(4))
		f.stored(rental.StatusCompleted, day(2), day(4))

		_, err := f.cmds.CreateRental(ctx, commands.CreateRentalRequest{
			CarID: f.car.ID(), StartDate: day(2), EndDate: day(4),
		}, f.customer)
		assert.NoError(t, err)
	})

	t.Run("failed booking does not consume the code", func(t *testing.T) {
		f := newRentalFixture(t, blockPending)
		f.uow.addCode(builder.NewDiscountBuilder().BuildDomain())
		f.stored(rental.StatusActive, day(1), day(3))

		_, err := f.cmds.CreateRental(ctx, commands.CreateRentalRequest{
			CarID: f.car.ID(), StartDate: day(2), EndDate: day(4), DiscountCode: ptr.Of("SUMMER10"),
		}, f.customer)
		require.True(t, errs.Is(err, commands.ErrCarUnavailable))
		unused := f.uow.codes["SUMMER10"]
		assert.Zero(t, unused.TimesUsed())
	})

	t.Run("errors", func(t *testing.T) {
		tests := []struct {
			name      string
			setup     func(f *rentalFixture) commands.CreateRentalRequest
			wantMark  error
			wantCause error
		}{
			{
				name: "unknown car",
				setup: func(f *rentalFixture) commands.CreateRentalRequest {
					return commands.CreateRentalRequest{CarID: uuid.New(), StartDate: day(2), EndDate: day(4)}
				},
				wantMark: commands.ErrCarNotFound,
			},
			{
				name: "car in maintenance",
				setup: func(f *rentalFixture) commands.CreateRentalRequest {
					c := builder.NewCarBuilder().WithStatus(car.StatusMaintenance).BuildDomain()
					f.uow.addCar(c, dailyFee)
					return commands.CreateRentalRequest{CarID: c.ID(), StartDate: day(2), EndDate: day(4)}
				},
				wantMark:  commands.ErrCarUnavailable,
				wantCause: car.ErrCarNotRentable,
			},
			{
				name: "start in the past",
				setup: func(f *rentalFixture) commands.CreateRentalRequest {
					return commands.CreateRentalRequest{CarID: f.car.ID(), StartDate: time.Date(2030, 5, 31, 0, 0, 0, 0, time.UTC), EndDate: day(2)}
				},
				wantMark:  commands.ErrInvalidDates,
				wantCause: rental.ErrStartDateInPast,
			},
			{
				name: "end not after start",
				setup: func(f *rentalFixture) commands.CreateRentalRequest {
					return commands.CreateRentalRequest{CarID: f.car.ID(), StartDate: day(4), EndDate: day(4)}
				},
				wantMark:  commands.ErrInvalidDates,
				wantCause: rental.ErrEndDateNotAfterStart,
			},
			{
				name: "unknown discount code",
				setup: func(f *rentalFixture) commands.CreateRentalRequest {
					return commands.CreateRentalRequest{CarID: f.car.ID(), StartDate: day(2), EndDate: day(4), DiscountCode: ptr.Of("NOPE")}
				},
				wantMark:  commands.ErrInvalidDiscount,
				wantCause: discount.ErrNotFound,
			},
			{
				name: "exhausted discount code",
				setup: func(f *rentalFixture) commands.CreateRentalRequest {
					f.uow.addCode(builder.NewDiscountBuilder().WithUsage(3, 3).BuildDomain())
					return commands.CreateRentalRequest{CarID: f.car.ID(), StartDate: day(2), EndDate: day(4), DiscountCode: ptr.Of("SUMMER10")}
				},
				wantMark:  commands.ErrInvalidDiscount,
				wantCause: discount.ErrUsageExceeded,
			},
			{
				name: "rental shorter than the code minimum",
				setup: func(f *rentalFixture) commands.CreateRentalRequest {
					f.uow.addCode(builder.NewDiscountBuilder().WithMinRentalDays(3).BuildDomain())
					return commands.CreateRentalRequest{CarID: f.car.ID(), StartDate: day(2), EndDate: day(4), DiscountCode: ptr.Of("SUMMER10")}
				},
				wantMark:  commands.ErrInvalidDiscount,
				wantCause: discount.ErrBelowMinimumDays,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newRentalFixture(t, blockPending)
				before := len(f.uow.rentals)

				view, err := f.cmds.CreateRental(ctx, tt.setup(f), f.customer)

				assert.Nil(t, view)
				assert.True(t, errs.Is(err, tt.wantMark), "want %v, got %v", tt.wantMark, err)
				if tt.wantCause != nil {
					assert.True(t, errs.Is(err, tt.wantCause), "want cause %v, got %v", tt.wantCause, err)
				}
				assert.Len(t, f.uow.rentals, before)
			})
		}
	})
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("activation records mileage and hands the car over", func(t *testing.T) {
		f := newRentalFixture(t, config.RentalConfig{BlockPending: true})
		r := f.stored(rental.StatusConfirmed, day(2), day(4))

		view, err := f.cmds.UpdateStatus(ctx, f.owner, r.ID(), "active")
		require.NoError(t, err)

		assert.Equal(t, "active", view.Status)
		require.NotNil(t, view.StartMileage)
		assert.Equal(t, 12000, *view.StartMileage)
		assert.Equal(t, car.StatusRented, f.uow.carOf(f.car.ID()).Status())
	})

	t.Run("confirm and cancel follow the graph", func(t *testing.T) {
		f := newRentalFixture(t, config.RentalConfig{BlockPending: true})
		r := f.stored(rental.StatusPending, day(2), day(4))

		view, err := f.cmds.UpdateStatus(ctx, f.owner, r.ID(), "confirmed")
		require.NoError(t, err)
		assert.Equal(t, "confirmed", view.Status)

		view, err = f.cmds.UpdateStatus(ctx, f.owner, r.ID(), "cancelled")
		require.NoError(t, err)
		assert.Equal(t, "cancelled", view.Status)
		assert.Equal(t, car.StatusAvailable, f.uow.carOf(f.car.ID()).Status())
	})

	t.Run("completing through status releases the car", func(t *testing.T) {
		f := newRentalFixture(t, config.RentalConfig{BlockPending: true})
		r := f.stored(rental.StatusConfirmed, day(2), day(4))

		_, err := f.cmds.UpdateStatus(ctx, f.owner, r.ID(), "active")
		require.NoError(t, err)
		view, err := f.cmds.UpdateStatus(ctx, f.owner, r.ID(), "completed")
		require.NoError(t, err)

		assert.Equal(t, "completed", view.Status)
		require.NotNil(t, view.EndMileage)
		assert.Equal(t, 12000, *view.EndMileage)
		assert.Equal(t, car.StatusAvailable, f.uow.carOf(f.car.ID()).Status())

		next, err := f.cmds.CreateRental(ctx, commands.CreateRentalRequest{
			CarID: f.car.ID(), StartDate: day(6), EndDate: day(8),
		}, f.customer)
		require.NoError(t, err)
		assert.Equal(t, "pending", next.Status)
	})

	t.Run("errors", func(t *testing.T) {
		tests := []struct {
			name     string
			from     rental.Status
			to       string
			actor    func(f *rentalFixture) usecase.Principal
			rentalID func(r *rental.Rental) uuid.UUID
			wantMark error
		}{
			{name: "skipped step", from: rental.StatusPending, to: "completed", wantMark: commands.ErrInvalidTransition},
			{name: "terminal status", from: rental.StatusCancelled, to: "pending", wantMark: commands.ErrInvalidTransition},
			{name: "unknown status", from: rental.StatusPending, to: "lost", wantMark: commands.ErrInvalidStatus},
			{name: "unknown rental", from: rental.StatusPending, to: "confirmed", rentalID: func(*rental.Rental) uuid.UUID { return uuid.New() }, wantMark: commands.ErrRentalNotFound},
			{
				name: "anonymous principal",
				from: rental.StatusPending, to: "confirmed",
				actor:    func(*rentalFixture) usecase.Principal { return usecase.Principal{} },
				wantMark: errs.ErrForbidden,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newRentalFixture(t, config.RentalConfig{BlockPending: true})
				r := f.stored(tt.from, day(2), day(4))
				actor := f.owner
				if tt.actor != nil {
					actor = tt.actor(f)
				}
				id := r.ID()
				if tt.rentalID != nil {
					id = tt.rentalID(r)
				}

				view, err := f.cmds.UpdateStatus(ctx, actor, id, tt.to)

				assert.Nil(t, view)
				assert.True(t, errs.Is(err, tt.wantMark), "want %v, got %v", tt.wantMark, err)
				assert.Equal(t, tt.from, f.uow.rentalOf(r.ID()).Status())
			})
		}
	})

	t.Run("rejected transition keeps both statuses in the error", func(t *testing.T) {
		f := newRentalFixture(t, config.RentalConfig{BlockPending: true})
		r := f.stored(rental.StatusPending, day(2), day(4))

		_, err := f.cmds.UpdateStatus(ctx, f.owner, r.ID(), "completed")

		var te *rental.TransitionError
		require.ErrorAs(t, err, &te)
		assert.Equal(t, rental.StatusPending, te.From)
		assert.Equal(t, rental.StatusCompleted, te.To)
	})
}

func TestReturnCar(t *testing.T) {
	ctx := context.Background()

	t.Run("completes the rental and releases the car", func(t *testing.T) {
		f := newRentalFixture(t, config.RentalConfig{BlockPending: true})
		r := f.stored(rental.StatusConfirmed, day(2), day(4))
		_, err := f.cmds.UpdateStatus(ctx, f.owner, r.ID(), "active")
		require.NoError(t, err)

		view, err := f.cmds.ReturnCar(ctx, f.owner, r.ID(), 12450)
		require.NoError(t, err)

		assert.Equal(t, "completed", view.Status)
		assert.Equal(t, 12450, *view.EndMileage)
		returned := f.uow.carOf(f.car.ID())
		assert.Equal(t, car.StatusAvailable, returned.Status())
		assert.Equal(t, 12450, returned.Mileage())
	})

	t.Run("same mileage is accepted", func(t *testing.T) {
		f := newRentalFixture(t, config.RentalConfig{BlockPending: true})
		r := f.stored(rental.StatusActive, day(2), day(4))

		view, err := f.cmds.ReturnCar(ctx, f.owner, r.ID(), 12000)
		require.NoError(t, err)
		assert.Equal(t, 12000, *view.EndMileage)
	})

	t.Run("errors leave rental and car untouched", func(t *testing.T) {
		tests := []struct {
			name     string
			status   rental.Status
			mileage  int
			wantMark error
		}{
			{name: "mileage below start", status: rental.StatusActive, mileage: 11999, wantMark: commands.ErrInvalidMileage},
			{name: "negative mileage", status: rental.StatusActive, mileage: -1, wantMark: commands.ErrInvalidMileage},
			{name: "not active", status: rental.StatusConfirmed, mileage: 12450, wantMark: commands.ErrInvalidRentalState},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newRentalFixture(t, config.RentalConfig{BlockPending: true})
				r := f.stored(tt.status, day(2), day(4))

				view, err := f.cmds.ReturnCar(ctx, f.owner, r.ID(), tt.mileage)

				assert.Nil(t, view)
				assert.True(t, errs.Is(err, tt.wantMark), "want %v, got %v", tt.wantMark, err)
				assert.Equal(t, tt.status, f.uow.rentalOf(r.ID()).Status())
				assert.Equal(t, 12000, f.uow.carOf(f.car.ID()).Mileage())
			})
		}
	})
}
