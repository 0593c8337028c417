//go:build unit

package commands_test

import (
	"context"
	"testing"

	"car-rental/internal/domain/car"
	"car-rental/internal/domain/rental"
	"car-rental/internal/pkg/clock"
	"car-rental/internal/pkg/config"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/pkg/ptr"
	"car-rental/internal/usecase"
	"car-rental/internal/usecase/commands"
	"car-rental/internal/usecase/queries"
	"car-rental/tests/common/builder"
	queriesmock "car-rental/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newCarCommands(t *testing.T, f *rentalFixture) commands.CarCommands {
	t.Helper()
	views := queriesmock.NewMockCarQueries(gomock.NewController(t))
	views.EXPECT().GetCar(gomock.Any(), gomock.Any()).AnyTimes().
		DoAndReturn(func(_ context.Context, id uuid.UUID) (*queries.CarView, error) {
			c := f.uow.carOf(id)
			return &queries.CarView{
				ID:           id,
				Brand:        c.Brand(),
				Model:        c.Model(),
				Year:         c.Year(),
				Color:        c.Color(),
				LicensePlate: c.LicensePlate(),
				Status:       c.Status().String(),
				Mileage:      c.Mileage(),
			}, nil
		})
	return commands.NewCarUseCase(f.uow, usecase.NewPermissionChecker(), views, clock.NewMockClock(testNow))
}

func TestUpdateCarStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("pending rentals do not hold back maintenance", func(t *testing.T) {
		f := newRentalFixture(t, config.RentalConfig{BlockPending: true})
		f.stored(rental.StatusPending, day(2), day(4))
		cars := newCarCommands(t, f)

		view, err := cars.UpdateCarStatus(ctx, f.owner, f.car.ID(), "maintenance")
		require.NoError(t, err)
		assert.Equal(t, "maintenance", view.Status)
		assert.Equal(t, car.StatusMaintenance, f.uow.carOf(f.car.ID()).Status())
	})

	t.Run("errors", func(t *testing.T) {
		tests := []struct {
			name      string
			setup     func(f *rentalFixture)
			to        string
			wantMark  error
			wantCause error
		}{
			{
				name:      "committed rentals block withdrawal",
				setup:     func(f *rentalFixture) { f.stored(rental.StatusConfirmed, day(2), day(4)) },
				to:        "unavailable",
				wantMark:  commands.ErrCarHasCommittedRentals,
				wantCause: car.ErrHasCommittedRentals,
			},
			{
				name: "rented car is locked",
				setup: func(f *rentalFixture) {
					f.uow.addCar(builder.NewCarBuilder().WithStatus(car.StatusRented).BuildDomain(), dailyFee)
				},
				to:       "available",
				wantMark: commands.ErrCarInUse,
			},
			{
				name:      "rented is not selectable",
				to:        "rented",
				wantMark:  commands.ErrInvalidCarStatus,
				wantCause: car.ErrStatusNotSelectable,
			},
			{
				name:     "unknown status",
				to:       "scrapped",
				wantMark: commands.ErrInvalidCarStatus,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newRentalFixture(t, config.RentalConfig{BlockPending: true})
				if tt.setup != nil {
					tt.setup(f)
				}
				cars := newCarCommands(t, f)
				target := f.car.ID()
				for id, c := range f.uow.cars {
					if c.Status() == car.StatusRented {
						target = id
					}
				}
				before := f.uow.carOf(target).Status()

				view, err := cars.UpdateCarStatus(ctx, f.owner, target, tt.to)

				assert.Nil(t, view)
				assert.True(t, errs.Is(err, tt.wantMark), "want %v, got %v", tt.wantMark, err)
				if tt.wantCause != nil {
					assert.True(t, errs.Is(err, tt.wantCause), "want cause %v, got %v", tt.wantCause, err)
				}
				assert.Equal(t, before, f.uow.carOf(target).Status())
			})
		}
	})
}

func TestUpdateCar(t *testing.T) {
	ctx := context.Background()

	t.Run("applies the patch", func(t *testing.T) {
		f := newRentalFixture(t, config.RentalConfig{BlockPending: true})
		cars := newCarCommands(t, f)

		view, err := cars.UpdateCar(ctx, f.owner, f.car.ID(), car.Patch{
			Color:        ptr.Of(" Blue "),
			LicensePlate: ptr.Of("xyz-9999"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Blue", *view.Color)
		assert.Equal(t, "XYZ-9999", view.LicensePlate)
		assert.Equal(t, "Toyota", view.Brand)
	})

	t.Run("errors", func(t *testing.T) {
		tests := []struct {
			name     string
			patch    car.Patch
			wantMark error
		}{
			{name: "empty patch", patch: car.Patch{}, wantMark: commands.ErrInvalidCarPatch},
			{name: "blank brand", patch: car.Patch{Brand: ptr.Of("  ")}, wantMark: commands.ErrInvalidCarPatch},
			{name: "year out of range", patch: car.Patch{Year: ptr.Of(1900)}, wantMark: commands.ErrInvalidCarPatch},
			{name: "plate taken", patch: car.Patch{LicensePlate: ptr.Of("def-5678")}, wantMark: commands.ErrLicensePlateTaken},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newRentalFixture(t, config.RentalConfig{BlockPending: true})
				other := builder.NewCarBuilder()
				other.LicensePlate = "DEF-5678"
				f.uow.addCar(other.BuildDomain(), dailyFee)
				cars := newCarCommands(t, f)

				view, err := cars.UpdateCar(ctx, f.owner, f.car.ID(), tt.patch)

				assert.Nil(t, view)
				assert.True(t, errs.Is(err, tt.wantMark), "want %v, got %v", tt.wantMark, err)
				assert.Equal(t, "ABC-1234", f.uow.carOf(f.car.ID()).LicensePlate())
			})
		}
	})
}

func TestDeleteCar(t *testing.T) {
	ctx := context.Background()

	t.Run("drops pending bookings with the car", func(t *testing.T) {
		f := newRentalFixture(t, config.RentalConfig{BlockPending: true})
		f.stored(rental.StatusPending, day(2), day(4))
		cars := newCarCommands(t, f)

		require.NoError(t, cars.DeleteCar(ctx, f.owner, f.car.ID()))
		assert.Empty(t, f.uow.cars)
		assert.Empty(t, f.uow.rentals)
	})

	t.Run("errors", func(t *testing.T) {
		tests := []struct {
			name     string
			status   rental.Status
			carID    func(f *rentalFixture) uuid.UUID
			wantMark error
		}{
			{name: "confirmed rental", status: rental.StatusConfirmed, wantMark: commands.ErrCarHasCommittedRentals},
			{name: "active rental", status: rental.StatusActive, wantMark: commands.ErrCarHasCommittedRentals},
			{name: "rental history", status: rental.StatusCompleted, wantMark: commands.ErrCarHasRentalHistory},
			{name: "cancelled history", status: rental.StatusCancelled, wantMark: commands.ErrCarHasRentalHistory},
			{
				name: "unknown car", status: rental.StatusPending,
				carID:    func(*rentalFixture) uuid.UUID { return uuid.New() },
				wantMark: commands.ErrCarNotFound,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newRentalFixture(t, config.RentalConfig{BlockPending: true})
				f.stored(tt.status, day(2), day(4))
				cars := newCarCommands(t, f)
				id := f.car.ID()
				if tt.carID != nil {
					id = tt.carID(f)
				}

				err := cars.DeleteCar(ctx, f.owner, id)

				assert.True(t, errs.Is(err, tt.wantMark), "want %v, got %v", tt.wantMark, err)
				assert.Len(t, f.uow.cars, 1)
				assert.Len(t, f.uow.rentals, 1)
			})
		}
	})
}
