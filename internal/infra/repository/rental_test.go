//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"car-rental/internal/domain/rental"
	"car-rental/internal/infra"
	"car-rental/internal/infra/query"
	"car-rental/internal/infra/repository"
	"car-rental/internal/infra/repository/converter"
	"car-rental/tests/common/builder"
	repositorymock "car-rental/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func rentalRow(r *rental.Rental) query.Rental {
	p := converter.RentalToCreateParams(r)
	state := converter.RentalToStateParams(r)
	return query.Rental{
		ID:             p.ID,
		CustomerID:     p.CustomerID,
		CarID:          p.CarID,
		BranchID:       p.BranchID,
		StartDate:      p.StartDate,
		EndDate:        p.EndDate,
		TotalDays:      p.TotalDays,
		DailyRate:      p.DailyRate,
		TotalAmount:    p.TotalAmount,
		DiscountCodeID: p.DiscountCodeID,
		DiscountAmount: p.DiscountAmount,
		FinalAmount:    p.FinalAmount,
		Status:         p.Status,
		StartMileage:   state.StartMileage,
		EndMileage:     state.EndMileage,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// =============================================================================
// Create Rental Tests
// =============================================================================

func TestRentalRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockRentalWriteQueries, *rental.Rental, query.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: rental created",
			setupMock: func(mock *repositorymock.MockRentalWriteQueries, r *rental.Rental, db query.DBTX) {
				mock.EXPECT().CreateRental(ctx, db, converter.RentalToCreateParams(r)).Return(r.ID(), nil)
			},
		},
		{
			name: "error: database error",
			setupMock: func(mock *repositorymock.MockRentalWriteQueries, r *rental.Rental, db query.DBTX) {
				mock.EXPECT().CreateRental(ctx, db, gomock.Any()).Return(uuid.Nil, errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: overlapping committed rental",
			setupMock: func(mock *repositorymock.MockRentalWriteQueries, r *rental.Rental, db query.DBTX) {
				exclusion := &pgconn.PgError{Code: "23P01", ConstraintName: "rentals_no_overlap"}
				mock.EXPECT().CreateRental(ctx, db, gomock.Any()).Return(uuid.Nil, exclusion)
			},
			expectedError: true,
			expectKind:    infra.KindExclusionViolated,
		},
		{
			name: "error: unknown car",
			setupMock: func(mock *repositorymock.MockRentalWriteQueries, r *rental.Rental, db query.DBTX) {
				fk := &pgconn.PgError{Code: "23503", ConstraintName: "rentals_car_id_fkey"}
				mock.EXPECT().CreateRental(ctx, db, gomock.Any()).Return(uuid.Nil, fk)
			},
			expectedError: true,
			expectKind:    infra.KindForeignKeyViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockRentalWriteQueries(ctrl)
			mockDB := unusedDB{}
			repo := repository.NewRentalRepository(mockQueries, mockDB)

			r, err := builder.NewRentalBuilder().BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, r, mockDB)

			id, actualError := repo.Create(ctx, r)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				assert.Equal(t, uuid.Nil, id)
			} else {
				assert.NoError(t, actualError)
				assert.Equal(t, r.ID(), id)
			}
		})
	}
}

// =============================================================================
// FindForUpdate Tests
// =============================================================================

func TestRentalRepository_FindForUpdate(t *testing.T) {
	ctx := context.Background()
	stored := builder.NewRentalBuilder().WithStatus(rental.StatusActive).WithStartMileage(12000).BuildStored()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockRentalWriteQueries, query.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: rental decoded",
			setupMock: func(mock *repositorymock.MockRentalWriteQueries, db query.DBTX) {
				mock.EXPECT().GetRentalForUpdate(ctx, db, stored.ID()).Return(rentalRow(stored), nil)
			},
		},
		{
			name: "error: rental not found",
			setupMock: func(mock *repositorymock.MockRentalWriteQueries, db query.DBTX) {
				mock.EXPECT().GetRentalForUpdate(ctx, db, stored.ID()).Return(query.Rental{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: corrupt status",
			setupMock: func(mock *repositorymock.MockRentalWriteQueries, db query.DBTX) {
				row := rentalRow(stored)
				row.Status = "lost"
				mock.EXPECT().GetRentalForUpdate(ctx, db, stored.ID()).Return(row, nil)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockRentalWriteQueries(ctrl)
			mockDB := unusedDB{}
			repo := repository.NewRentalRepository(mockQueries, mockDB)

			tc.setupMock(mockQueries, mockDB)

			got, actualError := repo.FindForUpdate(ctx, stored.ID())

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, actualError)
			assert.Equal(t, stored.ID(), got.ID())
			assert.Equal(t, rental.StatusActive, got.Status())
			assert.Equal(t, 12000, *got.StartMileage())
			assert.True(t, stored.FinalAmount().Equal(got.FinalAmount()))
			assert.Equal(t, stored.Period(), got.Period())
		})
	}
}

// =============================================================================
// Save Tests
// =============================================================================

func TestRentalRepository_Save(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		affected      int64
		dbErr         error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{name: "success: state updated", affected: 1},
		{name: "error: database error", dbErr: errors.New("database connection error"), expectedError: true, expectKind: infra.KindDBFailure},
		{name: "error: rental vanished", affected: 0, expectedError: true, expectKind: infra.KindNotFound},
		{
			name:          "error: check constraint",
			dbErr:         &pgconn.PgError{Code: "23514", ConstraintName: "rentals_mileage_check"},
			expectedError: true,
			expectKind:    infra.KindCheckViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockRentalWriteQueries(ctrl)
			mockDB := unusedDB{}
			repo := repository.NewRentalRepository(mockQueries, mockDB)

			r := builder.NewRentalBuilder().WithStatus(rental.StatusConfirmed).BuildStored()
			mockQueries.EXPECT().UpdateRentalState(ctx, mockDB, converter.RentalToStateParams(r)).Return(tc.affected, tc.dbErr)

			actualError := repo.Save(ctx, r)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// =============================================================================
// Overlap and per-car Tests
// =============================================================================

func TestRentalRepository_HasOverlap(t *testing.T) {
	ctx := context.Background()
	carID := uuid.New()
	period, err := rental.ParseDateRange("2030-06-02", "2030-06-04")
	require.NoError(t, err)

	testCases := []struct {
		name          string
		count         int64
		dbErr         error
		want          bool
		expectedError bool
	}{
		{name: "free", count: 0, want: false},
		{name: "taken", count: 2, want: true},
		{name: "database error", dbErr: errors.New("database connection error"), expectedError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockRentalWriteQueries(ctrl)
			mockDB := unusedDB{}
			repo := repository.NewRentalRepository(mockQueries, mockDB)

			mockQueries.EXPECT().CountOverlappingRentals(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ query.DBTX, arg query.CountOverlappingRentalsParams) (int64, error) {
					assert.Equal(t, carID, arg.CarID)
					assert.Equal(t, []string{"confirmed", "active"}, arg.Statuses)
					assert.Equal(t, period.Start(), arg.StartDate.Time)
					assert.Equal(t, period.End(), arg.EndDate.Time)
					assert.False(t, arg.ExcludeID.Valid)
					return tc.count, tc.dbErr
				})

			got, actualError := repo.HasOverlap(ctx, carID, period, rental.CommittedStatuses())

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, infra.KindDBFailure))
				return
			}
			require.NoError(t, actualError)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRentalRepository_CarIDOf(t *testing.T) {
	ctx := context.Background()
	rentalID, carID := uuid.New(), uuid.New()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockRentalWriteQueries(ctrl)
		mockDB := unusedDB{}
		mockQueries.EXPECT().GetRentalCarID(ctx, mockDB, rentalID).Return(carID, nil)

		got, err := repository.NewRentalRepository(mockQueries, mockDB).CarIDOf(ctx, rentalID)
		require.NoError(t, err)
		assert.Equal(t, carID, got)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockRentalWriteQueries(ctrl)
		mockDB := unusedDB{}
		mockQueries.EXPECT().GetRentalCarID(ctx, mockDB, rentalID).Return(uuid.Nil, pgx.ErrNoRows)

		_, err := repository.NewRentalRepository(mockQueries, mockDB).CarIDOf(ctx, rentalID)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestRentalRepository_CountAndDeleteForCar(t *testing.T) {
	ctx := context.Background()
	carID := uuid.New()
	statuses := []rental.Status{rental.StatusCompleted, rental.StatusCancelled}

	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockRentalWriteQueries(ctrl)
	mockDB := unusedDB{}
	repo := repository.NewRentalRepository(mockQueries, mockDB)

	gomock.InOrder(
		mockQueries.EXPECT().CountRentalsForCarByStatus(ctx, mockDB, carID, []string{"completed", "cancelled"}).Return(int64(3), nil),
		mockQueries.EXPECT().DeleteRentalsForCarByStatus(ctx, mockDB, carID, []string{"completed", "cancelled"}).Return(int64(0), errors.New("boom")),
	)

	n, err := repo.CountForCar(ctx, carID, statuses)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	_, err = repo.DeleteForCar(ctx, carID, statuses)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}
