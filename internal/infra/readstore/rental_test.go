//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"car-rental/internal/infra"
	"car-rental/internal/infra/query"
	"car-rental/internal/infra/readstore"
	"car-rental/internal/pkg/pgconv"
	"car-rental/internal/pkg/ptr"
	"car-rental/internal/usecase/queries"
	readstoremock "car-rental/tests/mock/readstore"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var created = time.Date(2030, 6, 1, 9, 0, 0, 0, time.UTC)

func rentalViewRow() query.RentalViewRow {
	return query.RentalViewRow{
		ID:             uuid.New(),
		CustomerID:     uuid.New(),
		CustomerName:   "Jane Doe",
		CustomerEmail:  "jane@example.com",
		CarID:          uuid.New(),
		CarBrand:       "Toyota",
		CarModel:       "Corolla",
		LicensePlate:   "ABC-1234",
		CategoryName:   "Economy",
		BranchID:       uuid.New(),
		BranchName:     "Downtown",
		StartDate:      pgconv.DateToPgtype(time.Date(2030, 6, 2, 0, 0, 0, 0, time.UTC)),
		EndDate:        pgconv.DateToPgtype(time.Date(2030, 6, 4, 0, 0, 0, 0, time.UTC)),
		TotalDays:      2,
		DailyRate:      pgconv.DecimalToNumeric(decimal.NewFromInt(35)),
		TotalAmount:    pgconv.DecimalToNumeric(decimal.NewFromInt(70)),
		DiscountCode:   pgconv.StringToPgtype("SUMMER10"),
		DiscountAmount: pgconv.DecimalToNumeric(decimal.NewFromInt(7)),
		FinalAmount:    pgconv.DecimalToNumeric(decimal.NewFromInt(63)),
		Status:         "confirmed",
		PaymentStatus:  pgconv.StringToPgtype("completed"),
		CreatedAt:      pgconv.TimeToPgtype(created),
		UpdatedAt:      pgconv.TimeToPgtype(created),
	}
}

func TestRentalReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	row := rentalViewRow()

	testCases := []struct {
		name       string
		row        query.RentalViewRow
		dbErr      error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: joined view decoded", row: row},
		{name: "error: not found", dbErr: pgx.ErrNoRows, expectKind: infra.KindNotFound},
		{name: "error: database error", dbErr: errors.New("database connection error"), expectKind: infra.KindDBFailure},
		{
			name: "error: null amount",
			row: func() query.RentalViewRow {
				r := row
				r.FinalAmount = pgtype.Numeric{}
				return r
			}(),
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockRentalViewQueries(ctrl)
			mockDB := unusedDB{}
			mockQueries.EXPECT().GetRentalView(ctx, mockDB, row.ID).Return(tc.row, tc.dbErr)

			view, err := readstore.NewRentalReadStore(mockQueries, mockDB).FindByID(ctx, row.ID)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)

			want := &queries.RentalView{
				ID:             row.ID,
				CustomerID:     row.CustomerID,
				CustomerName:   "Jane Doe",
				CustomerEmail:  "jane@example.com",
				CarID:          row.CarID,
				CarBrand:       "Toyota",
				CarModel:       "Corolla",
				LicensePlate:   "ABC-1234",
				CategoryName:   "Economy",
				BranchID:       row.BranchID,
				BranchName:     "Downtown",
				StartDate:      time.Date(2030, 6, 2, 0, 0, 0, 0, time.UTC),
				EndDate:        time.Date(2030, 6, 4, 0, 0, 0, 0, time.UTC),
				TotalDays:      2,
				DailyRate:      decimal.NewFromInt(35),
				TotalAmount:    decimal.NewFromInt(70),
				DiscountCode:   ptr.Of("SUMMER10"),
				DiscountAmount: decimal.NewFromInt(7),
				FinalAmount:    decimal.NewFromInt(63),
				Status:         "confirmed",
				PaymentStatus:  ptr.Of("completed"),
				CreatedAt:      created,
				UpdatedAt:      created,
			}
			opts := cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })
			if diff := cmp.Diff(want, view, opts); diff != "" {
				t.Errorf("RentalView mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRentalReadStore_List(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()
	filter := queries.RentalFilter{CustomerID: &customerID, Status: ptr.Of("pending")}

	t.Run("first page passes the filter through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockRentalViewQueries(ctrl)
		mockDB := unusedDB{}

		want := query.ListRentalViewsFirstPageParams{
			CustomerID: pgconv.UUIDToPgtype(customerID),
			Status:     pgconv.StringToPgtype("pending"),
			Limit:      21,
		}
		mockQueries.EXPECT().ListRentalViewsFirstPage(ctx, mockDB, want).
			Return([]query.RentalViewRow{rentalViewRow(), rentalViewRow()}, nil)

		views, err := readstore.NewRentalReadStore(mockQueries, mockDB).ListFirstPage(ctx, filter, 21)
		require.NoError(t, err)
		assert.Len(t, views, 2)
	})

	t.Run("fleet listing has no customer filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockRentalViewQueries(ctrl)
		mockDB := unusedDB{}

		mockQueries.EXPECT().ListRentalViewsFirstPage(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ query.DBTX, arg query.ListRentalViewsFirstPageParams) ([]query.RentalViewRow, error) {
				assert.False(t, arg.CustomerID.Valid)
				assert.False(t, arg.Status.Valid)
				return nil, nil
			})

		views, err := readstore.NewRentalReadStore(mockQueries, mockDB).ListFirstPage(ctx, queries.RentalFilter{}, 10)
		require.NoError(t, err)
		assert.Empty(t, views)
	})

	t.Run("keyset continues after the cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockRentalViewQueries(ctrl)
		mockDB := unusedDB{}
		lastID := uuid.New()

		want := query.ListRentalViewsKeysetParams{
			CustomerID: pgconv.UUIDToPgtype(customerID),
			Status:     pgconv.StringToPgtype("pending"),
			CreatedAt:  pgconv.TimeToPgtype(created),
			ID:         lastID,
			Limit:      5,
		}
		mockQueries.EXPECT().ListRentalViewsKeyset(ctx, mockDB, want).Return(nil, errors.New("boom"))

		_, err := readstore.NewRentalReadStore(mockQueries, mockDB).ListKeyset(ctx, filter, created, lastID, 5)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
