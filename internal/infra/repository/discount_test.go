//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"car-rental/internal/domain/discount"
	"car-rental/internal/infra"
	"car-rental/internal/infra/query"
	"car-rental/internal/infra/repository"
	"car-rental/internal/pkg/pgconv"
	repositorymock "car-rental/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDiscountRepository_FindByCodeForUpdate(t *testing.T) {
	ctx := context.Background()
	row := query.DiscountCode{
		ID:                uuid.New(),
		Code:              "SUMMER10",
		DiscountType:      "percentage",
		DiscountValue:     pgconv.DecimalToNumeric(decimal.NewFromInt(10)),
		MinRentalDays:     2,
		MaxDiscountAmount: pgconv.DecimalToNumeric(decimal.NewFromInt(50)),
		ValidFrom:         pgconv.DateToPgtype(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)),
		ValidUntil:        pgconv.DateToPgtype(time.Date(2030, 12, 31, 0, 0, 0, 0, time.UTC)),
		UsageLimit:        pgtype.Int4{Int32: 100, Valid: true},
		TimesUsed:         7,
		IsActive:          true,
	}

	testCases := []struct {
		name       string
		row        query.DiscountCode
		dbErr      error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: code decoded", row: row},
		{name: "error: unknown code", dbErr: pgx.ErrNoRows, expectKind: infra.KindNotFound},
		{name: "error: database error", dbErr: errors.New("database connection error"), expectKind: infra.KindDBFailure},
		{
			name: "error: corrupt type",
			row: func() query.DiscountCode {
				r := row
				r.DiscountType = "bogo"
				return r
			}(),
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockDiscountWriteQueries(ctrl)
			mockDB := unusedDB{}
			mockQueries.EXPECT().GetDiscountCodeByCodeForUpdate(ctx, mockDB, "SUMMER10").Return(tc.row, tc.dbErr)

			got, err := repository.NewDiscountRepository(mockQueries, mockDB).FindByCodeForUpdate(ctx, "SUMMER10")

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, discount.TypePercentage, got.Type())
			assert.Equal(t, 2, got.MinRentalDays())
			require.NotNil(t, got.UsageLimit())
			assert.Equal(t, 100, *got.UsageLimit())
			assert.Equal(t, 7, got.TimesUsed())
			require.NotNil(t, got.MaxDiscountAmount())
			assert.True(t, got.MaxDiscountAmount().Equal(decimal.NewFromInt(50)))
		})
	}
}

func TestDiscountRepository_IncrementUsage(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	testCases := []struct {
		name       string
		affected   int64
		dbErr      error
		want       bool
		expectKind infra.RepositoryErrorKind
	}{
		{name: "redeemed", affected: 1, want: true},
		{name: "limit reached concurrently", affected: 0, want: false},
		{name: "database error", dbErr: errors.New("database connection error"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockDiscountWriteQueries(ctrl)
			mockDB := unusedDB{}
			mockQueries.EXPECT().IncrementDiscountUsage(ctx, mockDB, id).Return(tc.affected, tc.dbErr)

			ok, err := repository.NewDiscountRepository(mockQueries, mockDB).IncrementUsage(ctx, id)

			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)
		})
	}
}
