//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"car-rental/internal/domain/discount"
	"car-rental/internal/infra"
	"car-rental/internal/infra/query"
	"car-rental/internal/infra/readstore"
	"car-rental/internal/pkg/pgconv"
	readstoremock "car-rental/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDiscountReadStore_FindByCode(t *testing.T) {
	ctx := context.Background()
	row := query.DiscountCode{
		ID:            uuid.New(),
		Code:          "FLAT15",
		DiscountType:  "fixed",
		DiscountValue: pgconv.DecimalToNumeric(decimal.NewFromInt(15)),
		MinRentalDays: 1,
		ValidFrom:     pgconv.DateToPgtype(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)),
		ValidUntil:    pgconv.DateToPgtype(time.Date(2030, 3, 31, 0, 0, 0, 0, time.UTC)),
		IsActive:      true,
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockDiscountReadQueries(ctrl)
		mockDB := unusedDB{}
		mockQueries.EXPECT().GetDiscountCodeByCode(ctx, mockDB, "FLAT15").Return(row, nil)

		code, err := readstore.NewDiscountReadStore(mockQueries, mockDB).FindByCode(ctx, "FLAT15")
		require.NoError(t, err)
		assert.Equal(t, discount.TypeFixed, code.Type())
		assert.Nil(t, code.UsageLimit())
		assert.Nil(t, code.MaxDiscountAmount())
		assert.Equal(t, time.Date(2030, 3, 31, 0, 0, 0, 0, time.UTC), code.ValidUntil())
		assert.ErrorIs(t, code.Validate(time.Date(2030, 4, 1, 0, 0, 0, 0, time.UTC), 1), discount.ErrExpired)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockDiscountReadQueries(ctrl)
		mockDB := unusedDB{}
		mockQueries.EXPECT().GetDiscountCodeByCode(ctx, mockDB, "NOPE").Return(query.DiscountCode{}, pgx.ErrNoRows)

		code, err := readstore.NewDiscountReadStore(mockQueries, mockDB).FindByCode(ctx, "NOPE")
		assert.Nil(t, code)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
