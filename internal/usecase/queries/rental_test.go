//go:build unit

package queries_test

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"car-rental/internal/domain/customer"
	"car-rental/internal/infra"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/pkg/ptr"
	"car-rental/internal/usecase"
	"car-rental/internal/usecase/queries"
	queriesmock "car-rental/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ownerOnly grants fleet management to owners alone.
type ownerOnly struct{}

func (ownerOnly) Can(p usecase.Principal, _ usecase.Capability) bool {
	return p.Role == customer.RoleOwner
}

func rentalRows(n int, from time.Time) []*queries.RentalView {
	rows := make([]*queries.RentalView, n)
	for i := range rows {
		rows[i] = &queries.RentalView{ID: uuid.New(), CreatedAt: from.Add(-time.Duration(i) * time.Minute)}
	}
	return rows
}

func TestCursor(t *testing.T) {
	t.Run("round trip keeps microseconds", func(t *testing.T) {
		at := time.Date(2030, 6, 1, 9, 30, 15, 123456789, time.UTC)
		id := uuid.New()

		gotAt, gotID, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(at, id))

		require.NoError(t, err)
		assert.True(t, at.Truncate(time.Microsecond).Equal(gotAt))
		assert.Equal(t, id, gotID)
	})

	tests := []struct {
		name   string
		cursor string
	}{
		{name: "not base64", cursor: "%%%"},
		{name: "wrong version", cursor: base64.RawURLEncoding.EncodeToString([]byte("v0:1:" + uuid.NewString()))},
		{name: "bad timestamp", cursor: base64.RawURLEncoding.EncodeToString([]byte("v1:abc:" + uuid.NewString()))},
		{name: "bad id", cursor: base64.RawURLEncoding.EncodeToString([]byte("v1:1:not-a-uuid"))},
		{name: "missing part", cursor: base64.RawURLEncoding.EncodeToString([]byte("v1:1"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(tt.cursor)
			assert.True(t, errs.Is(err, queries.ErrInvalidCursor), "got %v", err)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(0))
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(-3))
	assert.Equal(t, 7, queries.ValidateLimit(7))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(queries.MaxListLimit+1))
}

func TestRentalQueries_ListMyRentals(t *testing.T) {
	ctx := context.Background()
	actor := usecase.Principal{ID: uuid.New(), Role: customer.RoleCustomer}
	now := time.Date(2030, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("first page fetches one extra row for the next cursor", func(t *testing.T) {
		store := queriesmock.NewMockRentalReadStore(gomock.NewController(t))
		rows := rentalRows(3, now)
		store.EXPECT().
			ListFirstPage(ctx, queries.RentalFilter{CustomerID: &actor.ID, Status: ptr.Of("pending")}, int32(3)).
			Return(rows, nil)

		page, next, err := queries.NewRentalQueries(store, ownerOnly{}).
			ListMyRentals(ctx, actor, ptr.Of("pending"), nil, 2)

		require.NoError(t, err)
		assert.Equal(t, rows[:2], page)
		require.NotNil(t, next)

		at, id, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.Equal(t, rows[1].ID, id)
		assert.True(t, rows[1].CreatedAt.Equal(at))
	})

	t.Run("cursor continues from its position", func(t *testing.T) {
		store := queriesmock.NewMockRentalReadStore(gomock.NewController(t))
		lastID := uuid.New()
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(now, lastID)}
		store.EXPECT().
			ListKeyset(ctx, gomock.Any(), now, lastID, int32(queries.DefaultListLimit+1)).
			Return(rentalRows(1, now.Add(-time.Hour)), nil)

		page, next, err := queries.NewRentalQueries(store, ownerOnly{}).
			ListMyRentals(ctx, actor, nil, cursor, 0)

		require.NoError(t, err)
		assert.Len(t, page, 1)
		assert.Nil(t, next)
	})

	t.Run("bad inputs never reach the store", func(t *testing.T) {
		store := queriesmock.NewMockRentalReadStore(gomock.NewController(t))
		q := queries.NewRentalQueries(store, ownerOnly{})

		_, _, err := q.ListMyRentals(ctx, actor, ptr.Of("lost"), nil, 10)
		assert.True(t, errs.Is(err, queries.ErrInvalidStatusFilter))

		_, _, err = q.ListMyRentals(ctx, actor, nil, &queries.Cursor{After: "garbage"}, 10)
		assert.True(t, errs.Is(err, queries.ErrInvalidCursor))
	})
}

func TestRentalQueries_Visibility(t *testing.T) {
	ctx := context.Background()
	owner := usecase.Principal{ID: uuid.New(), Role: customer.RoleOwner}
	renter := usecase.Principal{ID: uuid.New(), Role: customer.RoleCustomer}
	stranger := usecase.Principal{ID: uuid.New(), Role: customer.RoleCustomer}

	view := &queries.RentalView{ID: uuid.New(), CustomerID: renter.ID}

	tests := []struct {
		name    string
		actor   usecase.Principal
		wantErr error
	}{
		{name: "renter sees own rental", actor: renter},
		{name: "fleet manager sees any rental", actor: owner},
		{name: "other customer gets not found", actor: stranger, wantErr: queries.ErrRentalNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := queriesmock.NewMockRentalReadStore(gomock.NewController(t))
			store.EXPECT().FindByID(ctx, view.ID).Return(view, nil)

			got, err := queries.NewRentalQueries(store, ownerOnly{}).GetRental(ctx, tt.actor, view.ID)

			if tt.wantErr != nil {
				assert.True(t, errs.Is(err, tt.wantErr))
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, view, got)
		})
	}

	t.Run("missing rental maps to not found", func(t *testing.T) {
		store := queriesmock.NewMockRentalReadStore(gomock.NewController(t))
		store.EXPECT().FindByID(ctx, gomock.Any()).
			Return(nil, infra.WrapRepoErr("rental not found", nil, infra.KindNotFound))

		_, err := queries.NewRentalQueries(store, ownerOnly{}).GetRental(ctx, owner, uuid.New())
		assert.True(t, errs.Is(err, queries.ErrRentalNotFound))
	})

	t.Run("fleet listing needs the capability", func(t *testing.T) {
		store := queriesmock.NewMockRentalReadStore(gomock.NewController(t))

		_, _, err := queries.NewRentalQueries(store, ownerOnly{}).ListFleetRentals(ctx, renter, nil, nil, 10)
		assert.True(t, errs.Is(err, errs.ErrForbidden))
	})
}
