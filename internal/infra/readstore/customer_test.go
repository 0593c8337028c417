//go:build unit

package readstore_test

import (
	"context"
	"database/sql"
	"testing"

	"car-rental/internal/infra"
	"car-rental/internal/infra/query"
	"car-rental/internal/infra/readstore"
	readstoremock "car-rental/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCustomerReadStore_FindByEmail(t *testing.T) {
	active := query.Customer{
		ID:           uuid.New(),
		Name:         "Jane Doe",
		Email:        "jane@example.com",
		PasswordHash: "hash",
		Role:         "customer",
		IsActive:     true,
	}
	inactive := active
	inactive.Email = "gone@example.com"
	inactive.IsActive = false

	tests := []struct {
		name       string
		email      string
		mockReturn query.Customer
		mockError  error
		wantHash   string
		expectKind infra.RepositoryErrorKind
	}{
		{
			name:       "success - active customer",
			email:      active.Email,
			mockReturn: active,
			wantHash:   "hash",
		},
		{
			name:       "success - inactive customer (for validation)",
			email:      inactive.Email,
			mockReturn: inactive,
			wantHash:   "hash",
		},
		{
			name:       "customer not found",
			email:      "notfound@example.com",
			mockError:  sql.ErrNoRows,
			expectKind: infra.KindNotFound,
		},
		{
			name:       "database error",
			email:      active.Email,
			mockError:  assert.AnError,
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockCustomerReadQueries(ctrl)
			mockQueries.EXPECT().FindCustomerByEmail(gomock.Any(), gomock.Any(), tt.email).Return(tt.mockReturn, tt.mockError)

			readStore := readstore.NewCustomerReadStore(mockQueries, unusedDB{})

			view, hash, err := readStore.FindByEmail(context.Background(), tt.email)

			if tt.expectKind != "" {
				assert.Error(t, err)
				assert.Nil(t, view)
				assert.Empty(t, hash)
				assert.True(t, infra.IsKind(err, tt.expectKind))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.email, view.Email)
			assert.Equal(t, tt.mockReturn.IsActive, view.IsActive)
			assert.Equal(t, tt.wantHash, hash)
			assert.Nil(t, view.LastLoginAt)
		})
	}
}

func TestCustomerReadStore_FindByID(t *testing.T) {
	id := uuid.New()

	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockCustomerReadQueries(ctrl)
	gomock.InOrder(
		mockQueries.EXPECT().FindCustomerByID(gomock.Any(), gomock.Any(), id).
			Return(query.Customer{ID: id, Name: "Owner", Email: "owner@example.com", Role: "owner", IsActive: true}, nil),
		mockQueries.EXPECT().FindCustomerByID(gomock.Any(), gomock.Any(), id).
			Return(query.Customer{}, sql.ErrNoRows),
	)

	readStore := readstore.NewCustomerReadStore(mockQueries, unusedDB{})

	view, err := readStore.FindByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, "owner", view.Role)

	_, err = readStore.FindByID(context.Background(), id)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}
