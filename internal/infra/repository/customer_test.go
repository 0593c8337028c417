//go:build unit

package repository_test

import (
	"context"
	"testing"

	"car-rental/internal/infra"
	"car-rental/internal/infra/repository"
	repositorymock "car-rental/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCustomerRepository_UpdateLastLogin(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()

	tests := []struct {
		name       string
		affected   int64
		mockError  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success", affected: 1},
		{name: "database error", mockError: assert.AnError, expectKind: infra.KindDBFailure},
		{name: "customer not found", affected: 0, expectKind: infra.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockCustomerWriteQueries(ctrl)
			mockDB := unusedDB{}
			mockQueries.EXPECT().UpdateCustomerLastLogin(ctx, mockDB, customerID).Return(tt.affected, tt.mockError)

			err := repository.NewCustomerRepository(mockQueries, mockDB).UpdateLastLogin(ctx, customerID)

			if tt.expectKind != "" {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.expectKind))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
