package readstore

import (
	"context"

	"car-rental/internal/infra"
	"car-rental/internal/infra/query"
	"car-rental/internal/pkg/pgconv"
	"car-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type CustomerReadQueries interface {
	FindCustomerByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Customer, error)
	FindCustomerByEmail(ctx context.Context, db query.DBTX, email string) (query.Customer, error)
}

type CustomerReadStore struct {
	queries CustomerReadQueries
	db      query.DBTX
}

func NewCustomerReadStore(queries CustomerReadQueries, db query.DBTX) *CustomerReadStore {
	return &CustomerReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CustomerReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedCustomerView, error) {
	row, err := r.queries.FindCustomerByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer by ID", err)
	}
	return toAuthorizedCustomerView(row), nil
}

// FindByEmail also returns the password hash for credential checks.
func (r *CustomerReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedCustomerView, string, error) {
	row, err := r.queries.FindCustomerByEmail(ctx, r.db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find customer by email", err)
	}
	return toAuthorizedCustomerView(row), row.PasswordHash, nil
}

func toAuthorizedCustomerView(row query.Customer) *queries.AuthorizedCustomerView {
	return &queries.AuthorizedCustomerView{
		ID:          row.ID,
		Name:        row.Name,
		Email:       row.Email,
		Role:        row.Role,
		Phone:       pgconv.StringPtrFromPgtype(row.Phone),
		IsActive:    row.IsActive,
		LastLoginAt: pgconv.TimePtrFromPgtype(row.LastLoginAt),
	}
}
