package query

import (
	"context"

	"github.com/google/uuid"
)

const customerColumns = `id, name, email, password_hash, role, phone, is_active, last_login_at, created_at, updated_at`

func scanCustomer(row interface{ Scan(dest ...any) error }) (Customer, error) {
	var i Customer
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Email,
		&i.PasswordHash,
		&i.Role,
		&i.Phone,
		&i.IsActive,
		&i.LastLoginAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const findCustomerByEmail = `SELECT ` + customerColumns + ` FROM customers WHERE email = $1`

func (q *Queries) FindCustomerByEmail(ctx context.Context, db DBTX, email string) (Customer, error) {
	return scanCustomer(db.QueryRow(ctx, findCustomerByEmail, email))
}

const findCustomerByID = `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`

func (q *Queries) FindCustomerByID(ctx context.Context, db DBTX, id uuid.UUID) (Customer, error) {
	return scanCustomer(db.QueryRow(ctx, findCustomerByID, id))
}

const updateCustomerLastLogin = `UPDATE customers SET last_login_at = NOW(), updated_at = NOW() WHERE id = $1`

func (q *Queries) UpdateCustomerLastLogin(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, updateCustomerLastLogin, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
