//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const (
	TestPassword = "password123"
	// bcrypt hash of TestPassword
	testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

	DefaultBranch   = "Downtown"
	DefaultCategory = "Economy"
)

// Conn is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Conn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestCustomer(t *testing.T, db Conn, email, role string) uuid.UUID {
	t.Helper()

	customerID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO customers (id, name, email, password_hash, role, is_active)
		VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) DO NOTHING`,
		customerID, "Test "+role, email, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM customers WHERE email = $1", email).Scan(&customerID)
	}

	return customerID
}

// CreateTestCar registers a car in the default branch and category.
func CreateTestCar(t *testing.T, db Conn, licensePlate string, mileage int) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	var branchID, categoryID uuid.UUID
	require.NoError(t, db.QueryRow(ctx, "SELECT id FROM branches WHERE name = $1 LIMIT 1", DefaultBranch).Scan(&branchID))
	require.NoError(t, db.QueryRow(ctx, "SELECT id FROM rental_categories WHERE name = $1", DefaultCategory).Scan(&categoryID))

	carID := uuid.New()
	_, err := db.Exec(ctx, `INSERT INTO cars (id, category_id, branch_id, brand, model, year, license_plate, status, mileage)
		VALUES ($1, $2, $3, 'Toyota', 'Corolla', 2022, $4, 'available', $5)`,
		carID, categoryID, branchID, licensePlate, mileage)
	require.NoError(t, err)

	return carID
}

// CreateTestDiscount inserts an active code valid from yesterday for a year.
func CreateTestDiscount(t *testing.T, db Conn, code, discountType, value string, usageLimit *int) uuid.UUID {
	t.Helper()

	id := uuid.New()
	from := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")
	until := time.Now().UTC().AddDate(1, 0, 0).Format("2006-01-02")
	_, err := db.Exec(context.Background(), `INSERT INTO discount_codes
		(id, code, discount_type, discount_value, min_rental_days, valid_from, valid_until, usage_limit)
		VALUES ($1, $2, $3, $4::numeric, 1, $5::date, $6::date, $7)`,
		id, code, discountType, value, from, until, usageLimit)
	require.NoError(t, err)

	return id
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO branches (id, name, address) VALUES
		    (gen_random_uuid(), $1, '1 Main Street');
	`, DefaultBranch)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO rental_categories (id, name, daily_rate) VALUES
		    (gen_random_uuid(), $1, 35.00),
		    (gen_random_uuid(), 'Premium', 90.00)
		ON CONFLICT (name) DO NOTHING;
	`, DefaultCategory)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
