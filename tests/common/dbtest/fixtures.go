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
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) WHERE is_active = true DO NOTHING",
		userID, email, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1 AND is_active = true", email).Scan(&userID)
	}

	return userID
}

// CreateTestCustomer enrolls a customer in the Standard program together
// with an empty loyalty account.
func CreateTestCustomer(t *testing.T, db DBLike, fullName string) uuid.UUID {
	t.Helper()

	customerID := uuid.New()
	var programID uuid.UUID

	ctx := context.Background()
	err := db.QueryRow(ctx, "SELECT id FROM loyalty_programs WHERE name = 'Standard' LIMIT 1").Scan(&programID)
	require.NoError(t, err)

	_, err = db.Exec(ctx, "INSERT INTO customers (id, full_name, program_id) VALUES ($1, $2, $3)",
		customerID, fullName, programID)
	require.NoError(t, err)

	_, err = db.Exec(ctx, "INSERT INTO loyalty_accounts (customer_id, program_id, balance) VALUES ($1, $2, 0)",
		customerID, programID)
	require.NoError(t, err)

	return customerID
}

// LinkCustomerToUser attaches an auth account to a customer record so
// customer-scoped routes resolve to it.
func LinkCustomerToUser(t *testing.T, db DBLike, customerID, userID uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"UPDATE customers SET user_id = $1 WHERE id = $2", userID, customerID)
	require.NoError(t, err)
}

func CreateTestRoom(t *testing.T, db DBLike, number string, nightlyRate int64) uuid.UUID {
	t.Helper()

	roomID := uuid.New()
	typeID := uuid.New()
	ctx := context.Background()

	typeName := "Type for " + number
	tag, err := db.Exec(ctx, "INSERT INTO room_types (id, name, capacity, base_rate) VALUES ($1, $2, 2, $3) ON CONFLICT (name) DO NOTHING",
		typeID, typeName, nightlyRate)
	require.NoError(t, err)
	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM room_types WHERE name = $1", typeName).Scan(&typeID)
	}

	_, err = db.Exec(ctx, "INSERT INTO rooms (id, number, type_id, nightly_rate, status) VALUES ($1, $2, $3, $4, 'available')",
		roomID, number, typeID, nightlyRate)
	require.NoError(t, err)

	return roomID
}

func CreateTestService(t *testing.T, db DBLike, name string, unitPrice int64) uuid.UUID {
	t.Helper()

	serviceID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO services (id, name, unit_price, active) VALUES ($1, $2, $3, true) ON CONFLICT (name) DO NOTHING",
		serviceID, name, unitPrice)
	require.NoError(t, err)
	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM services WHERE name = $1", name).Scan(&serviceID)
	}

	return serviceID
}

func ProgramID(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	var programID uuid.UUID
	err := db.QueryRow(context.Background(), "SELECT id FROM loyalty_programs WHERE name = $1", name).Scan(&programID)
	require.NoError(t, err)
	return programID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	// 1 point per 20 spent, 100 points floor, 10 per point discount
	_, err := pool.Exec(ctx, `
		INSERT INTO loyalty_programs (id, name, min_points, discount_per_point, accrual_rate) VALUES
		    (gen_random_uuid(), 'Standard', 100, 10, 0.05),
		    (gen_random_uuid(), 'Gold', 50, 15, 0.10)
		ON CONFLICT (name) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
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
		    AND tablename NOT IN ('schema_migrations')`)
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
