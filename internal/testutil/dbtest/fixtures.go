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

// DBLike is the minimal surface the fixtures need.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateBusiness(t *testing.T, db DBLike, name string, category *string) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	var categoryID *uuid.UUID
	if category != nil {
		id := uuid.New()
		err := db.QueryRow(ctx, `
			INSERT INTO business_categories (id, name) VALUES ($1, $2)
			ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
			RETURNING id`, id, *category).Scan(&id)
		require.NoError(t, err)
		categoryID = &id
	}

	businessID := uuid.New()
	_, err := db.Exec(ctx, "INSERT INTO businesses (id, name, category_id) VALUES ($1, $2, $3)", businessID, name, categoryID)
	require.NoError(t, err)
	return businessID
}

func CreateBusinessUser(t *testing.T, db DBLike, businessID uuid.UUID, authProviderID string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO business_users (id, business_id, auth_provider_id, email, name) VALUES ($1, $2, $3, $4, $5)",
		id, businessID, authProviderID, id.String()[:8]+"@staff.example.com", "Staff")
	require.NoError(t, err)
	return id
}

// CreateReward inserts an active incremental_points reward. A nil expireDays
// means points never expire.
func CreateReward(t *testing.T, db DBLike, businessID uuid.UUID, name string, cost int, expireDays *int) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO rewards (id, business_id, name, cost_points, expire_days) VALUES ($1, $2, $3, $4, $5)",
		id, businessID, name, cost, expireDays)
	require.NoError(t, err)
	return id
}

// AgeBalance moves a balance and its activity into the past.
func AgeBalance(t *testing.T, db DBLike, customerID, rewardID uuid.UUID, by time.Duration) {
	t.Helper()
	ctx := context.Background()
	for _, stmt := range []string{
		"UPDATE balances SET last_updated = last_updated - make_interval(secs => $3) WHERE customer_id = $1 AND reward_id = $2",
		"UPDATE scan_events SET scanned_at = scanned_at - make_interval(secs => $3) WHERE customer_id = $1 AND reward_id = $2",
		"UPDATE redemptions SET redeemed_at = redeemed_at - make_interval(secs => $3) WHERE customer_id = $1 AND reward_id = $2",
	} {
		_, err := db.Exec(ctx, stmt, customerID, rewardID, by.Seconds())
		require.NoError(t, err)
	}
}

// SetBalance overwrites the stored value of an existing balance.
func SetBalance(t *testing.T, db DBLike, customerID, rewardID uuid.UUID, value int) {
	t.Helper()
	_, err := db.Exec(context.Background(),
		"UPDATE balances SET value = $3 WHERE customer_id = $1 AND reward_id = $2",
		customerID, rewardID, value)
	require.NoError(t, err)
}

func CountRows(t *testing.T, db DBLike, table string, customerID uuid.UUID) int {
	t.Helper()
	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM "+pgx.Identifier{table}.Sanitize()+" WHERE customer_id = $1", customerID).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every public table.
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
		if rows.Err() != nil || len(tables) == 0 {
			truncateSQL.Store("")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " CASCADE;")
	})
	stmt, _ := truncateSQL.Load().(string)
	if stmt == "" {
		return fmt.Errorf("failed to build TRUNCATE statement")
	}
	_, err := pool.Exec(ctx, stmt)
	return err
}
