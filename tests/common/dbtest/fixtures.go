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

// CreateTestUnit inserts a reservation unit and returns its id.
func CreateTestUnit(t *testing.T, db DBLike, name string, minDuration, maxDuration *string, minDays, maxDays int) uuid.UUID {
	t.Helper()

	unitID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO reservation_units
		    (id, name, min_reservation_duration, max_reservation_duration,
		     reservations_min_days_before, reservations_max_days_before)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		unitID, name, minDuration, maxDuration, minDays, maxDays)
	require.NoError(t, err)

	return unitID
}

// CreateOpenSpan resolves one opening-hours span for a concrete date.
func CreateOpenSpan(t *testing.T, db DBLike, unitID uuid.UUID, date, startTime, endTime, state string) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO opening_hour_spans (unit_id, date, start_time, end_time, state)
		VALUES ($1, $2, $3, $4, $5)`,
		unitID, date, startTime, endTime, state)
	require.NoError(t, err)
}

// CreateApplicationRound closes a civil-date window for direct booking.
func CreateApplicationRound(t *testing.T, db DBLike, unitID uuid.UUID, begin, end string) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO application_rounds (unit_id, reservation_period_begin, reservation_period_end)
		VALUES ($1, $2, $3)`,
		unitID, begin, end)
	require.NoError(t, err)
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO reservation_units (name, min_reservation_duration, max_reservation_duration)
		SELECT 'Default Unit', '0:30:00', '4:00:00'
		WHERE NOT EXISTS (SELECT 1 FROM reservation_units WHERE name = 'Default Unit');
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
