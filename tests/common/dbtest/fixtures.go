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

	"roomstay/internal/pkg/caldate"
	"roomstay/internal/pkg/pgconv"
)

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	// bcrypt hash of "password123"
	passwordHash := "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."
	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, passwordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestRoom(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	roomID := uuid.New()
	var locationID uuid.UUID

	ctx := context.Background()
	err := db.QueryRow(ctx, "SELECT id FROM locations WHERE name = 'Default Location' LIMIT 1").Scan(&locationID)
	require.NoError(t, err)

	_, err = db.Exec(ctx, "INSERT INTO rooms (id, location_id, name, price_per_night_per_guest_cents, guest_capacity) VALUES ($1, $2, $3, 12000, 2)",
		roomID, locationID, name)
	require.NoError(t, err)

	return roomID
}

// CreateTestStay inserts an all-weekday policy covering [activeFrom, activeTo]
// with no booking window or lead-day limits.
func CreateTestStay(t *testing.T, db DBLike, roomID uuid.UUID, activeFrom, activeTo caldate.Date, minNights, maxNights int) uuid.UUID {
	t.Helper()

	stayID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `INSERT INTO stays
		(id, room_id, active_from, active_to, arrival_weekdays, departure_weekdays, min_nights, max_nights)
		VALUES ($1, $2, $3, $4, '{}', '{}', $5, $6)`,
		stayID, roomID, pgconv.DateToPgtype(activeFrom), pgconv.DateToPgtype(activeTo), minNights, maxNights)
	require.NoError(t, err)

	return stayID
}

func CreateTestReservation(t *testing.T, db DBLike, roomID uuid.UUID, arrival, departure caldate.Date, guestName string) uuid.UUID {
	t.Helper()

	resID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `INSERT INTO reservations
		(id, room_id, arrival_date, departure_date, status, guest_name)
		VALUES ($1, $2, $3, $4, 'confirmed', $5)`,
		resID, roomID, pgconv.DateToPgtype(arrival), pgconv.DateToPgtype(departure), guestName)
	require.NoError(t, err)

	return resID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO locations (id, name) VALUES
		    (gen_random_uuid(), 'Default Location')
		ON CONFLICT DO NOTHING;
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
