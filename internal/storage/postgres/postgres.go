package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"parkingBooker/internal/config"
	"parkingBooker/internal/models"
	"parkingBooker/internal/storage"
	"time"

	"github.com/lib/pq"
)

const (
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
)

const schema = `
	CREATE TABLE IF NOT EXISTS hosts (
		id       BIGSERIAL PRIMARY KEY,
		name     TEXT NOT NULL,
		location TEXT NOT NULL,
		rate     DOUBLE PRECISION NOT NULL
	);

	CREATE TABLE IF NOT EXISTS parking_spots (
		id             BIGSERIAL PRIMARY KEY,
		host_id        BIGINT NOT NULL REFERENCES hosts(id),
		location       TEXT NOT NULL,
		available_from TIMESTAMPTZ NOT NULL,
		available_to   TIMESTAMPTZ NOT NULL,
		is_booked      BOOLEAN NOT NULL DEFAULT FALSE
	);

	CREATE INDEX IF NOT EXISTS parking_spots_location_free_idx
		ON parking_spots (location) WHERE is_booked = FALSE;

	CREATE TABLE IF NOT EXISTS bookings (
		id         BIGSERIAL PRIMARY KEY,
		spot_id    BIGINT NOT NULL UNIQUE REFERENCES parking_spots(id),
		hours      INTEGER NOT NULL CHECK (hours > 0),
		total_cost DOUBLE PRECISION NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	);`

var (
	_ storage.Store = (*Storage)(nil)
	_ storage.Tx    = (*tx)(nil)
)

type Storage struct {
	DB *sql.DB
	queries
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type queries struct {
	q queryer
}

type tx struct {
	queries
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if _, err = db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return New(db), nil
}

// New wraps an open database whose schema is already in place.
func New(db *sql.DB) *Storage {
	return &Storage{DB: db, queries: queries{q: db}}
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) WithinTx(ctx context.Context, fn func(ctx context.Context, tx storage.Tx) error) error {
	sqlTx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer sqlTx.Rollback()

	if err = fn(ctx, &tx{queries{q: sqlTx}}); err != nil {
		return err
	}

	if err = sqlTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (s *Storage) InsertHost(ctx context.Context, name, location string, rate float64) (int64, error) {
	query := `
		INSERT INTO hosts (name, location, rate)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id int64
	err := s.q.QueryRowContext(ctx, query, name, location, rate).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create host: %w", err)
	}

	return id, nil
}

func (s *Storage) GetHost(ctx context.Context, hostID int64) (*models.Host, error) {
	query := `
		SELECT id, name, location, rate
		FROM hosts
		WHERE id = $1`

	var host models.Host
	err := s.q.QueryRowContext(ctx, query, hostID).Scan(
		&host.ID,
		&host.Name,
		&host.Location,
		&host.Rate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrHostNotFound
		}
		return nil, fmt.Errorf("failed to get host: %w", err)
	}

	return &host, nil
}

func (s *Storage) InsertSpot(ctx context.Context, hostID int64, location string, from, to time.Time) (int64, error) {
	query := `
		INSERT INTO parking_spots (host_id, location, available_from, available_to)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	err := s.q.QueryRowContext(ctx, query, hostID, location, from, to).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == codeForeignKeyViolation {
			return 0, storage.ErrHostNotFound
		}
		return 0, fmt.Errorf("failed to create spot: %w", err)
	}

	return id, nil
}

func (s *Storage) ListBookingsBySpot(ctx context.Context, spotID int64) ([]models.Booking, error) {
	query := `
		SELECT id, spot_id, hours, total_cost, created_at
		FROM bookings
		WHERE spot_id = $1
		ORDER BY created_at DESC`

	rows, err := s.q.QueryContext(ctx, query, spotID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	defer rows.Close()

	bookings := []models.Booking{}
	for rows.Next() {
		var booking models.Booking
		err = rows.Scan(
			&booking.ID,
			&booking.SpotID,
			&booking.Hours,
			&booking.TotalCost,
			&booking.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return bookings, nil
}

func (s *Storage) SumBookingCostByHost(ctx context.Context, hostID int64) (float64, error) {
	query := `
		SELECT COALESCE(SUM(b.total_cost), 0)
		FROM bookings b
		JOIN parking_spots p ON b.spot_id = p.id
		WHERE p.host_id = $1`

	var earnings float64
	err := s.q.QueryRowContext(ctx, query, hostID).Scan(&earnings)
	if err != nil {
		return 0, fmt.Errorf("failed to sum earnings: %w", err)
	}

	return earnings, nil
}

func (q queries) GetSpot(ctx context.Context, spotID int64) (*models.ParkingSpot, error) {
	query := `
		SELECT id, host_id, location, available_from, available_to, is_booked
		FROM parking_spots
		WHERE id = $1`

	spot, err := scanSpot(q.q.QueryRowContext(ctx, query, spotID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrSpotNotFound
		}
		return nil, fmt.Errorf("failed to get spot: %w", err)
	}

	return spot, nil
}

func (q queries) ListFreeSpots(ctx context.Context, location string) ([]models.ParkingSpot, error) {
	query := `
		SELECT id, host_id, location, available_from, available_to, is_booked
		FROM parking_spots
		WHERE location = $1 AND is_booked = FALSE`

	return q.listSpots(ctx, query, location)
}

func (q queries) ListFreeSpotsExcluding(ctx context.Context, location string) ([]models.ParkingSpot, error) {
	query := `
		SELECT id, host_id, location, available_from, available_to, is_booked
		FROM parking_spots
		WHERE location <> $1 AND is_booked = FALSE`

	return q.listSpots(ctx, query, location)
}

// TrySetBooked relies on the row lock taken by UPDATE: a concurrent
// attempt on the same spot waits, then re-evaluates is_booked and matches
// nothing.
func (q queries) TrySetBooked(ctx context.Context, spotID int64) (bool, error) {
	query := `
		UPDATE parking_spots
		SET is_booked = TRUE
		WHERE id = $1 AND is_booked = FALSE`

	result, err := q.q.ExecContext(ctx, query, spotID)
	if err != nil {
		return false, fmt.Errorf("failed to reserve spot: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to reserve spot: %w", err)
	}

	return rowsAffected == 1, nil
}

func (q queries) InsertBooking(ctx context.Context, spotID int64, hours int, cost float64, createdAt time.Time) (int64, error) {
	query := `
		INSERT INTO bookings (spot_id, hours, total_cost, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	err := q.q.QueryRowContext(ctx, query, spotID, hours, cost, createdAt).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == codeUniqueViolation {
			return 0, storage.ErrSpotAlreadyBooked
		}
		return 0, fmt.Errorf("failed to create booking: %w", err)
	}

	return id, nil
}

func (q queries) listSpots(ctx context.Context, query string, args ...any) ([]models.ParkingSpot, error) {
	rows, err := q.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get spots: %w", err)
	}
	defer rows.Close()

	spots := []models.ParkingSpot{}
	for rows.Next() {
		spot, err := scanSpot(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan spot: %w", err)
		}
		spots = append(spots, *spot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating spots: %w", err)
	}

	return spots, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSpot(row scanner) (*models.ParkingSpot, error) {
	var (
		spot   models.ParkingSpot
		booked bool
	)

	err := row.Scan(
		&spot.ID,
		&spot.HostID,
		&spot.Location,
		&spot.AvailableFrom,
		&spot.AvailableTo,
		&booked,
	)
	if err != nil {
		return nil, err
	}

	spot.State = models.SpotStateFree
	if booked {
		spot.State = models.SpotStateBooked
	}

	return &spot, nil
}
