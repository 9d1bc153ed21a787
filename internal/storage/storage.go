package storage

import (
	"context"
	"errors"
	"parkingBooker/internal/models"
	"time"
)

var (
	ErrHostNotFound      = errors.New("host not found")
	ErrSpotNotFound      = errors.New("spot not found")
	ErrSpotAlreadyBooked = errors.New("spot already booked")

	// ErrTxConflict is returned by WithinTx when a concurrent transaction
	// committed a write to a key this one read. Nothing was applied.
	ErrTxConflict = errors.New("transaction conflict")
)

// SpotStore is the part of the store that owns spot booking state.
// TrySetBooked flips a spot from free to booked and reports whether it did;
// it returns false without error when the spot is missing or already booked.
type SpotStore interface {
	GetSpot(ctx context.Context, spotID int64) (*models.ParkingSpot, error)
	ListFreeSpots(ctx context.Context, location string) ([]models.ParkingSpot, error)
	ListFreeSpotsExcluding(ctx context.Context, location string) ([]models.ParkingSpot, error)
	TrySetBooked(ctx context.Context, spotID int64) (bool, error)
}

// Tx is a unit of work. Everything done through it commits or rolls back
// together.
type Tx interface {
	SpotStore
	InsertBooking(ctx context.Context, spotID int64, hours int, cost float64, createdAt time.Time) (int64, error)
}

type Store interface {
	SpotStore
	InsertHost(ctx context.Context, name, location string, rate float64) (int64, error)
	GetHost(ctx context.Context, hostID int64) (*models.Host, error)
	InsertSpot(ctx context.Context, hostID int64, location string, from, to time.Time) (int64, error)
	InsertBooking(ctx context.Context, spotID int64, hours int, cost float64, createdAt time.Time) (int64, error)
	ListBookingsBySpot(ctx context.Context, spotID int64) ([]models.Booking, error)
	SumBookingCostByHost(ctx context.Context, hostID int64) (float64, error)
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	Close() error
}
