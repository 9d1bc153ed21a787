package parking

import (
	"context"
	"fmt"
	"parkingBooker/internal/models"
	"time"
)

type HostStore interface {
	InsertHost(ctx context.Context, name, location string, rate float64) (int64, error)
	GetHost(ctx context.Context, hostID int64) (*models.Host, error)
	InsertSpot(ctx context.Context, hostID int64, location string, from, to time.Time) (int64, error)
	GetSpot(ctx context.Context, spotID int64) (*models.ParkingSpot, error)
	ListBookingsBySpot(ctx context.Context, spotID int64) ([]models.Booking, error)
}

// Directory registers hosts and the spots they offer.
type Directory struct {
	store HostStore
}

func NewDirectory(store HostStore) *Directory {
	return &Directory{store: store}
}

func (d *Directory) RegisterHost(ctx context.Context, name, location string, rate float64) (int64, error) {
	const op = "parking.Directory.RegisterHost"

	id, err := d.store.InsertHost(ctx, name, location, rate)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

// AddSpot creates a free spot owned by hostID. The availability window is
// stored as given.
func (d *Directory) AddSpot(ctx context.Context, hostID int64, location string, from, to time.Time) (int64, error) {
	const op = "parking.Directory.AddSpot"

	if _, err := d.store.GetHost(ctx, hostID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	id, err := d.store.InsertSpot(ctx, hostID, location, from, to)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (d *Directory) SpotWithBookings(ctx context.Context, spotID int64) (*models.ParkingSpot, []models.Booking, error) {
	const op = "parking.Directory.SpotWithBookings"

	spot, err := d.store.GetSpot(ctx, spotID)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	bookings, err := d.store.ListBookingsBySpot(ctx, spotID)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return spot, bookings, nil
}
