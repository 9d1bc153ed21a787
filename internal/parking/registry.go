package parking

import (
	"context"
	"fmt"
	"parkingBooker/internal/models"
	"parkingBooker/internal/storage"
)

// Registry is the only component that flips a spot from free to booked.
type Registry struct {
	spots storage.SpotStore
}

// NewRegistry binds a registry to a store or to a single transaction.
func NewRegistry(spots storage.SpotStore) *Registry {
	return &Registry{spots: spots}
}

func (r *Registry) GetSpot(ctx context.Context, spotID int64) (*models.ParkingSpot, error) {
	const op = "parking.Registry.GetSpot"

	spot, err := r.spots.GetSpot(ctx, spotID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return spot, nil
}

func (r *Registry) ListFree(ctx context.Context, location string) ([]models.ParkingSpot, error) {
	const op = "parking.Registry.ListFree"

	spots, err := r.spots.ListFreeSpots(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return spots, nil
}

func (r *Registry) ListFreeExcluding(ctx context.Context, location string) ([]models.ParkingSpot, error) {
	const op = "parking.Registry.ListFreeExcluding"

	spots, err := r.spots.ListFreeSpotsExcluding(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return spots, nil
}

// Reserve atomically marks the spot booked and returns it. It fails with
// storage.ErrSpotAlreadyBooked or storage.ErrSpotNotFound without changing
// anything.
func (r *Registry) Reserve(ctx context.Context, spotID int64) (*models.ParkingSpot, error) {
	const op = "parking.Registry.Reserve"

	ok, err := r.spots.TrySetBooked(ctx, spotID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	spot, err := r.spots.GetSpot(ctx, spotID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrSpotAlreadyBooked)
	}

	return spot, nil
}
