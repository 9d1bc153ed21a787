package parking

import (
	"context"
	"errors"
	"fmt"
	"parkingBooker/internal/models"
	"parkingBooker/internal/storage"
	"time"
)

var ErrInvalidHours = errors.New("hours must be positive")

type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx storage.Tx) error) error
}

type Engine struct {
	store   TxRunner
	metrics *Metrics
	now     func() time.Time
}

type Option func(e *Engine)

// WithClock replaces time.Now as the source of booking timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

func NewEngine(store TxRunner, metrics *Metrics, opts ...Option) *Engine {
	e := &Engine{store: store, metrics: metrics, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Book reserves the spot and records the booking in one transaction, so a
// failed insert leaves the spot free. The cost is hours times the rate given
// by the caller, not the host's stored rate.
func (e *Engine) Book(ctx context.Context, spotID int64, hours int, rate float64) (booking *models.Booking, err error) {
	const op = "parking.Engine.Book"

	defer func() { e.metrics.booked(err) }()

	if hours <= 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidHours)
	}

	err = e.store.WithinTx(ctx, func(ctx context.Context, tx storage.Tx) error {
		spot, err := NewRegistry(tx).Reserve(ctx, spotID)
		if err != nil {
			return err
		}

		b := models.Booking{
			SpotID:    spot.ID,
			Hours:     hours,
			TotalCost: float64(hours) * rate,
			CreatedAt: e.now().UTC(),
		}

		b.ID, err = tx.InsertBooking(ctx, b.SpotID, b.Hours, b.TotalCost, b.CreatedAt)
		if err != nil {
			return err
		}

		booking = &b

		return nil
	})
	if errors.Is(err, storage.ErrTxConflict) {
		// a booking transaction reads no key other than the spot
		err = storage.ErrSpotAlreadyBooked
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return booking, nil
}
