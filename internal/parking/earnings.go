package parking

import (
	"context"
	"fmt"
)

type EarningsStore interface {
	SumBookingCostByHost(ctx context.Context, hostID int64) (float64, error)
}

type Aggregator struct {
	store EarningsStore
}

func NewAggregator(store EarningsStore) *Aggregator {
	return &Aggregator{store: store}
}

// TotalEarnings is zero for a host without bookings, including a host that
// does not exist.
func (a *Aggregator) TotalEarnings(ctx context.Context, hostID int64) (float64, error) {
	const op = "parking.Aggregator.TotalEarnings"

	total, err := a.store.SumBookingCostByHost(ctx, hostID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return total, nil
}
