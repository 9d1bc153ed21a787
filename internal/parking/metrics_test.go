package parking

import (
	"context"
	"errors"
	"fmt"
	"parkingBooker/internal/config"
	"parkingBooker/internal/storage"
	"parkingBooker/internal/storage/badger"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRecordOutcomes(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	store, err := badger.Open(&config.Badger{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	hostID, err := store.InsertHost(ctx, "Carol", "A", 2)
	require.NoError(t, err)
	spotID, err := store.InsertSpot(ctx, hostID, "A", time.Now(), time.Now().Add(time.Hour))
	require.NoError(t, err)

	m := NewMetrics(prometheus.NewRegistry())
	engine := NewEngine(store, m)
	planner := NewPlanner(NewRegistry(store), m)

	_, err = planner.Search(ctx, "A")
	require.NoError(t, err)

	_, _ = engine.Book(ctx, spotID, 0, 1)
	_, _ = engine.Book(ctx, spotID, 1, 1)
	_, _ = engine.Book(ctx, spotID, 1, 1)
	_, _ = engine.Book(ctx, spotID+1, 1, 1)

	_, err = planner.Search(ctx, "A")
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookings.WithLabelValues(outcomeInvalidHours)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookings.WithLabelValues(outcomeBooked)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookings.WithLabelValues(outcomeAlreadyBooked)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookings.WithLabelValues(outcomeNotFound)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.bookings.WithLabelValues(outcomeError)))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.searches.WithLabelValues(string(StatusAvailable))))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.searches.WithLabelValues(string(StatusRerouted))))
}

func TestNilMetrics(t *testing.T) {
	t.Parallel()

	var m *Metrics

	assert.NotPanics(t, func() {
		m.booked(nil)
		m.searched(StatusAvailable)
	})
}

func TestBookedOutcome(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		err     error
		outcome string
	}{
		{name: "success", err: nil, outcome: outcomeBooked},
		{name: "invalid hours", err: fmt.Errorf("op: %w", ErrInvalidHours), outcome: outcomeInvalidHours},
		{name: "already booked", err: fmt.Errorf("op: %w", storage.ErrSpotAlreadyBooked), outcome: outcomeAlreadyBooked},
		{name: "spot not found", err: fmt.Errorf("op: %w", storage.ErrSpotNotFound), outcome: outcomeNotFound},
		{name: "host not found", err: storage.ErrHostNotFound, outcome: outcomeError},
		{name: "storage failure", err: errors.New("disk full"), outcome: outcomeError},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			m := NewMetrics(prometheus.NewRegistry())
			m.booked(tc.err)

			assert.Equal(t, 1.0, testutil.ToFloat64(m.bookings.WithLabelValues(tc.outcome)))
		})
	}
}
