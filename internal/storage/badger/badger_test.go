package badger

import (
	"context"
	"errors"
	"parkingBooker/internal/config"
	"parkingBooker/internal/models"
	"parkingBooker/internal/storage"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	s, err := Open(&config.Badger{InMemory: true})
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})

	return s
}

func TestHostsAndSpots(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStorage(t)

	from := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	to := from.Add(8 * time.Hour)

	_, err := s.InsertSpot(ctx, 1, "A", from, to)
	assert.ErrorIs(t, err, storage.ErrHostNotFound)

	_, err = s.GetHost(ctx, 1)
	assert.ErrorIs(t, err, storage.ErrHostNotFound)

	hostID, err := s.InsertHost(ctx, "Dave", "A", 1.25)
	require.NoError(t, err)
	assert.Equal(t, int64(1), hostID)

	host, err := s.GetHost(ctx, hostID)
	require.NoError(t, err)
	assert.Equal(t, &models.Host{ID: hostID, Name: "Dave", Location: "A", Rate: 1.25}, host)

	first, err := s.InsertSpot(ctx, hostID, "A", from, to)
	require.NoError(t, err)
	second, err := s.InsertSpot(ctx, hostID, "B", from, to)
	require.NoError(t, err)
	assert.Equal(t, first+1, second)

	spot, err := s.GetSpot(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, models.SpotStateFree, spot.State)
	assert.Equal(t, "A", spot.Location)

	_, err = s.GetSpot(ctx, 999)
	assert.ErrorIs(t, err, storage.ErrSpotNotFound)

	free, err := s.ListFreeSpots(ctx, "A")
	require.NoError(t, err)
	require.Len(t, free, 1)
	assert.Equal(t, first, free[0].ID)

	others, err := s.ListFreeSpotsExcluding(ctx, "A")
	require.NoError(t, err)
	require.Len(t, others, 1)
	assert.Equal(t, second, others[0].ID)
}

func TestTrySetBooked(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStorage(t)

	hostID, err := s.InsertHost(ctx, "Eve", "A", 1)
	require.NoError(t, err)
	spotID, err := s.InsertSpot(ctx, hostID, "A", time.Now(), time.Now())
	require.NoError(t, err)

	ok, err := s.TrySetBooked(ctx, spotID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.TrySetBooked(ctx, spotID)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.TrySetBooked(ctx, spotID+1)
	require.NoError(t, err)
	assert.False(t, ok)

	free, err := s.ListFreeSpots(ctx, "A")
	require.NoError(t, err)
	assert.Empty(t, free)
}

func TestWithinTx(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStorage(t)

	hostID, err := s.InsertHost(ctx, "Frank", "A", 1)
	require.NoError(t, err)
	spotID, err := s.InsertSpot(ctx, hostID, "A", time.Now(), time.Now())
	require.NoError(t, err)

	errAbort := errors.New("abort")

	err = s.WithinTx(ctx, func(ctx context.Context, tx storage.Tx) error {
		ok, err := tx.TrySetBooked(ctx, spotID)
		require.NoError(t, err)
		require.True(t, ok)

		spot, err := tx.GetSpot(ctx, spotID)
		require.NoError(t, err)
		assert.Equal(t, models.SpotStateBooked, spot.State)

		_, err = tx.InsertBooking(ctx, spotID, 1, 1, time.Now())
		require.NoError(t, err)

		return errAbort
	})
	assert.ErrorIs(t, err, errAbort)

	spot, err := s.GetSpot(ctx, spotID)
	require.NoError(t, err)
	assert.Equal(t, models.SpotStateFree, spot.State)

	bookings, err := s.ListBookingsBySpot(ctx, spotID)
	require.NoError(t, err)
	assert.Empty(t, bookings)

	err = s.WithinTx(ctx, func(ctx context.Context, tx storage.Tx) error {
		if _, err := tx.TrySetBooked(ctx, spotID); err != nil {
			return err
		}
		_, err := tx.InsertBooking(ctx, spotID, 4, 10, time.Now())
		return err
	})
	require.NoError(t, err)

	bookings, err = s.ListBookingsBySpot(ctx, spotID)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, 4, bookings[0].Hours)
	assert.Equal(t, 10.0, bookings[0].TotalCost)
}

func TestWithinTxConflict(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStorage(t)

	hostID, err := s.InsertHost(ctx, "Grace", "A", 1)
	require.NoError(t, err)
	spotID, err := s.InsertSpot(ctx, hostID, "A", time.Now(), time.Now())
	require.NoError(t, err)

	err = s.WithinTx(ctx, func(ctx context.Context, tx storage.Tx) error {
		ok, err := tx.TrySetBooked(ctx, spotID)
		require.NoError(t, err)
		require.True(t, ok)

		// a second reservation commits while this one is still open
		ok, err = s.TrySetBooked(ctx, spotID)
		require.NoError(t, err)
		require.True(t, ok)

		return nil
	})
	assert.ErrorIs(t, err, storage.ErrTxConflict)
}

func TestSumBookingCostByHost(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStorage(t)

	h1, err := s.InsertHost(ctx, "H1", "A", 1)
	require.NoError(t, err)
	h2, err := s.InsertHost(ctx, "H2", "B", 1)
	require.NoError(t, err)

	s1, err := s.InsertSpot(ctx, h1, "A", time.Now(), time.Now())
	require.NoError(t, err)
	s2, err := s.InsertSpot(ctx, h1, "A", time.Now(), time.Now())
	require.NoError(t, err)
	s3, err := s.InsertSpot(ctx, h2, "B", time.Now(), time.Now())
	require.NoError(t, err)

	for spotID, cost := range map[int64]float64{s1: 5, s2: 7.5, s3: 3} {
		_, err = s.InsertBooking(ctx, spotID, 1, cost, time.Now())
		require.NoError(t, err)
	}

	total, err := s.SumBookingCostByHost(ctx, h1)
	require.NoError(t, err)
	assert.Equal(t, 12.5, total)

	total, err = s.SumBookingCostByHost(ctx, h2)
	require.NoError(t, err)
	assert.Equal(t, 3.0, total)

	total, err = s.SumBookingCostByHost(ctx, 42)
	require.NoError(t, err)
	assert.Zero(t, total)
}
