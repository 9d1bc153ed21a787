package badger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"parkingBooker/internal/config"
	"parkingBooker/internal/models"
	"parkingBooker/internal/storage"
	"path/filepath"
	"strconv"
	"time"

	badgerdb "github.com/dgraph-io/badger/v4"
)

const (
	hostPrefix        = "host:"
	spotPrefix        = "spot:"
	bookingPrefix     = "booking:"
	spotBookingPrefix = "spot-booking:"

	sequenceBandwidth = 100
)

var (
	_ storage.Store = (*Storage)(nil)
	_ storage.Tx    = (*tx)(nil)
)

// Storage keeps hosts, spots and bookings as JSON values in Badger.
// Spot reservations use Badger's optimistic transactions: the spot key is
// read before it is written, so of two transactions racing on one spot
// the later commit fails with ErrConflict.
type Storage struct {
	db *badgerdb.DB

	hostSeq    *badgerdb.Sequence
	spotSeq    *badgerdb.Sequence
	bookingSeq *badgerdb.Sequence
}

type tx struct {
	txn *badgerdb.Txn
	s   *Storage
}

type spotRecord struct {
	ID            int64     `json:"id"`
	HostID        int64     `json:"host_id"`
	Location      string    `json:"location"`
	AvailableFrom time.Time `json:"available_from"`
	AvailableTo   time.Time `json:"available_to"`
	Booked        bool      `json:"booked"`
}

func (r *spotRecord) model() *models.ParkingSpot {
	state := models.SpotStateFree
	if r.Booked {
		state = models.SpotStateBooked
	}

	return &models.ParkingSpot{
		ID:            r.ID,
		HostID:        r.HostID,
		Location:      r.Location,
		AvailableFrom: r.AvailableFrom,
		AvailableTo:   r.AvailableTo,
		State:         state,
	}
}

func Open(cfg *config.Badger) (*Storage, error) {
	opts := badgerdb.DefaultOptions(filepath.Clean(cfg.Path))
	if cfg.InMemory {
		opts = badgerdb.DefaultOptions("").WithInMemory(true)
	}
	opts.Logger = nil

	db, err := badgerdb.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger: %w", err)
	}

	s := &Storage{db: db}

	for key, seq := range map[string]**badgerdb.Sequence{
		"seq:host":    &s.hostSeq,
		"seq:spot":    &s.spotSeq,
		"seq:booking": &s.bookingSeq,
	} {
		*seq, err = db.GetSequence([]byte(key), sequenceBandwidth)
		if err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("failed to get %s: %w", key, err)
		}
	}

	return s, nil
}

func (s *Storage) Close() error {
	var errs []error
	for _, seq := range []*badgerdb.Sequence{s.hostSeq, s.spotSeq, s.bookingSeq} {
		if seq != nil {
			errs = append(errs, seq.Release())
		}
	}
	errs = append(errs, s.db.Close())

	return errors.Join(errs...)
}

// WithinTx reports a commit conflict as storage.ErrTxConflict.
func (s *Storage) WithinTx(ctx context.Context, fn func(ctx context.Context, tx storage.Tx) error) error {
	err := s.db.Update(func(txn *badgerdb.Txn) error {
		return fn(ctx, &tx{txn: txn, s: s})
	})
	if errors.Is(err, badgerdb.ErrConflict) {
		return storage.ErrTxConflict
	}

	return err
}

func (s *Storage) InsertHost(_ context.Context, name, location string, rate float64) (int64, error) {
	id, err := nextID(s.hostSeq)
	if err != nil {
		return 0, fmt.Errorf("failed to create host: %w", err)
	}

	host := models.Host{ID: id, Name: name, Location: location, Rate: rate}

	err = s.db.Update(func(txn *badgerdb.Txn) error {
		return setJSON(txn, key(hostPrefix, id), host)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create host: %w", err)
	}

	return id, nil
}

func (s *Storage) GetHost(_ context.Context, hostID int64) (*models.Host, error) {
	var host models.Host

	err := s.db.View(func(txn *badgerdb.Txn) error {
		return getJSON(txn, key(hostPrefix, hostID), &host)
	})
	if err != nil {
		if errors.Is(err, badgerdb.ErrKeyNotFound) {
			return nil, storage.ErrHostNotFound
		}
		return nil, fmt.Errorf("failed to get host: %w", err)
	}

	return &host, nil
}

func (s *Storage) InsertSpot(_ context.Context, hostID int64, location string, from, to time.Time) (int64, error) {
	id, err := nextID(s.spotSeq)
	if err != nil {
		return 0, fmt.Errorf("failed to create spot: %w", err)
	}

	err = s.db.Update(func(txn *badgerdb.Txn) error {
		if _, err := txn.Get(key(hostPrefix, hostID)); err != nil {
			return err
		}

		return setJSON(txn, key(spotPrefix, id), spotRecord{
			ID:            id,
			HostID:        hostID,
			Location:      location,
			AvailableFrom: from,
			AvailableTo:   to,
		})
	})
	if err != nil {
		if errors.Is(err, badgerdb.ErrKeyNotFound) {
			return 0, storage.ErrHostNotFound
		}
		return 0, fmt.Errorf("failed to create spot: %w", err)
	}

	return id, nil
}

func (s *Storage) GetSpot(ctx context.Context, spotID int64) (spot *models.ParkingSpot, err error) {
	err = s.db.View(func(txn *badgerdb.Txn) error {
		spot, err = (&tx{txn: txn, s: s}).GetSpot(ctx, spotID)
		return err
	})

	return spot, err
}

func (s *Storage) ListFreeSpots(ctx context.Context, location string) (spots []models.ParkingSpot, err error) {
	err = s.db.View(func(txn *badgerdb.Txn) error {
		spots, err = (&tx{txn: txn, s: s}).ListFreeSpots(ctx, location)
		return err
	})

	return spots, err
}

func (s *Storage) ListFreeSpotsExcluding(ctx context.Context, location string) (spots []models.ParkingSpot, err error) {
	err = s.db.View(func(txn *badgerdb.Txn) error {
		spots, err = (&tx{txn: txn, s: s}).ListFreeSpotsExcluding(ctx, location)
		return err
	})

	return spots, err
}

// TrySetBooked outside a transaction treats a lost race like a spot that
// was already booked.
func (s *Storage) TrySetBooked(ctx context.Context, spotID int64) (booked bool, err error) {
	err = s.db.Update(func(txn *badgerdb.Txn) error {
		booked, err = (&tx{txn: txn, s: s}).TrySetBooked(ctx, spotID)
		return err
	})
	if errors.Is(err, badgerdb.ErrConflict) {
		return false, nil
	}

	return booked, err
}

func (s *Storage) InsertBooking(ctx context.Context, spotID int64, hours int, cost float64, createdAt time.Time) (id int64, err error) {
	err = s.db.Update(func(txn *badgerdb.Txn) error {
		id, err = (&tx{txn: txn, s: s}).InsertBooking(ctx, spotID, hours, cost, createdAt)
		return err
	})

	return id, err
}

func (s *Storage) ListBookingsBySpot(_ context.Context, spotID int64) ([]models.Booking, error) {
	bookings := []models.Booking{}

	err := s.db.View(func(txn *badgerdb.Txn) error {
		prefix := []byte(spotBookingPrefix + strconv.FormatInt(spotID, 10) + ":")

		it := txn.NewIterator(prefixOptions(prefix))
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var bookingID int64
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &bookingID)
			}); err != nil {
				return err
			}

			var booking models.Booking
			if err := getJSON(txn, key(bookingPrefix, bookingID), &booking); err != nil {
				return err
			}
			bookings = append(bookings, booking)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	return bookings, nil
}

func (s *Storage) SumBookingCostByHost(_ context.Context, hostID int64) (float64, error) {
	var earnings float64

	err := s.db.View(func(txn *badgerdb.Txn) error {
		owners := make(map[int64]int64)

		it := txn.NewIterator(prefixOptions([]byte(bookingPrefix)))
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var booking models.Booking
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &booking)
			}); err != nil {
				return err
			}

			owner, ok := owners[booking.SpotID]
			if !ok {
				var spot spotRecord
				if err := getJSON(txn, key(spotPrefix, booking.SpotID), &spot); err != nil {
					return err
				}
				owner = spot.HostID
				owners[booking.SpotID] = owner
			}

			if owner == hostID {
				earnings += booking.TotalCost
			}
		}

		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to sum earnings: %w", err)
	}

	return earnings, nil
}

func (t *tx) GetSpot(_ context.Context, spotID int64) (*models.ParkingSpot, error) {
	var rec spotRecord

	if err := getJSON(t.txn, key(spotPrefix, spotID), &rec); err != nil {
		if errors.Is(err, badgerdb.ErrKeyNotFound) {
			return nil, storage.ErrSpotNotFound
		}
		return nil, fmt.Errorf("failed to get spot: %w", err)
	}

	return rec.model(), nil
}

func (t *tx) ListFreeSpots(_ context.Context, location string) ([]models.ParkingSpot, error) {
	return t.listSpots(func(spot *models.ParkingSpot) bool {
		return spot.IsFree() && spot.Location == location
	})
}

func (t *tx) ListFreeSpotsExcluding(_ context.Context, location string) ([]models.ParkingSpot, error) {
	return t.listSpots(func(spot *models.ParkingSpot) bool {
		return spot.IsFree() && spot.Location != location
	})
}

func (t *tx) TrySetBooked(_ context.Context, spotID int64) (bool, error) {
	var rec spotRecord

	k := key(spotPrefix, spotID)
	if err := getJSON(t.txn, k, &rec); err != nil {
		if errors.Is(err, badgerdb.ErrKeyNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to reserve spot: %w", err)
	}

	if !rec.model().IsFree() {
		return false, nil
	}

	rec.Booked = true
	if err := setJSON(t.txn, k, rec); err != nil {
		return false, fmt.Errorf("failed to reserve spot: %w", err)
	}

	return true, nil
}

func (t *tx) InsertBooking(_ context.Context, spotID int64, hours int, cost float64, createdAt time.Time) (int64, error) {
	id, err := nextID(t.s.bookingSeq)
	if err != nil {
		return 0, fmt.Errorf("failed to create booking: %w", err)
	}

	booking := models.Booking{
		ID:        id,
		SpotID:    spotID,
		Hours:     hours,
		TotalCost: cost,
		CreatedAt: createdAt,
	}

	if err = setJSON(t.txn, key(bookingPrefix, id), booking); err != nil {
		return 0, fmt.Errorf("failed to create booking: %w", err)
	}

	index := []byte(spotBookingPrefix + strconv.FormatInt(spotID, 10) + ":" + strconv.FormatInt(id, 10))
	if err = setJSON(t.txn, index, id); err != nil {
		return 0, fmt.Errorf("failed to create booking: %w", err)
	}

	return id, nil
}

func (t *tx) listSpots(keep func(spot *models.ParkingSpot) bool) ([]models.ParkingSpot, error) {
	spots := []models.ParkingSpot{}

	it := t.txn.NewIterator(prefixOptions([]byte(spotPrefix)))
	defer it.Close()

	for it.Rewind(); it.Valid(); it.Next() {
		var rec spotRecord
		if err := it.Item().Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		}); err != nil {
			return nil, fmt.Errorf("failed to scan spot: %w", err)
		}

		if spot := rec.model(); keep(spot) {
			spots = append(spots, *spot)
		}
	}

	return spots, nil
}

// nextID skips zero so that ids start at 1 as they do in PostgreSQL.
func nextID(seq *badgerdb.Sequence) (int64, error) {
	n, err := seq.Next()
	if err != nil {
		return 0, err
	}

	return int64(n) + 1, nil
}

func prefixOptions(prefix []byte) badgerdb.IteratorOptions {
	opts := badgerdb.DefaultIteratorOptions
	opts.Prefix = prefix

	return opts
}

func key(prefix string, id int64) []byte {
	return []byte(fmt.Sprintf("%s%020d", prefix, id))
}

func getJSON(txn *badgerdb.Txn, k []byte, v any) error {
	item, err := txn.Get(k)
	if err != nil {
		return err
	}

	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, v)
	})
}

func setJSON(txn *badgerdb.Txn, k []byte, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return txn.Set(k, data)
}
