package parking

import (
	"errors"
	"parkingBooker/internal/storage"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeBooked        = "booked"
	outcomeAlreadyBooked = "already_booked"
	outcomeNotFound      = "not_found"
	outcomeInvalidHours  = "invalid_hours"
	outcomeError         = "error"
)

// Metrics is optional; a nil *Metrics records nothing.
type Metrics struct {
	bookings *prometheus.CounterVec
	searches *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		bookings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "parking",
			Name:      "bookings_total",
			Help:      "Booking attempts by outcome.",
		}, []string{"outcome"}),
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "parking",
			Name:      "searches_total",
			Help:      "Spot searches by result status.",
		}, []string{"status"}),
	}

	reg.MustRegister(m.bookings, m.searches)

	return m
}

func (m *Metrics) booked(err error) {
	if m == nil {
		return
	}

	outcome := outcomeBooked
	switch {
	case err == nil:
	case errors.Is(err, ErrInvalidHours):
		outcome = outcomeInvalidHours
	case errors.Is(err, storage.ErrSpotAlreadyBooked):
		outcome = outcomeAlreadyBooked
	case errors.Is(err, storage.ErrSpotNotFound):
		outcome = outcomeNotFound
	default:
		outcome = outcomeError
	}

	m.bookings.WithLabelValues(outcome).Inc()
}

func (m *Metrics) searched(status SearchStatus) {
	if m == nil {
		return
	}

	m.searches.WithLabelValues(string(status)).Inc()
}
