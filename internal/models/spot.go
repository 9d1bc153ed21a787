package models

import "time"

type SpotState string

const (
	SpotStateFree   SpotState = "free"
	SpotStateBooked SpotState = "booked"
)

// ParkingSpot is booked at most once. AvailableFrom and AvailableTo are
// carried for display and are not checked against booking time.
type ParkingSpot struct {
	ID            int64     `json:"id"`
	HostID        int64     `json:"host_id"`
	Location      string    `json:"location"`
	AvailableFrom time.Time `json:"available_from"`
	AvailableTo   time.Time `json:"available_to"`
	State         SpotState `json:"state"`
}

func (s *ParkingSpot) IsFree() bool {
	return s.State == SpotStateFree
}
