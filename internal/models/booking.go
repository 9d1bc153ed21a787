package models

import "time"

type Booking struct {
	ID        int64     `json:"id"`
	SpotID    int64     `json:"spot_id"`
	Hours     int       `json:"hours"`
	TotalCost float64   `json:"total_cost"`
	CreatedAt time.Time `json:"created_at"`
}
