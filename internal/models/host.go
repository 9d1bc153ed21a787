package models

type Host struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Rate     float64 `json:"rate"`
}
