package parking

import (
	"context"
	"fmt"
	"parkingBooker/internal/models"
)

type SearchStatus string

const (
	StatusAvailable SearchStatus = "AVAILABLE"
	StatusRerouted  SearchStatus = "REROUTED"
)

// SearchResult holds the free spots at the requested location when the
// status is StatusAvailable, and the free spots everywhere else when it is
// StatusRerouted. A rerouted result may carry no spots at all.
type SearchResult struct {
	Status SearchStatus
	Spots  []models.ParkingSpot
}

type Planner struct {
	registry *Registry
	metrics  *Metrics
}

func NewPlanner(registry *Registry, metrics *Metrics) *Planner {
	return &Planner{registry: registry, metrics: metrics}
}

func (p *Planner) Search(ctx context.Context, location string) (*SearchResult, error) {
	const op = "parking.Planner.Search"

	spots, err := p.registry.ListFree(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(spots) > 0 {
		p.metrics.searched(StatusAvailable)
		return &SearchResult{Status: StatusAvailable, Spots: spots}, nil
	}

	suggested, err := p.registry.ListFreeExcluding(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	p.metrics.searched(StatusRerouted)

	return &SearchResult{Status: StatusRerouted, Spots: suggested}, nil
}
