package search

import (
	"context"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"parkingBooker/internal/lib/api/response"
	"parkingBooker/internal/lib/logger/sl"
	"parkingBooker/internal/models"
	"parkingBooker/internal/parking"
)

// The search status replaces the usual "OK" in the status field.
type AvailableResponse struct {
	Status parking.SearchStatus `json:"status"`
	Spots  []models.ParkingSpot `json:"spots"`
}

type ReroutedResponse struct {
	Status         parking.SearchStatus `json:"status"`
	SuggestedSpots []models.ParkingSpot `json:"suggested_spots"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SpotSearcher
type SpotSearcher interface {
	Search(ctx context.Context, location string) (*parking.SearchResult, error)
}

func New(log *slog.Logger, searcher SpotSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.search.New"

		log := log.With(slog.String("op", op))

		location := r.URL.Query().Get("location")
		if location == "" {
			log.Error("location is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("location is required"))
			return
		}

		log = log.With(slog.String("location", location))

		result, err := searcher.Search(r.Context(), location)
		if err != nil {
			log.Error("failed to search spots", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to search spots"))
			return
		}

		log.Info("search completed",
			slog.String("status", string(result.Status)),
			slog.Int("count", len(result.Spots)),
		)

		responseOK(w, r, result)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, result *parking.SearchResult) {
	spots := result.Spots
	if spots == nil {
		spots = []models.ParkingSpot{}
	}

	if result.Status == parking.StatusRerouted {
		render.JSON(w, r, ReroutedResponse{
			Status:         result.Status,
			SuggestedSpots: spots,
		})
		return
	}

	render.JSON(w, r, AvailableResponse{
		Status: result.Status,
		Spots:  spots,
	})
}
