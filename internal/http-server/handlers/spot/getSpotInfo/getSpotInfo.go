package getSpotInfo

import (
	"context"
	"errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"parkingBooker/internal/lib/api/response"
	"parkingBooker/internal/lib/logger/sl"
	"parkingBooker/internal/models"
	"parkingBooker/internal/storage"
	"strconv"
)

type SpotInfoResponse struct {
	response.Response
	Spot     *models.ParkingSpot `json:"spot"`
	Bookings []models.Booking    `json:"bookings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SpotGetter
type SpotGetter interface {
	SpotWithBookings(ctx context.Context, spotID int64) (*models.ParkingSpot, []models.Booking, error)
}

func New(log *slog.Logger, info SpotGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.spot.getSpotInfo.New"

		log := log.With(slog.String("op", op))

		spotIDStr := chi.URLParam(r, "id")
		if spotIDStr == "" {
			log.Error("spot id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("spot id is required"))
			return
		}

		spotID, err := strconv.ParseInt(spotIDStr, 10, 64)
		if err != nil {
			log.Error("invalid spot id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid spot id format"))
			return
		}

		log = log.With(slog.Int64("spot_id", spotID))

		spot, bookings, err := info.SpotWithBookings(r.Context(), spotID)
		if err != nil {
			log.Error("failed to get spot information", sl.Err(err))

			if errors.Is(err, storage.ErrSpotNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("spot not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get spot information"))
			return
		}

		log.Info("spot info successfully received")

		responseOK(w, r, spot, bookings)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, spot *models.ParkingSpot, bookings []models.Booking) {
	render.JSON(w, r, SpotInfoResponse{
		Response: response.OK(),
		Spot:     spot,
		Bookings: bookings,
	})
}
