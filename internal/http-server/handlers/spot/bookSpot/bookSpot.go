package bookSpot

import (
	"context"
	"errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"net/http"
	"parkingBooker/internal/lib/api/response"
	"parkingBooker/internal/lib/logger/sl"
	"parkingBooker/internal/models"
	"parkingBooker/internal/parking"
	"parkingBooker/internal/storage"
	"strconv"
)

// BookingRequest leaves hours unchecked: a non-positive value is rejected
// by the booker itself. Rate must be present; zero is a valid rate.
type BookingRequest struct {
	Hours int      `json:"hours"`
	Rate  *float64 `json:"rate" validate:"required,gte=0"`
}

type BookingResponse struct {
	response.Response
	BookingID int64   `json:"booking_id"`
	TotalCost float64 `json:"total_cost"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SpotBooker
type SpotBooker interface {
	Book(ctx context.Context, spotID int64, hours int, rate float64) (*models.Booking, error)
}

func New(log *slog.Logger, booker SpotBooker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.spot.bookSpot.New"

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

		var req BookingRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Int("hours", req.Hours))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		booking, err := booker.Book(r.Context(), spotID, req.Hours, *req.Rate)
		if err != nil {
			log.Error("failed to book spot", sl.Err(err))

			switch {
			case errors.Is(err, parking.ErrInvalidHours):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("hours must be positive"))
			case errors.Is(err, storage.ErrSpotAlreadyBooked):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("spot already booked"))
			case errors.Is(err, storage.ErrSpotNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("spot not found"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to book spot"))
			}

			return
		}

		log.Info("spot booked successfully",
			slog.Int64("booking_id", booking.ID),
			slog.Float64("total_cost", booking.TotalCost),
		)

		responseOK(w, r, booking)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, booking *models.Booking) {
	render.JSON(w, r, BookingResponse{
		Response:  response.OK(),
		BookingID: booking.ID,
		TotalCost: booking.TotalCost,
	})
}
