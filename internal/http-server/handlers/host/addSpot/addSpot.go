package addSpot

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
	"parkingBooker/internal/storage"
	"strconv"
	"time"
)

type SpotRequest struct {
	Location      string    `json:"location" validate:"required"`
	AvailableFrom time.Time `json:"available_from" validate:"required"`
	AvailableTo   time.Time `json:"available_to" validate:"required,gtfield=AvailableFrom"`
}

type SpotResponse struct {
	response.Response
	SpotID int64 `json:"spot_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SpotAdder
type SpotAdder interface {
	AddSpot(ctx context.Context, hostID int64, location string, from, to time.Time) (int64, error)
}

func New(log *slog.Logger, spots SpotAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.host.addSpot.New"

		log := log.With(slog.String("op", op))

		hostIDStr := chi.URLParam(r, "id")
		if hostIDStr == "" {
			log.Error("host id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("host id is required"))
			return
		}

		hostID, err := strconv.ParseInt(hostIDStr, 10, 64)
		if err != nil {
			log.Error("invalid host id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid host id format"))
			return
		}

		log = log.With(slog.Int64("host_id", hostID))

		var req SpotRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		spotID, err := spots.AddSpot(r.Context(), hostID, req.Location, req.AvailableFrom, req.AvailableTo)
		if err != nil {
			log.Error("failed to add spot", sl.Err(err))

			if errors.Is(err, storage.ErrHostNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("host not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to add spot"))
			return
		}

		log.Info("spot added", slog.Int64("id", spotID))

		responseOK(w, r, spotID)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, spotID int64) {
	render.JSON(w, r, SpotResponse{
		Response: response.OK(),
		SpotID:   spotID,
	})
}
