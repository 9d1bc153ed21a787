package registerHost

import (
	"context"
	"errors"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"net/http"
	"parkingBooker/internal/lib/api/response"
	"parkingBooker/internal/lib/logger/sl"
)

type HostRequest struct {
	Name     string   `json:"name" validate:"required"`
	Location string   `json:"location" validate:"required"`
	Rate     *float64 `json:"rate" validate:"required,gte=0"`
}

type HostResponse struct {
	response.Response
	HostID int64 `json:"host_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=HostRegistrar
type HostRegistrar interface {
	RegisterHost(ctx context.Context, name, location string, rate float64) (int64, error)
}

func New(log *slog.Logger, hosts HostRegistrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.host.registerHost.New"

		log := log.With(
			slog.String("op", op),
		)

		var req HostRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("request body decoded",
			slog.String("name", req.Name),
			slog.String("location", req.Location),
		)

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		hostID, err := hosts.RegisterHost(r.Context(), req.Name, req.Location, *req.Rate)
		if err != nil {
			log.Error("failed to register host", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to register host"))

			return
		}

		log.Info("host registered", slog.Int64("id", hostID))

		responseOK(w, r, hostID)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, hostID int64) {
	render.JSON(w, r, HostResponse{
		Response: response.OK(),
		HostID:   hostID,
	})
}
