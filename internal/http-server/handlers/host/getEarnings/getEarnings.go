package getEarnings

import (
	"context"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"parkingBooker/internal/lib/api/response"
	"parkingBooker/internal/lib/logger/sl"
	"strconv"
)

type EarningsResponse struct {
	response.Response
	HostID        int64   `json:"host_id"`
	TotalEarnings float64 `json:"total_earnings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EarningsGetter
type EarningsGetter interface {
	TotalEarnings(ctx context.Context, hostID int64) (float64, error)
}

func New(log *slog.Logger, earnings EarningsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.host.getEarnings.New"

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

		total, err := earnings.TotalEarnings(r.Context(), hostID)
		if err != nil {
			log.Error("failed to get earnings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get earnings"))
			return
		}

		log.Info("earnings retrieved", slog.Int64("host_id", hostID), slog.Float64("total", total))

		responseOK(w, r, hostID, total)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, hostID int64, total float64) {
	render.JSON(w, r, EarningsResponse{
		Response:      response.OK(),
		HostID:        hostID,
		TotalEarnings: total,
	})
}
