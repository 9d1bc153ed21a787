package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"parkingBooker/internal/config"
	"parkingBooker/internal/http-server/handlers/host/addSpot"
	"parkingBooker/internal/http-server/handlers/host/getEarnings"
	"parkingBooker/internal/http-server/handlers/host/registerHost"
	"parkingBooker/internal/http-server/handlers/search"
	"parkingBooker/internal/http-server/handlers/spot/bookSpot"
	"parkingBooker/internal/http-server/handlers/spot/getSpotInfo"
	"parkingBooker/internal/http-server/middleware/mwlogger"
	"parkingBooker/internal/http-server/middleware/mwmetrics"
	"parkingBooker/internal/lib/logger/handlers/slogpretty"
	"parkingBooker/internal/lib/logger/sl"
	"parkingBooker/internal/parking"
	"parkingBooker/internal/storage"
	"parkingBooker/internal/storage/badger"
	"parkingBooker/internal/storage/postgres"
	"syscall"
	"time"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting parking booker",
		slog.String("env", cfg.Env),
		slog.String("storage", cfg.Storage.Driver),
	)
	log.Debug("Debug messages are enabled")

	store, err := setupStorage(cfg)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	metrics := parking.NewMetrics(reg)
	spots := parking.NewRegistry(store)
	planner := parking.NewPlanner(spots, metrics)
	engine := parking.NewEngine(store, metrics)
	aggregator := parking.NewAggregator(store)
	directory := parking.NewDirectory(store)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(mwmetrics.New(mwmetrics.NewMetrics(reg)))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	router.Post("/hosts", registerHost.New(log, directory))
	router.Post("/hosts/{id}/spots", addSpot.New(log, directory))
	router.Get("/hosts/{id}/earnings", getEarnings.New(log, aggregator))
	router.Get("/search", search.New(log, planner))
	router.Post("/spots/{id}/book", bookSpot.New(log, engine))
	router.Get("/spots/{id}", getSpotInfo.New(log, directory))

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = store.Close(); err != nil {
		log.Error("failed to close storage", sl.Err(err))
	}

	log.Info("storage closed")
}

func setupStorage(cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		s, err := postgres.InitDB(&cfg.Database)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.DriverBadger:
		s, err := badger.Open(&cfg.Badger)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
