package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fakhrymubarak/sunset-scan-api/internal/cache"
	"github.com/fakhrymubarak/sunset-scan-api/internal/config"
	"github.com/fakhrymubarak/sunset-scan-api/internal/handler"
	"github.com/fakhrymubarak/sunset-scan-api/internal/middleware"
	"github.com/fakhrymubarak/sunset-scan-api/internal/repository"
	"github.com/fakhrymubarak/sunset-scan-api/internal/service"
)

func serverTimeout(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(config.GetServerTimeout(key))
	if err != nil {
		return def
	}
	return d
}

func main() {
	logger := config.GetLogger()
	defer func() { _ = logger.Sync() }()

	// One cache per process; it lives exactly as long as the server.
	forecastCache := cache.New(config.GetCacheCellSize(), config.GetCacheTTL())
	forecastRepo := repository.NewForecastRepository(forecastCache)
	forecastService := service.NewForecastService(forecastRepo)
	forecastHandler := handler.NewForecastHandler(forecastService)

	mux := http.NewServeMux()
	mux.HandleFunc("/forecast", forecastHandler.HandleForecast)
	mux.HandleFunc("/scan", forecastHandler.HandleScan)

	middleware.StartRateLimiterCleanup()

	port := config.GetServerPort()
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           middleware.RateLimitMiddleware(mux),
		ReadHeaderTimeout: serverTimeout("read_header_timeout", 15*time.Second),
		ReadTimeout:       serverTimeout("read_timeout", 15*time.Second),
		WriteTimeout:      serverTimeout("write_timeout", 30*time.Second),
		IdleTimeout:       serverTimeout("idle_timeout", 60*time.Second),
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Infow("Sunset scan API server running", "port", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalw("server error", "error", err)
		}
	}()

	<-stop
	logger.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorw("error during shutdown", "error", err)
	}
	logger.Info("shutdown complete")
}
