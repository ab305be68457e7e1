package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/Hlavtox/ps-facetedsearch/internal/config"
	"github.com/Hlavtox/ps-facetedsearch/internal/pkg/logger"
	"github.com/Hlavtox/ps-facetedsearch/internal/services"
	httptransport "github.com/Hlavtox/ps-facetedsearch/internal/transport/http"
)

func main() {
	if err := run(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("failed to run server")
	}
}

func run() error {
	ctx := context.Background()

	cfg := config.Load()
	logger.Init("faceted-search", cfg.Dev)
	logger.SetLevel(cfg.LogLevel)

	logger.Logger.Info().
		Str("spanner_database", cfg.SpannerDB).
		Str("http_port", cfg.HTTPPort).
		Msg("starting faceted search service")

	serviceOpts, err := services.NewServiceOptions(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}
	defer serviceOpts.Close()

	router := mux.NewRouter()
	router.Handle("/api/v1/search", serviceOpts.SearchHandler).Methods(http.MethodGet)
	router.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "ok")
	}).Methods(http.MethodGet)

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: httptransport.RequestID(httptransport.AccessLog(router)),
	}

	go func() {
		logger.Logger.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Error().Err(err).Msg("HTTP server error")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.Logger.Info().Msg("shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown: %w", err)
	}

	return nil
}
