package main

import (
	"context"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/alorle/iptv-curator/config"
	"github.com/alorle/iptv-curator/internal/adapter/driven"
	"github.com/alorle/iptv-curator/internal/adapter/driver"
	"github.com/alorle/iptv-curator/internal/api"
	"github.com/alorle/iptv-curator/internal/application"
	"github.com/alorle/iptv-curator/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	// Create structured logger
	logger := logging.New(logging.ParseLevel(cfg.LogLevel), os.Stdout)
	slog.SetDefault(logger)

	l, err := cfg.Lineup()
	if err != nil {
		log.Fatalf("failed to load lineup: %v", err)
	}

	logger.Info("starting iptv-curator",
		"addr", net.JoinHostPort(cfg.HTTP.Address, cfg.HTTP.Port),
		"source_url", cfg.Source.URL,
		"matching_mode", cfg.MatchMode().String(),
		"lineup_file", cfg.LineupFile,
		"languages", len(l.Languages),
		"selectors", l.SelectorCount(),
		"log_level", cfg.LogLevel,
	)

	doc, err := api.GetSwagger()
	if err != nil {
		log.Fatalf("failed to load API document: %v", err)
	}

	// Create driven adapters
	source := driven.NewPlaylistHTTPSource(cfg.Source.URL, &http.Client{Timeout: cfg.Source.Timeout}, cfg.Source.MaxBytes)

	// Create application services
	curationService := application.NewCurationService(source, l, cfg.MatchMode())

	// Create HTTP handlers
	playlistHandler := driver.NewPlaylistHTTPHandler(curationService, cfg.Output.Filename)
	healthHandler := driver.NewHealthHTTPHandler()
	documentationHandler := driver.NewDocumentationHTTPHandler(doc)

	// The playlist is served on every path that is not claimed below
	rootMux := http.NewServeMux()
	rootMux.Handle("/health", healthHandler)
	rootMux.Handle("/metrics", promhttp.Handler())
	rootMux.Handle("/openapi.json", documentationHandler)
	rootMux.Handle("/playlist.m3u", playlistHandler)
	rootMux.Handle("/", playlistHandler)

	// Create HTTP server
	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.HTTP.Address, cfg.HTTP.Port),
		Handler:      logging.RequestLogger(logger, rootMux),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("http server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutdown signal received, shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	logger.Info("server stopped")
}
