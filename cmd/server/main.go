// Package main is the entry point for the metaforms server.
// It serves the form metadata registry to generic CRUD renderers.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "metaforms/internal/infrastructure/http/v1"
	"metaforms/internal/infrastructure/metrics"
	"metaforms/pkg/logger"
)

var version = "dev"

func main() {
	validate := flag.Bool("validate", false, "Validate the form catalog and exit")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("metaforms %s\n", version)
		os.Exit(0)
	}

	// Validate only mode
	if *validate {
		reg, err := loadRegistry(context.Background())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Catalog invalid: %v\n", err)
			os.Exit(1)
		}
		printSummary(os.Stdout, reg)
		os.Exit(0)
	}

	cfg := loadConfig()

	log, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Development: cfg.Development(),
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx := logger.WithLogger(context.Background(), log)
	log.Infow("starting metaforms server", "version", version)

	// --- Form registry ---
	regCtx := logger.WithLogger(ctx, log.WithComponent("registry"))
	registry, err := loadRegistry(regCtx)
	if err != nil {
		log.Fatalw("failed to build form registry", "error", err)
	}

	collector := metrics.New()
	collector.SetRegistrySize(registry.Len(), len(registry.Modules()))

	logger.Info(regCtx, "form registry initialized",
		"forms", registry.Len(),
		"modules", len(registry.Modules()),
	)

	// --- Router ---
	handler := v1.NewHandler(v1.RouterConfig{
		Registry: registry,
		Logger:   log.WithComponent("http"),
		Metrics:  collector,
		Version:  version,
		Gzip:     cfg.GzipEnabled,
	})

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "port", cfg.Port, "gzip", cfg.GzipEnabled)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}
