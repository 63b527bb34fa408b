package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/medscanlabs/oncoserve/docs"
	"github.com/medscanlabs/oncoserve/internal/api"
	"github.com/medscanlabs/oncoserve/internal/artifact"
	"github.com/medscanlabs/oncoserve/internal/cache"
	"github.com/medscanlabs/oncoserve/internal/config"
	apperrors "github.com/medscanlabs/oncoserve/internal/errors"
	"github.com/medscanlabs/oncoserve/internal/monitoring"
)

func main() {
	// Configuration from file with environment overrides
	cfg, err := config.Load(getEnvOrDefault("CONFIG_PATH", "config.yaml"))
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Structured logging setup
	var sink *monitoring.FileSink
	if cfg.Log.File != "" {
		sink = &monitoring.FileSink{
			Path:       cfg.Log.File,
			MaxSizeMB:  cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAgeDays: cfg.Log.MaxAgeDays,
		}
	}
	appLogger := monitoring.NewLoggerWith(cfg.Log.Level, sink)
	slog.SetDefault(appLogger.Logger)

	// Initialize the model store. A missing or corrupt artifact is not fatal:
	// the service starts unhealthy and answers 503 until a load succeeds.
	store := artifact.NewStore(cfg.Model.Path, appLogger.Logger)
	if _, err := store.Load(); err != nil {
		slog.Error("Model not loaded at startup", "path", cfg.Model.Path, "error", err)
	}

	// Watch the artifact on disk so a redeployed model is picked up without
	// a restart. Failure to watch degrades to manual reloads only.
	var watcher *artifact.Watcher
	if cfg.Model.Watch {
		w, err := artifact.NewWatcher(store, appLogger.Logger)
		if err != nil {
			slog.Error("Failed to watch model artifact", "path", cfg.Model.Path, "error", err)
		} else {
			watcher = w
		}
	}

	// Initialize monitoring system
	appMetrics := monitoring.NewMetrics()

	// Response cache keyed on the request body. Cleared whenever the model
	// is swapped so stale predictions never outlive the model that made them.
	var responseCache *cache.Cache
	if cfg.Cache.Enabled {
		responseCache = cache.NewCache(cfg.CacheTTL(), cfg.Cache.MaxEntries)
		store.OnReload(responseCache.Clear)
	}

	h := api.NewHandlers(store, responseCache, appMetrics, appLogger)
	r := api.Router(cfg, h, appMetrics, appLogger)

	// Start server with graceful shutdown
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout(),
		WriteTimeout: cfg.WriteTimeout(),
	}

	go func() {
		slog.Info("Starting server", "port", cfg.Server.Port, "model_path", cfg.Model.Path)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	if watcher != nil {
		apperrors.SafeClose(watcher, "artifact watcher")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited")
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
