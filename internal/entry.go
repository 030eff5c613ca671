// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/starford/notefeed/internal/api"
	"github.com/starford/notefeed/internal/backend"
	"github.com/starford/notefeed/internal/mcpserver"
	"github.com/starford/notefeed/internal/notes"
	"github.com/starford/notefeed/internal/sse"
	"github.com/starford/notefeed/internal/trigger"
)

// Run starts the application with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// Initialize structured JSON logger.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("backend_url", cfg.Backend.BaseURL),
		slog.Int("cache_ttl_seconds", cfg.Cache.TTLSeconds),
		slog.String("timezone", cfg.Notes.TimeZone),
		slog.String("log_level", cfg.App.LogLevel.String()))

	loc, err := cfg.Notes.Location()
	if err != nil {
		return fmt.Errorf("resolve timezone: %w", err)
	}

	// SSE broker.
	broker := sse.NewBroker(2 * time.Second)
	defer broker.Close()

	// Build the note service over the remote backend.
	client := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Token)
	svc := notes.NewService(client, notes.Options{
		TTL:       cfg.Cache.TTL(),
		Location:  loc,
		Logger:    logger,
		OnRefresh: broker.PublishRefresh,
	})

	apiRouter := api.NewRouter(svc, cfg.Auth.AuthEnabled(), cfg.Auth.Token, broker)

	// Build chi router.
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Health check endpoints (unauthenticated).
	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/health/ready", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Mount API routes under /api.
	r.Mount("/api", apiRouter)

	httpServer := &http.Server{
		Addr:    cfg.App.HTTP.Address(),
		Handler: r,
	}

	logger.Info("Server starting...", slog.String("http_address", cfg.App.HTTP.Address()))

	g, gCtx := errgroup.WithContext(ctx)

	// Start refresh trigger watcher when configured.
	if cfg.Trigger.Path != "" {
		g.Go(func() error {
			if watchErr := trigger.Watch(gCtx, cfg.Trigger.Path, logger, svc.Refresh); watchErr != nil {
				logger.Warn("trigger watcher failed", slog.String("error", watchErr.Error()))
			}
			return nil
		})
	}

	// Start HTTP server.
	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", cfg.App.HTTP.Address()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}

// RunMCP starts the MCP stdio server over the same note service. It is
// used by the "mcp" subcommand and blocks until stdin closes.
func RunMCP(cfg *Config) error {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	loc, err := cfg.Notes.Location()
	if err != nil {
		return fmt.Errorf("resolve timezone: %w", err)
	}

	client := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Token)
	svc := notes.NewService(client, notes.Options{
		TTL:      cfg.Cache.TTL(),
		Location: loc,
		Logger:   logger,
	})

	return mcpserver.New(svc).ServeStdio()
}
