// Command server runs the RoomieSync REST API on top of a SQLite database.
package main

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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/roomiesync/internal/auth"
	"github.com/mmynk/roomiesync/internal/config"
	"github.com/mmynk/roomiesync/internal/middleware"
	"github.com/mmynk/roomiesync/internal/service"
	"github.com/mmynk/roomiesync/internal/storage/sqlite"
	"github.com/mmynk/roomiesync/pkg/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadServer()
	if err != nil {
		return err
	}
	logging.Setup(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.OTLPEndpoint != "" {
		shutdown, err := initOTEL(ctx, cfg.OTLPEndpoint, cfg.ServiceName)
		if err != nil {
			return err
		}
		defer func() {
			c, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdown(c)
		}()
		slog.Info("Tracing enabled", "endpoint", cfg.OTLPEndpoint)
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	opts := service.Options{
		Metrics: middleware.NewMetrics(prometheus.DefaultRegisterer),
	}
	if cfg.AuthEnabled() {
		opts.JWTManager = auth.NewJWTManager(cfg.AuthSecret, cfg.TokenDuration)
		slog.Info("Bearer token auth enabled", "token_duration", cfg.TokenDuration)
	} else {
		slog.Warn("AUTH_SECRET is not set, the API is open to anyone who can reach it")
	}

	mux := http.NewServeMux()
	mux.Handle("/api/", service.NewHandler(store, opts))
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		service.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
	})

	handler := otelhttp.NewHandler(middleware.Logging(middleware.CORS(mux)), "roomiesync")

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("Server starting", "address", cfg.Addr(), "url", fmt.Sprintf("http://localhost:%d/api", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("server failed: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down")
	case err := <-errChan:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}
