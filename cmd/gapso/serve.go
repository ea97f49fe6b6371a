package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/igorsergioJS/GA-PSO-web-app/internal/archivestore"
	"github.com/igorsergioJS/GA-PSO-web-app/internal/config"
	"github.com/igorsergioJS/GA-PSO-web-app/internal/logging"
	"github.com/igorsergioJS/GA-PSO-web-app/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the optimization engine over HTTP",
	RunE:  serve,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	serviceLogger := logger.With(
		zap.String("service", "gapso"),
	)

	// Optional durable archive backend.
	var store archivestore.Store
	if cfg.Archive.SQLitePath != "" {
		store = archivestore.NewSQLiteStore(cfg.Archive.SQLitePath)
	} else {
		store = archivestore.NewMemoryStore()
	}
	if err := store.Init(context.Background()); err != nil {
		return fmt.Errorf("init archive store: %w", err)
	}
	defer store.Close()

	srv := server.NewServer(cfg, serviceLogger, store)

	// Rehydrate previously persisted runs so replay survives restarts.
	if entries, err := store.List(context.Background()); err != nil {
		serviceLogger.Warn("list persisted runs", zap.Error(err))
	} else {
		for _, entry := range entries {
			srv.Archive().Put(entry)
		}
		if len(entries) > 0 {
			serviceLogger.Info("rehydrated archive", zap.Int("entries", len(entries)))
		}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.Middleware(serviceLogger))
	r.Use(logging.Recovery(serviceLogger))
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	srv.RegisterRoutes(r)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      r,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		serviceLogger.Info("starting server", zap.String("address", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
	}

	serviceLogger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}
	if err := srv.Close(); err != nil {
		serviceLogger.Error("close server resources", zap.Error(err))
	}

	serviceLogger.Info("server stopped")
	return nil
}
