package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"assetdash/internal/cache"
	"assetdash/internal/config"
	apphttp "assetdash/internal/http"
	"assetdash/internal/log"
	"assetdash/internal/session"
	"assetdash/internal/storage"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := log.New(log.DefaultConfig())
	log.SetDefault(logger)

	var history storage.Repository
	switch cfg.DataBackend {
	case "sqlite":
		repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
		if err != nil {
			logger.Error("Failed to open upload history database", "error", err, log.FieldBackend, cfg.DataBackend)
			os.Exit(1)
		}
		history = repo
		logger.Info("Initialized sqlite upload history", log.FieldBackend, cfg.DataBackend, "path", cfg.SQLiteDBPath)
	default:
		history = storage.NewMemoryRepository()
		logger.Info("Initialized in-memory upload history", log.FieldBackend, cfg.DataBackend)
	}
	defer history.Close()

	sessions := session.NewStore(cfg.SessionCacheSize, cfg.SessionTTL)

	sweeper := cache.NewManager(func(removed int) {
		if removed > 0 {
			logger.WithComponent(log.ComponentCache).Info("Expired sessions removed", "count", removed)
		}
	})
	sweeper.Register(sessions)
	sweeper.StartCleanup(cfg.CleanupInterval)
	defer sweeper.Stop()

	srv := apphttp.NewServer(apphttp.Options{
		Addr:           ":" + cfg.Port,
		MaxUploadBytes: cfg.MaxUploadBytes,
		Logger:         logger,
	}, sessions, history)

	// Uploads and exports of large datasets need generous write timeouts.
	srv.ReadTimeout = 60 * time.Second
	srv.WriteTimeout = 60 * time.Second
	srv.IdleTimeout = 120 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting assetdash server", "port", cfg.Port, log.FieldBackend, cfg.DataBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}
