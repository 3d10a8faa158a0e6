// Package main is the entry point for the DreamWell API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/dreamwell/backend/config"
	"github.com/dreamwell/backend/internal/application/adapter"
	"github.com/dreamwell/backend/internal/infra/bootstrap"
	"github.com/dreamwell/backend/internal/infra/db"
	"github.com/dreamwell/backend/internal/infra/dependency"
	"github.com/dreamwell/backend/internal/integration/adapters"
	"github.com/dreamwell/backend/internal/integration/persistence"
	"github.com/dreamwell/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	slog.Info("Starting DreamWell API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := database.AutoMigrate(
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.DreamModel{},
		&model.InterpretationModel{},
		&model.MoodEntryModel{},
		&model.SupportTicketModel{},
		&model.SystemSettingModel{},
		&model.EmailQueueModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	seeder := bootstrap.NewSeeder(
		persistence.NewUserRepository(database.DB()),
		persistence.NewSystemSettingsRepository(database.DB()),
		adapters.NewPasswordService(),
	)
	if err := seeder.Run(context.Background(), &cfg.Admin); err != nil {
		slog.Error("Failed to seed startup records", "error", err)
		os.Exit(1)
	}

	injector, err := dependency.NewInjector(cfg, database.DB())
	if err != nil {
		slog.Error("Failed to wire dependencies", "error", err)
		os.Exit(1)
	}

	// Background workers stop when this context is cancelled.
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	if cfg.Email.WorkerEnabled {
		go injector.EmailWorker.Start(workerCtx)
		slog.Info("Email worker started", "poll_interval", cfg.Email.PollInterval)
	}
	if cfg.Cleanup.Enabled {
		go runTokenSweeper(workerCtx, injector.RefreshRepo, cfg.Cleanup.Interval)
		slog.Info("Refresh token sweeper started", "interval", cfg.Cleanup.Interval)
	}

	engine := injector.Router.Setup(cfg.Server.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	stopWorkers()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

// runTokenSweeper periodically deletes refresh tokens whose expiry has
// passed. Expired tokens are also deleted lazily on use; the sweeper
// keeps rows for abandoned sessions from accumulating.
func runTokenSweeper(ctx context.Context, repo adapter.RefreshTokenRepository, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := repo.DeleteExpiredBefore(ctx, time.Now().UTC())
			if err != nil {
				slog.Error("Refresh token sweep failed", "error", err)
				continue
			}
			if removed > 0 {
				slog.Info("Swept expired refresh tokens", "removed", removed)
			}
		}
	}
}
