// Package main is the entry point for the Cashflow Tracker API server.
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

	"github.com/cashflow-tracker/backend/config"
	"github.com/cashflow-tracker/backend/internal/infra/db"
	"github.com/cashflow-tracker/backend/internal/infra/dependency"
	"github.com/cashflow-tracker/backend/internal/integration/persistence"
	"github.com/cashflow-tracker/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Cashflow Tracker API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
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

	// Run database migrations
	if err := database.AutoMigrate(
		&model.CategoryModel{},
		&model.PlanModel{},
		&model.EntryModel{},
		&model.SettingModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Connect the projection cache; the API works without it
	redisClient, err := db.NewRedisClient(&cfg.Redis)
	if err != nil {
		slog.Warn("Redis connection failed, projection caching disabled", "error", err)
		redisClient = nil
	} else {
		defer func() {
			if err := redisClient.Close(); err != nil {
				slog.Error("Failed to close redis connection", "error", err)
			}
		}()
	}

	// Wire dependencies
	injector := dependency.NewInjector(cfg, database.DB(), redisClient)

	// Seed default categories and the starting balance on a fresh install
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := persistence.SeedDefaults(seedCtx, injector.CategoryRepo, injector.SettingRepo); err != nil {
		seedCancel()
		slog.Error("Failed to seed defaults", "error", err)
		os.Exit(1)
	}
	seedCancel()

	engine := injector.Router.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
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

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
