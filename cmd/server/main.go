package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/content-planner-api/internal/api"
	"github.com/content-planner-api/internal/config"
	"github.com/content-planner-api/internal/database"
	"github.com/content-planner-api/internal/planner"
	"github.com/content-planner-api/internal/repository"
	"github.com/content-planner-api/internal/service"
	"github.com/content-planner-api/pkg/logger"
)

func main() {
	// Initialize logger
	log := logger.New()
	log.Info().Msg("Starting content planner API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Connect to the database. A missing or unreachable database is not
	// fatal: the store starts unready, reads degrade to empty results
	// and writes fail with 503 until it comes back.
	db := database.Connect(&cfg.Database, log)
	defer db.Close()

	if db.Ready() {
		if err := db.RunMigrations(cfg.Database.MigrationsPath); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	} else {
		log.Warn().Stringer("state", db.State()).Msg("Store not ready, dashboard will render empty data")
	}

	// Initialize repositories
	repos := repository.New(db)

	// Initialize services
	services := service.NewServices(repos, db, log)

	// Initialize the planning view
	view := planner.NewView(services.Planner, cfg.Planner.SeedOnEmpty, log)

	// Initialize router
	router := api.NewRouter(services, view, db, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
}
