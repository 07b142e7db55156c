// Package main provides the main entry point for the Fyyur booking directory service
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ClaudsFalse/fullStackNanodegree-Fyyur/app/handlers"
	"github.com/ClaudsFalse/fullStackNanodegree-Fyyur/app/router"
	businessflow "github.com/ClaudsFalse/fullStackNanodegree-Fyyur/business_flow"
	"github.com/ClaudsFalse/fullStackNanodegree-Fyyur/config"
	"github.com/ClaudsFalse/fullStackNanodegree-Fyyur/models"
	"github.com/ClaudsFalse/fullStackNanodegree-Fyyur/repository"
	"github.com/gofiber/fiber/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Application represents the main application structure
type Application struct {
	router *router.FiberRouter
	config *config.ProductionConfig
	server *fiber.App
}

func main() {
	log.Println("Starting Fyyur booking directory...")

	// Load production configuration
	cfg, err := config.LoadProductionConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Route standard logging through the configured output
	config.SetupLogOutput(cfg)

	// Initialize application
	app, err := initializeApplication(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	// Setup routes
	app.router.SetupRoutes()

	// Expose Prometheus metrics on a side listener
	if cfg.Metrics.Enabled {
		go func() {
			mux := http.NewServeMux()
			mux.Handle(cfg.Metrics.Path, promhttp.Handler())
			address := fmt.Sprintf(":%d", cfg.Metrics.Port)
			log.Printf("Metrics exposed at %s%s", address, cfg.Metrics.Path)
			if err := http.ListenAndServe(address, mux); err != nil {
				log.Printf("Metrics server stopped: %v", err)
			}
		}()
	}

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start server in goroutine
	go func() {
		address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		log.Printf("Server starting on %s", address)

		if err := app.server.Listen(address); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	<-sigChan
	log.Println("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := app.server.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	log.Println("Server stopped")
}

// initializeDatabase initializes the database connection with connection pooling
func initializeDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying sql.DB for connection pooling configuration
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	// Test the connection
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if cfg.AutoMigrate {
		if err := db.AutoMigrate(&models.Venue{}, &models.Artist{}, &models.Show{}); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	log.Printf("Database connection established with %d max open connections, %d max idle connections",
		cfg.MaxOpenConns, cfg.MaxIdleConns)

	return db, nil
}

// initializeApplication wires repositories, flows, handlers, and the router
func initializeApplication(cfg *config.ProductionConfig) (*Application, error) {
	db, err := initializeDatabase(cfg.Database)
	if err != nil {
		return nil, err
	}

	// Repositories
	venueRepo := repository.NewVenueRepository(db)
	artistRepo := repository.NewArtistRepository(db)
	showRepo := repository.NewShowRepository(db)

	// Business flows
	venueFlow := businessflow.NewVenueFlow(venueRepo, showRepo, db)
	artistFlow := businessflow.NewArtistFlow(artistRepo, showRepo, db)
	showFlow := businessflow.NewShowFlow(showRepo, venueRepo, artistRepo, db)

	// Handlers
	venueHandler := handlers.NewVenueHandler(venueFlow)
	artistHandler := handlers.NewArtistHandler(artistFlow)
	showHandler := handlers.NewShowHandler(showFlow)
	lookupHandler := handlers.NewLookupHandler()

	// Router
	r := router.NewFiberRouter(venueHandler, artistHandler, showHandler, lookupHandler)
	fiberRouter, ok := r.(*router.FiberRouter)
	if !ok {
		return nil, fmt.Errorf("unexpected router implementation")
	}

	return &Application{
		router: fiberRouter,
		config: cfg,
		server: fiberRouter.GetApp(),
	}, nil
}
