package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopsync/pricerunner-feed/app/api"
	"github.com/shopsync/pricerunner-feed/app/cfg"
	"github.com/shopsync/pricerunner-feed/app/database"
	"github.com/shopsync/pricerunner-feed/app/feed"
	"github.com/shopsync/pricerunner-feed/app/registration"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	appConfig, err := cfg.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if appConfig == nil {
		// Help was shown, exit gracefully
		return
	}

	if appConfig.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	log.Println("Starting Pricerunner Feed server...")

	// Database connection
	log.Printf("Opening database at %s...", appConfig.DBPath)
	db, err := database.NewConnection(appConfig.DBPath)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer db.Close()

	version, dirty, err := database.RunMigrations(db)
	if err != nil {
		log.Fatal("Failed to run migrations:", err)
	}
	log.Printf("Database ready (schema version %d, dirty: %t)", version, dirty)

	// Initialize repositories
	feedRepo := database.NewFeedRepository(db)
	categoryRepo := database.NewCategoryRepository(db)
	productRepo := database.NewProductRepository(db)

	// Initialize core components
	mapper := feed.NewMapper(appConfig.ShopUrl)
	builder := feed.NewBuilder(categoryRepo, productRepo, mapper)
	validator := feed.NewValidator(appConfig.Integration)
	registrationClient := registration.NewClient(appConfig.RegistrationUrl, appConfig.UserAgent)

	// Initialize HTTP server
	log.Println("Initializing HTTP server...")
	apiHandler := api.NewHandler(feedRepo, categoryRepo, productRepo, builder, validator, registrationClient)
	server := api.NewServer(apiHandler, appConfig.APIAccessKey)

	httpServer := &http.Server{
		Addr:         ":" + appConfig.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start HTTP server in a goroutine
	serverErrChan := make(chan error, 1)
	go func() {
		log.Printf("Starting HTTP server on port %s", appConfig.Port)
		log.Printf("Endpoints available:")
		log.Printf("  Feed:          http://localhost:%s/feed?hash=<hash>", appConfig.Port)
		log.Printf("  Feed test:     http://localhost:%s/feed?hash=<hash>&test", appConfig.Port)
		log.Printf("  Health check:  http://localhost:%s/health", appConfig.Port)
		log.Printf("  Statistics:    http://localhost:%s/stats", appConfig.Port)

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for interrupt signal or server error
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	log.Println("Pricerunner Feed server started successfully!")

	select {
	case sig := <-sigChan:
		log.Printf("Received signal: %v", sig)
	case err := <-serverErrChan:
		log.Printf("Server error: %v", err)
	}

	// Graceful shutdown
	log.Println("Shutting down server gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	} else {
		log.Println("HTTP server stopped")
	}

	log.Println("Pricerunner Feed server shutdown complete")
}
