// Package main provides the entry point for the YouTube Video Scraper service.
// @title YouTube Video Scraper API
// @version 1.0.0
// @description Internal API to scrape YouTube video/shorts metadata

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8000
// @BasePath /

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description Optional API key authentication

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/ytscout/ytscout/docs" // Import for swagger docs
	"github.com/ytscout/ytscout/internal/api/handlers"
	"github.com/ytscout/ytscout/internal/api/router"
	"github.com/ytscout/ytscout/internal/config"
	"github.com/ytscout/ytscout/internal/services/extractor"
	"github.com/ytscout/ytscout/internal/utils"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := utils.GetLogger()
	logger.Info("Starting YouTube Video Scraper service")

	// Initialize the yt-dlp extraction gateway
	extractorClient := extractor.NewClient(&cfg.Extractor)
	if err := extractorClient.Available(); err != nil {
		logger.Errorf("Extractor check failed: %v", err)
		logger.Info("yt-dlp not found - /video requests will fail until it is installed")
	} else {
		logger.Infof("Using yt-dlp binary at %s", cfg.Extractor.BinaryPath)
	}

	// Initialize handlers
	videoHandler := handlers.NewVideoHandler(extractorClient)
	healthHandler := handlers.NewHealthHandler(extractorClient)

	// Initialize router
	r := router.NewRouter(cfg, videoHandler, healthHandler)

	// Start server
	go func() {
		logger.Infof("Starting server on %s:%s", cfg.Server.Host, cfg.Server.Port)
		if err := r.Start(); err != nil {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Create a deadline for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := r.Shutdown(ctx); err != nil {
		logger.Errorf("Failed to shut down server cleanly: %v", err)
	}

	logger.Info("Server shutdown complete")
}
