package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pizzavfm/backend/config"
	httpDelivery "github.com/pizzavfm/backend/internal/delivery/http"
	"github.com/pizzavfm/backend/internal/infrastructure/cache"
	"github.com/pizzavfm/backend/internal/infrastructure/efood"
	"github.com/pizzavfm/backend/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting PizzaVFM Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("e-food API: %s (location %.4f, %.4f)",
		cfg.Efood.BaseURL, cfg.Efood.Latitude, cfg.Efood.Longitude)

	debug := cfg.Server.Environment == "development"

	// Infrastructure
	catalogCache := cache.NewMemoryCache()
	efoodClient := efood.NewClient(cfg.Efood.BaseURL, cfg.Efood.Latitude, cfg.Efood.Longitude)
	if debug {
		efoodClient.SetDebug(true)
		log.Printf("e-food client debug mode enabled")
	}

	// Usecase layer
	dealsService := usecase.NewDealsService(debug)
	scanService := usecase.NewScanService(efoodClient, catalogCache, dealsService, usecase.ScanConfig{
		SkipRestaurants:    cfg.Scrape.SkipRestaurants,
		AllowedRestaurants: cfg.Scrape.AllowedRestaurants,
		MaxRestaurants:     cfg.Scrape.MaxRestaurants,
		OverridesFile:      cfg.Scrape.OverridesFile,
		CacheTTL:           cfg.Cache.TTL,
		EnableDebugLogging: debug,
	})

	handler := httpDelivery.NewHandler(dealsService, scanService, cfg.Ranking.TopN)
	router := httpDelivery.SetupRouter(cfg, handler)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
