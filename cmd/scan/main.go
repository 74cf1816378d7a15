// Command scan runs one batch scan over the configured shops and exports the
// ranked deals as CSV and JSON.
package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/pizzavfm/backend/config"
	"github.com/pizzavfm/backend/internal/infrastructure/cache"
	"github.com/pizzavfm/backend/internal/infrastructure/efood"
	"github.com/pizzavfm/backend/internal/infrastructure/export"
	"github.com/pizzavfm/backend/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	shops := cfg.Scrape.ShopRefs()
	if len(shops) == 0 {
		log.Fatalf("No shops configured; set scrape.shops in config.yaml")
	}

	log.Printf("Pizza VFM scan: %d shops, location %.4f, %.4f",
		len(shops), cfg.Efood.Latitude, cfg.Efood.Longitude)

	debug := cfg.Server.Environment == "development"

	efoodClient := efood.NewClient(cfg.Efood.BaseURL, cfg.Efood.Latitude, cfg.Efood.Longitude)
	efoodClient.SetDebug(debug)

	scanService := usecase.NewScanService(
		efoodClient,
		cache.NewMemoryCache(),
		usecase.NewDealsService(debug),
		usecase.ScanConfig{
			SkipRestaurants:    cfg.Scrape.SkipRestaurants,
			AllowedRestaurants: cfg.Scrape.AllowedRestaurants,
			MaxRestaurants:     cfg.Scrape.MaxRestaurants,
			OverridesFile:      cfg.Scrape.OverridesFile,
			CacheTTL:           cfg.Cache.TTL,
			EnableDebugLogging: debug,
		},
	)

	result, err := scanService.ScanShops(context.Background(), shops)
	if err != nil {
		log.Fatalf("Scan failed: %v", err)
	}

	if result.TotalDeals == 0 {
		log.Printf("No deals found.")
		return
	}

	csvPath := filepath.Join(cfg.Output.Dir, "pizza_vfm.csv")
	if err := export.WriteCSV(csvPath, result); err != nil {
		log.Fatalf("CSV export failed: %v", err)
	}
	log.Printf("CSV exported: %s", csvPath)

	jsonPath := filepath.Join(cfg.Output.Dir, "pizza_vfm.json")
	if err := export.WriteJSON(jsonPath, result); err != nil {
		log.Fatalf("JSON export failed: %v", err)
	}
	log.Printf("JSON exported: %s", jsonPath)

	usecase.PrintSummary(usecase.Summarize(result.Flatten()))
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime)
	log.SetOutput(os.Stdout)
}
