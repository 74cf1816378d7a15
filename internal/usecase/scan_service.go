package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/pizzavfm/backend/internal/domain"
)

// RestaurantOverride is one entry of the overrides file: store-specific
// configuration keyed by a case-insensitive restaurant name fragment.
type RestaurantOverride struct {
	Rating *float64       `json:"rating,omitempty"`
	Sizes  map[string]int `json:"sizes,omitempty"`
}

// ScanConfig holds configuration for the scan service.
type ScanConfig struct {
	SkipRestaurants    []string
	AllowedRestaurants []string
	MaxRestaurants     int
	OverridesFile      string
	CacheTTL           time.Duration
	EnableDebugLogging bool
}

// ScanService orchestrates a batch scan: fetch each shop's catalog
// (cache-first), extract deals and assemble a scrape result. Per-shop
// failures are logged and skipped, never fatal to the batch.
type ScanService struct {
	client    domain.CatalogClient
	cache     domain.CacheRepository
	deals     *DealsService
	overrides map[string]RestaurantOverride
	cfg       ScanConfig
}

// NewScanService creates a scan service. The overrides file is optional;
// a missing file just means no store-specific configuration.
func NewScanService(
	client domain.CatalogClient,
	cache domain.CacheRepository,
	deals *DealsService,
	cfg ScanConfig,
) *ScanService {
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = time.Hour
	}

	return &ScanService{
		client:    client,
		cache:     cache,
		deals:     deals,
		overrides: loadOverrides(cfg.OverridesFile),
		cfg:       cfg,
	}
}

// loadOverrides reads the restaurant overrides file. Keys are lowercased for
// case-insensitive matching.
func loadOverrides(path string) map[string]RestaurantOverride {
	overrides := make(map[string]RestaurantOverride)
	if path == "" {
		return overrides
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[SCAN] Could not load overrides file %s: %v", path, err)
		}
		return overrides
	}

	var raw map[string]RestaurantOverride
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Printf("[SCAN] Could not parse overrides file %s: %v", path, err)
		return overrides
	}

	for key, override := range raw {
		overrides[strings.ToLower(key)] = override
	}
	return overrides
}

// overrideFor finds the override entry whose key is a substring of the
// restaurant name, if any.
func (s *ScanService) overrideFor(name string) (RestaurantOverride, bool) {
	lower := strings.ToLower(name)
	for key, override := range s.overrides {
		if strings.Contains(lower, key) {
			return override, true
		}
	}
	return RestaurantOverride{}, false
}

// shouldSkip applies the allow-list (when non-empty) and the skip-list.
func (s *ScanService) shouldSkip(name string) bool {
	lower := strings.ToLower(name)

	if len(s.cfg.AllowedRestaurants) > 0 {
		allowed := false
		for _, entry := range s.cfg.AllowedRestaurants {
			if strings.Contains(lower, strings.ToLower(entry)) {
				allowed = true
				break
			}
		}
		if !allowed {
			return true
		}
	}

	for _, entry := range s.cfg.SkipRestaurants {
		if strings.Contains(lower, strings.ToLower(entry)) {
			return true
		}
	}
	return false
}

// ScanShops processes the given shops and returns the aggregate result.
func (s *ScanService) ScanShops(ctx context.Context, shops []domain.ShopRef) (*domain.ScrapeResult, error) {
	var restaurants []domain.Restaurant
	processed := 0

	for _, shop := range shops {
		if s.cfg.MaxRestaurants > 0 && processed >= s.cfg.MaxRestaurants {
			break
		}

		if s.shouldSkip(shop.Name) {
			if s.cfg.EnableDebugLogging {
				log.Printf("[SCAN] Skipped %q (filtered)", shop.Name)
			}
			continue
		}
		processed++

		restaurant, err := s.scanShop(ctx, shop)
		if err != nil {
			log.Printf("[SCAN] %q (shop %d): %v", shop.Name, shop.ID, err)
			continue
		}

		log.Printf("[SCAN] %q: %d deals", restaurant.Name, len(restaurant.Deals))
		restaurants = append(restaurants, *restaurant)
	}

	return domain.NewScrapeResult(restaurants), nil
}

// ShopDeals fetches one shop's catalog (cache-first) and returns its ranked
// deals.
func (s *ScanService) ShopDeals(ctx context.Context, shopID int, rating *float64) ([]domain.Deal, error) {
	doc, err := s.fetchCatalog(ctx, shopID)
	if err != nil {
		return nil, err
	}

	deals, err := s.deals.ExtractDeals(doc, rating, nil)
	if err != nil {
		return nil, err
	}
	return RankDeals(deals), nil
}

func (s *ScanService) scanShop(ctx context.Context, shop domain.ShopRef) (*domain.Restaurant, error) {
	doc, err := s.fetchCatalog(ctx, shop.ID)
	if err != nil {
		return nil, err
	}

	rating := shop.Rating
	var sizeOverrides map[string]int
	if override, ok := s.overrideFor(shop.Name); ok {
		sizeOverrides = override.Sizes
		if override.Rating != nil {
			rating = override.Rating
		}
		if s.cfg.EnableDebugLogging {
			log.Printf("[SCAN] Applying overrides for %q: %v", shop.Name, override.Sizes)
		}
	}

	deals, err := s.deals.ExtractDeals(doc, rating, sizeOverrides)
	if err != nil {
		return nil, err
	}

	return &domain.Restaurant{
		Name:      shop.Name,
		ShopID:    shop.ID,
		Rating:    rating,
		Deals:     RankDeals(deals),
		ScrapedAt: time.Now(),
	}, nil
}

func (s *ScanService) fetchCatalog(ctx context.Context, shopID int) (*domain.CatalogDocument, error) {
	key := cacheKey(shopID)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key); err == nil {
			if doc, ok := cached.(*domain.CatalogDocument); ok {
				return doc, nil
			}
		}
	}

	doc, err := s.client.FetchCatalog(ctx, shopID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, doc, s.cfg.CacheTTL); err != nil && s.cfg.EnableDebugLogging {
			log.Printf("[SCAN] Cache set failed for shop %d: %v", shopID, err)
		}
	}
	return doc, nil
}

func cacheKey(shopID int) string {
	return fmt.Sprintf("catalog:%d", shopID)
}
