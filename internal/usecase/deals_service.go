package usecase

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/pizzavfm/backend/internal/domain"
)

// DealsService turns one raw catalog document into resolved pizza deals.
type DealsService struct {
	enableDebugLogging bool
}

// NewDealsService creates a deals service.
func NewDealsService(enableDebugLogging bool) *DealsService {
	return &DealsService{enableDebugLogging: enableDebugLogging}
}

// ExtractDeals runs the full catalog-to-deals pipeline: validate status,
// discover store sizes, merge caller overrides on top, resolve every offer
// and compute VFM metrics. Per-offer failures are skipped, never fatal.
// Ranking and truncation are left to the caller so the full list stays
// available for analysis.
func (s *DealsService) ExtractDeals(
	doc *domain.CatalogDocument,
	rating *float64,
	sizeOverrides map[string]int,
) ([]domain.Deal, error) {
	if doc == nil {
		return nil, domain.ErrInvalidRequest
	}
	if doc.Status != "ok" {
		return nil, fmt.Errorf("%w: got %q", domain.ErrCatalogFormat, doc.Status)
	}

	categories := doc.Data.Menu.Categories

	sizes := DiscoverStoreSizes(categories)
	if len(sizeOverrides) > 0 {
		sizes = sizes.Merge(sizeOverrides)
	}
	if s.enableDebugLogging && len(sizes) > 0 {
		log.Printf("[PARSER] Store size map: %v", sizes)
	}

	var deals []domain.Deal

	for _, category := range categories {
		for _, offer := range category.Offers {
			if deal, ok := s.resolveToDeal(&offer, sizes, rating); ok {
				deals = append(deals, deal)
			}
		}

		// Some shops list deals as plain items inside an offers-themed
		// category; those go through the same resolution path.
		if isOffersCategory(category.Title) {
			for _, item := range category.Items {
				offer := item.AsOffer()
				if deal, ok := s.resolveToDeal(&offer, sizes, rating); ok {
					deals = append(deals, deal)
				}
			}
		}
	}

	return deals, nil
}

func (s *DealsService) resolveToDeal(offer *domain.Offer, sizes SizeMap, rating *float64) (domain.Deal, bool) {
	resolved, err := ResolveOffer(offer, sizes)
	if err != nil {
		if s.enableDebugLogging && errors.Is(err, domain.ErrOfferSkipped) {
			log.Printf("[PARSER] %v", err)
		}
		return domain.Deal{}, false
	}

	metrics, err := CalculateVFM(resolved.Quantity, resolved.DiameterCM, resolved.Price, rating)
	if err != nil {
		log.Printf("[PARSER] VFM error for %q: %v", resolved.Title, err)
		return domain.Deal{}, false
	}

	return domain.Deal{
		Name:       resolved.Title,
		Quantity:   resolved.Quantity,
		DiameterCM: resolved.DiameterCM,
		Price:      resolved.Price,
		VFM:        metrics,
	}, true
}

// isOffersCategory reports whether a category title marks an offers/deals
// section.
func isOffersCategory(title string) bool {
	lower := strings.ToLower(title)
	return strings.Contains(lower, "προσφορές") ||
		strings.Contains(lower, "offers") ||
		strings.Contains(lower, "deals")
}

// RankDeals returns a copy of deals sorted by VFM index descending. The sort
// is stable, so ties keep their relative input order.
func RankDeals(deals []domain.Deal) []domain.Deal {
	ranked := make([]domain.Deal, len(deals))
	copy(ranked, deals)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].VFM.VFMIndex > ranked[j].VFM.VFMIndex
	})
	return ranked
}

// TopN truncates a ranked deal list to at most n entries. Catalogs can hold
// dozens of near-duplicate bundles; only the best few are useful downstream.
func TopN(deals []domain.Deal, n int) []domain.Deal {
	if n < 0 {
		n = 0
	}
	if n > len(deals) {
		n = len(deals)
	}
	return deals[:n]
}
