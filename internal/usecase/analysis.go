package usecase

import (
	"log"
	"sort"

	"github.com/pizzavfm/backend/internal/domain"
)

// summaryQuantities are the bundle sizes the summary groups top deals by.
var summaryQuantities = []int{2, 3, 4}

const topDealsPerQuantity = 10

// Summary holds aggregate statistics over one scan.
type Summary struct {
	TotalRestaurants int                      `json:"total_restaurants"`
	TotalDeals       int                      `json:"total_deals"`
	AvgVFM           float64                  `json:"avg_vfm"`
	BestDeal         *domain.DealRow          `json:"best_deal,omitempty"`
	WorstDeal        *domain.DealRow          `json:"worst_deal,omitempty"`
	TopByQuantity    map[int][]domain.DealRow `json:"top_deals_by_qty"`
}

// Summarize computes summary statistics over flattened deal rows.
// Returns nil when there is nothing to summarize.
func Summarize(rows []domain.DealRow) *Summary {
	if len(rows) == 0 {
		return nil
	}

	restaurants := make(map[string]bool)
	sum := 0.0
	best := rows[0]
	worst := rows[0]

	for _, row := range rows {
		restaurants[row.Restaurant] = true
		sum += row.VFMIndex
		if row.VFMIndex > best.VFMIndex {
			best = row
		}
		if row.VFMIndex < worst.VFMIndex {
			worst = row
		}
	}

	topByQty := make(map[int][]domain.DealRow, len(summaryQuantities))
	for _, qty := range summaryQuantities {
		topByQty[qty] = topRowsForQuantity(rows, qty)
	}

	return &Summary{
		TotalRestaurants: len(restaurants),
		TotalDeals:       len(rows),
		AvgVFM:           round2(sum / float64(len(rows))),
		BestDeal:         &best,
		WorstDeal:        &worst,
		TopByQuantity:    topByQty,
	}
}

func topRowsForQuantity(rows []domain.DealRow, quantity int) []domain.DealRow {
	var filtered []domain.DealRow
	for _, row := range rows {
		if row.Quantity == quantity {
			filtered = append(filtered, row)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].VFMIndex > filtered[j].VFMIndex
	})
	if len(filtered) > topDealsPerQuantity {
		filtered = filtered[:topDealsPerQuantity]
	}
	return filtered
}

// PrintSummary writes the scan summary to the log.
func PrintSummary(s *Summary) {
	if s == nil {
		log.Printf("[SCAN] No data to summarize.")
		return
	}

	log.Printf("[SCAN] ==================================================")
	log.Printf("[SCAN] SCAN SUMMARY")
	log.Printf("[SCAN] ==================================================")
	log.Printf("[SCAN] Total Restaurants: %d", s.TotalRestaurants)
	log.Printf("[SCAN] Total Deals: %d", s.TotalDeals)
	log.Printf("[SCAN] Average VFM: %.2f cm2/EUR", s.AvgVFM)
	if s.BestDeal != nil {
		log.Printf("[SCAN] Best Deal: %s - %s", s.BestDeal.Restaurant, truncate(s.BestDeal.Deal, 50))
		log.Printf("[SCAN]   VFM: %.2f cm2/EUR", s.BestDeal.VFMIndex)
	}

	for _, qty := range summaryQuantities {
		rows := s.TopByQuantity[qty]
		if len(rows) == 0 {
			continue
		}
		log.Printf("[SCAN] Top %d deals with %d pizzas:", len(rows), qty)
		for i, row := range rows {
			log.Printf("[SCAN]   %d. %s - %s : %.2f cm2/EUR (VFM: %.2f)",
				i+1, row.Restaurant, truncate(row.Deal, 50), row.AreaPerEuro, row.VFMIndex)
		}
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
