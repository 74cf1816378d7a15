package domain

import "time"

// ShopRef identifies one shop to scan, with the listing rating when known.
type ShopRef struct {
	ID     int      `json:"id"`
	Name   string   `json:"name"`
	Rating *float64 `json:"rating,omitempty"`
}

// Restaurant aggregates the deals extracted for one shop.
type Restaurant struct {
	Name      string    `json:"name"`
	ShopID    int       `json:"shop_id"`
	URL       string    `json:"url,omitempty"`
	Rating    *float64  `json:"rating,omitempty"`
	IsClosed  bool      `json:"is_closed"`
	Deals     []Deal    `json:"deals"`
	ScrapedAt time.Time `json:"scraped_at"`
}

// ScrapeResult is the outcome of one batch scan across restaurants.
type ScrapeResult struct {
	Restaurants []Restaurant `json:"restaurants"`
	ScrapedAt   time.Time    `json:"scraped_at"`
	TotalDeals  int          `json:"total_deals"`
}

// NewScrapeResult builds a result and fills in the deal total.
func NewScrapeResult(restaurants []Restaurant) *ScrapeResult {
	total := 0
	for _, r := range restaurants {
		total += len(r.Deals)
	}
	return &ScrapeResult{
		Restaurants: restaurants,
		ScrapedAt:   time.Now(),
		TotalDeals:  total,
	}
}

// DealRow is one flattened deal, used by CSV export and the summary report.
type DealRow struct {
	Restaurant  string   `json:"restaurant"`
	Rating      *float64 `json:"rating,omitempty"`
	Deal        string   `json:"deal"`
	Quantity    int      `json:"quantity"`
	DiameterCM  int      `json:"diameter_cm"`
	Price       float64  `json:"price"`
	TotalArea   float64  `json:"total_area"`
	AreaPerEuro float64  `json:"area_per_euro"`
	VFMIndex    float64  `json:"vfm_index"`
}

const maxRestaurantNameLen = 40

// Flatten converts a scrape result to one row per deal.
func (r *ScrapeResult) Flatten() []DealRow {
	var rows []DealRow
	for _, restaurant := range r.Restaurants {
		name := restaurant.Name
		if len([]rune(name)) > maxRestaurantNameLen {
			name = string([]rune(name)[:maxRestaurantNameLen])
		}
		for _, deal := range restaurant.Deals {
			rows = append(rows, DealRow{
				Restaurant:  name,
				Rating:      restaurant.Rating,
				Deal:        deal.Name,
				Quantity:    deal.Quantity,
				DiameterCM:  deal.DiameterCM,
				Price:       deal.Price,
				TotalArea:   deal.VFM.TotalAreaCM2,
				AreaPerEuro: deal.VFM.AreaPerEuro,
				VFMIndex:    deal.VFM.VFMIndex,
			})
		}
	}
	return rows
}
