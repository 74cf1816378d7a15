package usecase

import (
	"fmt"
	"math"

	"github.com/pizzavfm/backend/internal/domain"
)

// perfectRating is the rating that carries no VFM penalty. A missing rating
// is treated as perfect; ratings above 5 are not clamped.
const perfectRating = 5.0

// PizzaArea returns the area in cm² of a pizza with the given diameter.
func PizzaArea(diameterCM int) float64 {
	radius := float64(diameterCM) / 2
	return math.Pi * radius * radius
}

// CalculateVFM derives the value-for-money metrics for a deal. The resolver
// already gates on price, so a non-positive price here indicates an upstream
// bug; it is still checked and rejected with domain.ErrInvalidPrice.
func CalculateVFM(quantity, diameterCM int, price float64, rating *float64) (domain.VFMMetrics, error) {
	if price <= 0 {
		return domain.VFMMetrics{}, fmt.Errorf("%w: got %.2f", domain.ErrInvalidPrice, price)
	}

	singleArea := PizzaArea(diameterCM)
	totalArea := float64(quantity) * singleArea

	ratingFactor := 1.0
	if rating != nil {
		ratingFactor = *rating / perfectRating
	}

	areaPerEuro := totalArea / price
	vfmIndex := areaPerEuro * ratingFactor

	return domain.VFMMetrics{
		Quantity:      quantity,
		DiameterCM:    diameterCM,
		SingleAreaCM2: round2(singleArea),
		TotalAreaCM2:  round2(totalArea),
		AreaPerEuro:   round2(areaPerEuro),
		RatingFactor:  round2(ratingFactor),
		VFMIndex:      round2(vfmIndex),
	}, nil
}

// round2 rounds to 2 decimal places for presentation. Ranking is defined over
// the rounded VFM index so repeated runs order identically.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
