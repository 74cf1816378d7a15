package usecase

import (
	"fmt"

	"github.com/pizzavfm/backend/internal/domain"
)

// ResolvedOffer is the normalized intermediate record produced for one offer
// that survived price, relevance and diameter resolution.
type ResolvedOffer struct {
	Title      string
	Price      float64
	Quantity   int
	SizeName   string
	DiameterCM int
}

// resolveState carries the signals accumulated while scanning an offer's
// tiers, consulted later by the diameter strategies.
type resolveState struct {
	sizes             SizeMap
	sizeName          string
	candidateSizeText string
}

// diameterStrategy attempts to resolve a diameter from one signal source.
// Strategies are evaluated in order with early exit, so the ordering below is
// the authoritative trust ranking.
type diameterStrategy func(offer *domain.Offer, st *resolveState) (int, bool)

// Most-specific signals first: vendor-curated title text beats tier-local
// text, which beats the learned store map, which beats global defaults.
var diameterStrategies = []diameterStrategy{
	diameterFromTitle,
	diameterFromTierCategory,
	diameterFromTierDescriptions,
	diameterFromStoreSizes,
	diameterFromDefaults,
}

// ResolveOffer resolves title, price, quantity and diameter for a single
// offer via the priority chain. Offers that are not pizza-relevant or whose
// price or diameter cannot be resolved are rejected with a wrapped
// domain.ErrOfferSkipped.
func ResolveOffer(offer *domain.Offer, sizes SizeMap) (*ResolvedOffer, error) {
	price, ok := resolvePrice(offer)
	if !ok {
		return nil, fmt.Errorf("%w: no price signal in %q", domain.ErrOfferSkipped, offer.Title)
	}
	if price <= 0 {
		return nil, fmt.Errorf("%w: non-positive price in %q", domain.ErrOfferSkipped, offer.Title)
	}

	if !isPizzaTitle(offer.Title) {
		return nil, fmt.Errorf("%w: not a pizza offer: %q", domain.ErrOfferSkipped, offer.Title)
	}

	st := &resolveState{sizes: sizes}

	quantity := scanPizzaTiers(offer, st)

	if quantity == 0 {
		quantity = ExtractQuantity(offer.Title)
	}
	if st.sizeName == "" {
		if name, ok := ExtractSizeKeyword(offer.Title); ok {
			st.sizeName = name
		}
	}

	diameter := 0
	for _, strategy := range diameterStrategies {
		if cm, ok := strategy(offer, st); ok {
			diameter = cm
			break
		}
	}
	if diameter == 0 {
		return nil, fmt.Errorf("%w: no diameter signal in %q", domain.ErrOfferSkipped, offer.Title)
	}

	if quantity < 1 {
		quantity = 1
	}

	return &ResolvedOffer{
		Title:      offer.Title,
		Price:      price,
		Quantity:   quantity,
		SizeName:   st.sizeName,
		DiameterCM: diameter,
	}, nil
}

// resolvePrice prefers the direct numeric price field and falls back to the
// formatted calculated-price string.
func resolvePrice(offer *domain.Offer) (float64, bool) {
	if offer.Price != nil {
		return *offer.Price, true
	}
	return ParsePrice(offer.CalculatedPrice)
}

// scanPizzaTiers accumulates the pizza count across the offer's tiers and
// remembers the first pizza tier's category name as the candidate size text.
// A tier counts as a pizza tier when its first item's category name matches a
// pizza/size-indicative pattern.
func scanPizzaTiers(offer *domain.Offer, st *resolveState) int {
	quantity := 0
	for _, tier := range offer.Tiers {
		if len(tier.Items) == 0 {
			continue
		}
		itemCat := tier.Items[0].CategoryName
		if !isPizzaTierCategory(itemCat) {
			continue
		}

		tierQty := tier.Quantity
		if tierQty == 0 {
			tierQty = 1
		}
		quantity += tierQty

		// First pizza tier wins for both the candidate size text and the
		// size name; later tiers never override.
		if st.candidateSizeText == "" {
			st.candidateSizeText = itemCat
		}
		if st.sizeName == "" {
			if name, ok := ExtractSizeKeyword(itemCat); ok {
				st.sizeName = name
			}
		}
	}
	return quantity
}

func diameterFromTitle(offer *domain.Offer, _ *resolveState) (int, bool) {
	return ExtractDiameter(offer.Title)
}

func diameterFromTierCategory(_ *domain.Offer, st *resolveState) (int, bool) {
	if st.candidateSizeText == "" {
		return 0, false
	}
	return ExtractDiameter(st.candidateSizeText)
}

// diameterFromTierDescriptions scans each tier's first item description in
// tier order. Titles are often vague ("3 Πίτσες της επιλογής σας") while the
// description carries the explicit "30cm".
func diameterFromTierDescriptions(offer *domain.Offer, _ *resolveState) (int, bool) {
	for _, tier := range offer.Tiers {
		if len(tier.Items) == 0 {
			continue
		}
		if cm, ok := ExtractDiameter(tier.Items[0].Description); ok {
			return cm, true
		}
	}
	return 0, false
}

func diameterFromStoreSizes(_ *domain.Offer, st *resolveState) (int, bool) {
	if st.sizeName == "" {
		return 0, false
	}
	cm, ok := st.sizes[st.sizeName]
	return cm, ok
}

func diameterFromDefaults(_ *domain.Offer, st *resolveState) (int, bool) {
	if st.sizeName == "" {
		return 0, false
	}
	cm, ok := defaultDiameters[st.sizeName]
	return cm, ok
}
