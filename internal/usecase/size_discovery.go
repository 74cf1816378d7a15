package usecase

import "github.com/pizzavfm/backend/internal/domain"

// SizeMap maps a normalized size name to a diameter in cm. It is built fresh
// per catalog and discarded afterwards; callers may pre-seed it with
// store-specific overrides, which always win over discovered entries.
type SizeMap map[string]int

// DiscoverStoreSizes pre-scans a whole catalog once to learn the store's own
// size vocabulary, since size-to-centimeter mapping is not standardized
// across shops. A mapping is recorded whenever a single text fragment
// co-locates a size keyword with an explicit "Ncm" marker, e.g.
// "Πίτσες οικογενειακές (30cm)". First-seen wins.
//
// Scanned fragments, in document order: category name, category title, each
// plain item's description and title, then each offer tier item's category
// name and description.
func DiscoverStoreSizes(categories []domain.Category) SizeMap {
	sizes := make(SizeMap)

	record := func(text string) {
		cm, ok := ExtractDiameter(text)
		if !ok {
			return
		}
		name, ok := matchSizeRules(text, discoveryRules)
		if !ok {
			return
		}
		if _, seen := sizes[name]; !seen {
			sizes[name] = cm
		}
	}

	for _, cat := range categories {
		record(cat.Name)
		record(cat.Title)

		for _, item := range cat.Items {
			record(item.Description)
			record(item.DisplayTitle())
		}

		for _, offer := range cat.Offers {
			for _, tier := range offer.Tiers {
				for _, item := range tier.Items {
					record(item.CategoryName)
					record(item.Description)
				}
			}
		}
	}

	return sizes
}

// Merge copies entries from overrides into the map, replacing discovered
// values. A nil receiver-safe helper for combining discovered sizes with
// caller-supplied store configuration.
func (m SizeMap) Merge(overrides map[string]int) SizeMap {
	merged := make(SizeMap, len(m)+len(overrides))
	for name, cm := range m {
		merged[name] = cm
	}
	for name, cm := range overrides {
		merged[name] = cm
	}
	return merged
}
