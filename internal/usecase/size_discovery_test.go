package usecase

import (
	"testing"

	"github.com/pizzavfm/backend/internal/domain"
)

func TestDiscoverStoreSizes(t *testing.T) {
	t.Run("learns size from category title", func(t *testing.T) {
		categories := []domain.Category{
			{Title: "Πίτσες οικογενειακές (30cm)"},
		}

		sizes := DiscoverStoreSizes(categories)
		if sizes["οικογενειακή"] != 30 {
			t.Errorf("sizes[οικογενειακή] = %d, want 30", sizes["οικογενειακή"])
		}
	})

	t.Run("learns size from tier item category name", func(t *testing.T) {
		categories := []domain.Category{
			{
				Offers: []domain.Offer{
					{
						Tiers: []domain.Tier{
							{Items: []domain.Item{
								{CategoryName: "Πίτσες γίγας (40cm) προσφοράς"},
							}},
						},
					},
				},
			},
		}

		sizes := DiscoverStoreSizes(categories)
		if sizes["γίγας"] != 40 {
			t.Errorf("sizes[γίγας] = %d, want 40", sizes["γίγας"])
		}
	})

	t.Run("learns size from item description", func(t *testing.T) {
		categories := []domain.Category{
			{
				Items: []domain.Item{
					{Title: "Special", Description: "Μεγάλη πίτσα 36cm με 2 υλικά"},
				},
			},
		}

		sizes := DiscoverStoreSizes(categories)
		if sizes["μεγάλη"] != 36 {
			t.Errorf("sizes[μεγάλη] = %d, want 36", sizes["μεγάλη"])
		}
	})

	t.Run("first seen wins", func(t *testing.T) {
		categories := []domain.Category{
			{Title: "Πίτσες οικογενειακές (30cm)"},
			{Title: "Πίτσες οικογενειακές (33cm)"},
		}

		sizes := DiscoverStoreSizes(categories)
		if sizes["οικογενειακή"] != 30 {
			t.Errorf("sizes[οικογενειακή] = %d, want 30 (first seen)", sizes["οικογενειακή"])
		}
	})

	t.Run("extended vocabulary", func(t *testing.T) {
		categories := []domain.Category{
			{Title: "Ατομική πίτσα (24cm)"},
			{Title: "Μεσαία πίτσα (32cm)"},
			{Title: "Τετράγωνη πίτσα (45cm)"},
		}

		sizes := DiscoverStoreSizes(categories)
		if sizes["μικρή"] != 24 {
			t.Errorf("sizes[μικρή] = %d, want 24 (ατομική)", sizes["μικρή"])
		}
		if sizes["μεσαία"] != 32 {
			t.Errorf("sizes[μεσαία] = %d, want 32", sizes["μεσαία"])
		}
		if sizes["jumbo"] != 45 {
			t.Errorf("sizes[jumbo] = %d, want 45 (τετράγωνη)", sizes["jumbo"])
		}
	})

	t.Run("keyword without diameter records nothing", func(t *testing.T) {
		categories := []domain.Category{
			{Title: "Πίτσες οικογενειακές"},
		}

		sizes := DiscoverStoreSizes(categories)
		if len(sizes) != 0 {
			t.Errorf("sizes = %v, want empty", sizes)
		}
	})

	t.Run("diameter without keyword records nothing", func(t *testing.T) {
		categories := []domain.Category{
			{Title: "Special 30cm"},
		}

		sizes := DiscoverStoreSizes(categories)
		if len(sizes) != 0 {
			t.Errorf("sizes = %v, want empty", sizes)
		}
	})
}

func TestSizeMapMerge(t *testing.T) {
	discovered := SizeMap{"οικογενειακή": 30, "γίγας": 40}
	merged := discovered.Merge(map[string]int{"οικογενειακή": 33, "μεγάλη": 36})

	if merged["οικογενειακή"] != 33 {
		t.Errorf("override lost: merged[οικογενειακή] = %d, want 33", merged["οικογενειακή"])
	}
	if merged["γίγας"] != 40 {
		t.Errorf("discovered entry lost: merged[γίγας] = %d, want 40", merged["γίγας"])
	}
	if merged["μεγάλη"] != 36 {
		t.Errorf("new override missing: merged[μεγάλη] = %d, want 36", merged["μεγάλη"])
	}
	if discovered["οικογενειακή"] != 30 {
		t.Errorf("Merge mutated the receiver: %v", discovered)
	}
}
