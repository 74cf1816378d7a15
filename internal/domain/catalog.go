package domain

// CatalogDocument is the raw catalog payload for one shop as returned by the
// e-food API. Every field is optional in the wire format; absent fields decode
// to zero values and are never an error by themselves.
type CatalogDocument struct {
	Status string      `json:"status"`
	Data   CatalogData `json:"data"`
}

// CatalogData wraps the menu section of the catalog payload.
type CatalogData struct {
	Menu Menu `json:"menu"`
}

// Menu holds the shop's menu categories.
type Menu struct {
	Categories []Category `json:"categories"`
}

// Category is one menu section. Deals usually live in Offers, but some shops
// list them as plain Items inside an offers-themed category.
type Category struct {
	Name   string  `json:"name"`
	Title  string  `json:"title"`
	Items  []Item  `json:"items"`
	Offers []Offer `json:"offers"`
}

// Offer is a purchasable catalog entry, possibly bundling multiple physical
// items through Tiers. Price is a pointer because the API sends null for
// offers whose price is only available as a formatted string.
type Offer struct {
	Title           string   `json:"title"`
	Price           *float64 `json:"price"`
	CalculatedPrice string   `json:"calculated_price"`
	CategoryName    string   `json:"category_name"`
	Tiers           []Tier   `json:"tiers"`
}

// Tier is a sub-component of an offer with a repeat count and its own item
// list (e.g. "2x large pizza" inside a combo).
type Tier struct {
	Quantity int    `json:"quantity"`
	Items    []Item `json:"items"`
}

// Item is a plain menu entry. Items in offers-themed categories carry the
// same optional pricing fields as offers and can be treated as one.
type Item struct {
	Title           string   `json:"title"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	CategoryName    string   `json:"category_name"`
	Price           *float64 `json:"price"`
	CalculatedPrice string   `json:"calculated_price"`
	Tiers           []Tier   `json:"tiers"`
}

// DisplayTitle returns the item's title, falling back to its name.
func (i *Item) DisplayTitle() string {
	if i.Title != "" {
		return i.Title
	}
	return i.Name
}

// AsOffer adapts a plain item to the offer shape so that items listed inside
// offers-themed categories can go through the same resolution path.
func (i *Item) AsOffer() Offer {
	return Offer{
		Title:           i.DisplayTitle(),
		Price:           i.Price,
		CalculatedPrice: i.CalculatedPrice,
		CategoryName:    i.CategoryName,
		Tiers:           i.Tiers,
	}
}
