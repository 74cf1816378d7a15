package domain

// VFMMetrics holds the value-for-money numbers derived for one deal.
// All derived fields are rounded to 2 decimals for presentation; ranking is
// defined over the rounded VFMIndex so results are reproducible.
type VFMMetrics struct {
	Quantity      int     `json:"quantity"`
	DiameterCM    int     `json:"diameter_cm"`
	SingleAreaCM2 float64 `json:"single_area_cm2"`
	TotalAreaCM2  float64 `json:"total_area_cm2"`
	AreaPerEuro   float64 `json:"area_per_euro"`
	RatingFactor  float64 `json:"rating_factor"` // (0, 1]
	VFMIndex      float64 `json:"vfm_index"`
}

// Deal is a fully resolved pizza deal. Immutable once constructed.
type Deal struct {
	Name       string     `json:"name"`
	Quantity   int        `json:"quantity"`
	DiameterCM int        `json:"diameter_cm"`
	Price      float64    `json:"price"`
	VFM        VFMMetrics `json:"vfm"`
}
