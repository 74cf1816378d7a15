package domain

import "errors"

var (
	// ErrCatalogFormat is returned when a catalog document does not report
	// status "ok". Fatal for that one catalog, never for a whole batch.
	ErrCatalogFormat = errors.New("catalog status not ok")

	// ErrOfferSkipped marks a per-offer skip outcome: the offer is not
	// pizza-relevant or its price/diameter could not be resolved.
	ErrOfferSkipped = errors.New("offer skipped")

	// ErrInvalidPrice is returned when a VFM calculation is invoked with a
	// non-positive price.
	ErrInvalidPrice = errors.New("price must be positive")

	// ErrShopNotFound is returned when the e-food API has no catalog for
	// the requested shop ID.
	ErrShopNotFound = errors.New("shop not found")

	// ErrEfoodAPIFailure is returned when an e-food API request fails.
	ErrEfoodAPIFailure = errors.New("e-food API request failed")

	// ErrCacheMiss is returned when data is not found in cache.
	ErrCacheMiss = errors.New("cache miss")

	// ErrInvalidRequest is returned when request parameters are invalid.
	ErrInvalidRequest = errors.New("invalid request parameters")
)
