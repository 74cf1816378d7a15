package efood

import (
	"encoding/json"
	"fmt"

	"github.com/pizzavfm/backend/internal/domain"
)

// DecodeCatalog decodes a raw catalog payload into the domain model.
// The wire format is optional-everywhere: absent or null fields decode to
// zero values and are never an error by themselves. Only malformed JSON
// fails.
func DecodeCatalog(data []byte) (*domain.CatalogDocument, error) {
	var doc domain.CatalogDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("malformed catalog payload: %w", err)
	}
	return &doc, nil
}
