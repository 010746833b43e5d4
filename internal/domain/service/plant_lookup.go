package service

import (
	"context"
	"encoding/json"
)

// ExternalPlant is one record returned by the external plant provider. Field
// names follow the provider's search response.
type ExternalPlant struct {
	ID             int             `json:"id"`
	CommonName     string          `json:"common_name"`
	ScientificName string          `json:"scientific_name"`
	Family         string          `json:"family"`
	ImageURL       string          `json:"image_url"`
	Raw            json.RawMessage `json:"-"`
}

// PlantLookup searches the external plant provider.
type PlantLookup interface {
	Search(ctx context.Context, query string) ([]ExternalPlant, error)
}
