package entity

import "encoding/json"

// ExternalIDPrefix namespaces candidates that came from the external plant provider.
const ExternalIDPrefix = "trefle-"

// Candidate is a transient plant suggestion, either from the local directory
// or from the external provider.
type Candidate struct {
	ID               string          `json:"id"`
	CommonNamePt     string          `json:"commonNamePt"`
	ScientificName   string          `json:"scientificName"`
	Family           string          `json:"family"`
	AlternativeNames []string        `json:"alternativeNames,omitempty"`
	Origin           string          `json:"origin,omitempty"`
	GrowthHabit      string          `json:"growthHabit,omitempty"`
	ImageURL         string          `json:"imageUrl,omitempty"`
	IsExternal       bool            `json:"isExternal"`
	External         json.RawMessage `json:"originalTrefleData,omitempty"`
}
