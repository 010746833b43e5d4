package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultSpecies is stored when a plant is created without a species.
const DefaultSpecies = "Unknown"

// Column limits for Plant fields, in characters.
const (
	MaxNameLength    = 255
	MaxSpeciesLength = 255
	MaxNotesLength   = 500
)

// MaxFrequencyDays caps watering and fertilizing frequencies at 100 years.
const MaxFrequencyDays = 36500

// Plant is a houseplant tracked by its owner.
type Plant struct {
	ID                       uuid.UUID
	OwnerID                  uuid.UUID
	Name                     string
	Species                  string
	AcquisitionDate          time.Time
	WateringFrequencyDays    int
	LastWatered              time.Time
	FertilizingFrequencyDays int        // 0 means no regular fertilizing
	LastFertilized           *time.Time // nil until the first fertilizing is recorded
	Notes                    string
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// IsOwnedBy reports whether userID owns the plant.
func (p *Plant) IsOwnedBy(userID uuid.UUID) bool {
	return p.OwnerID == userID
}

// NextWatering is the date the plant is due for water.
func (p *Plant) NextWatering() time.Time {
	return p.LastWatered.AddDate(0, 0, p.WateringFrequencyDays)
}

// NextFertilizing is the date the plant is due for fertilizer, or nil when
// there is no regular fertilizing or it has never been fertilized.
func (p *Plant) NextFertilizing() *time.Time {
	if p.FertilizingFrequencyDays <= 0 || p.LastFertilized == nil {
		return nil
	}
	next := p.LastFertilized.AddDate(0, 0, p.FertilizingFrequencyDays)

	return &next
}
