package model

import (
	"time"

	"github.com/google/uuid"
)

// PlantModel mirrors the 'plants' table. OwnerID references users.id (UUID).
type PlantModel struct {
	ID                       uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID                  uuid.UUID `gorm:"type:uuid;index;not null"`
	Name                     string    `gorm:"type:varchar(255);not null"`
	Species                  string    `gorm:"type:varchar(255);not null"`
	AcquisitionDate          time.Time `gorm:"not null"`
	WateringFrequencyDays    int       `gorm:"not null"`
	LastWatered              time.Time `gorm:"not null"`
	FertilizingFrequencyDays int       `gorm:"not null;default:0"`
	LastFertilized           *time.Time
	Notes                    string `gorm:"type:varchar(500);not null;default:''"`
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// TableName explicitly sets the table name for GORM.
func (PlantModel) TableName() string {
	return "plants"
}
