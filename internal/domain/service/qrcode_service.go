package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders and reads plant pot labels
type QRCodeService interface {
	// GeneratePlantLabel returns a PNG QR code identifying the plant
	GeneratePlantLabel(plantID uuid.UUID) ([]byte, error)

	// ParsePlantLabel decodes label content back to the plant ID
	ParsePlantLabel(content string) (uuid.UUID, error)
}
