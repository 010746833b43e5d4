package qrcode

import (
	"encoding/json"
	"fmt"

	"plantcare/config"
	"plantcare/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	defaultLabelSize = 256
	labelType        = "plant_label"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// LabelData is the payload encoded into a plant pot label
type LabelData struct {
	PlantID string `json:"plant_id"`
	Type    string `json:"type"`
}

// New builds the label service from configuration, falling back to a 256px medium-recovery code.
func New(cfg *config.Config) service.QRCodeService {
	if cfg == nil || cfg.QRCode == nil {
		return NewQRCodeService(defaultLabelSize, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultLabelSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GeneratePlantLabel renders a PNG label pointing at the plant
func (s *qrcodeService) GeneratePlantLabel(plantID uuid.UUID) ([]byte, error) {
	jsonData, err := json.Marshal(LabelData{
		PlantID: plantID.String(),
		Type:    labelType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal label data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParsePlantLabel reads scanned label content back into a plant ID
func (s *qrcodeService) ParsePlantLabel(content string) (uuid.UUID, error) {
	var data LabelData
	if err := json.Unmarshal([]byte(content), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal label data: %w", err)
	}

	if data.Type != labelType {
		return uuid.Nil, fmt.Errorf("invalid label type: %s", data.Type)
	}

	plantID, err := uuid.Parse(data.PlantID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse plant ID: %w", err)
	}

	return plantID, nil
}
