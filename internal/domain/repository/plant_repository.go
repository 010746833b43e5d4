package repository

import (
	"context"
	"errors"

	"plantcare/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPlantNotFound is returned when no plant has the requested ID.
var ErrPlantNotFound = errors.New("plant not found")

// PlantRepository persists plants. Ownership is enforced by callers.
type PlantRepository interface {
	Create(ctx context.Context, plant *entity.Plant) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Plant, error)

	// FindByOwner returns the owner's plants, oldest first.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Plant, error)

	// Update overwrites every mutable column of an existing plant.
	Update(ctx context.Context, plant *entity.Plant) error

	Delete(ctx context.Context, id uuid.UUID) error
}
