package usecase

import (
	"context"
	"time"

	"plantcare/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePlantInput carries a new plant. Nil pointers take the documented defaults;
// Name and WateringFrequencyDays are required.
type CreatePlantInput struct {
	Name                     *string
	Species                  *string
	AcquisitionDate          *time.Time
	WateringFrequencyDays    *int
	LastWatered              *time.Time
	FertilizingFrequencyDays *int
	LastFertilized           *time.Time
	Notes                    *string
}

// UpdatePlantInput carries a partial update. Only fields with Set are touched.
type UpdatePlantInput struct {
	Name                     Optional[string]
	Species                  Optional[string]
	AcquisitionDate          Optional[time.Time]
	WateringFrequencyDays    Optional[int]
	LastWatered              Optional[time.Time]
	FertilizingFrequencyDays Optional[int]
	LastFertilized           Optional[time.Time]
	Notes                    Optional[string]
}

// PlantUsecase defines the owner-scoped plant operations. The actor is the
// user resolved from the bearer credential; id arguments are raw path values.
type PlantUsecase interface {
	List(ctx context.Context, actor uuid.UUID) ([]*entity.Plant, error)
	Create(ctx context.Context, actor uuid.UUID, input *CreatePlantInput) (*entity.Plant, error)
	Get(ctx context.Context, actor uuid.UUID, id string) (*entity.Plant, error)
	Update(ctx context.Context, actor uuid.UUID, id string, input *UpdatePlantInput) (*entity.Plant, error)
	Delete(ctx context.Context, actor uuid.UUID, id string) error

	// Label renders a PNG QR code for the plant's pot label.
	Label(ctx context.Context, actor uuid.UUID, id string) ([]byte, error)
}
