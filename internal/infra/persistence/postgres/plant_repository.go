package postgres

import (
	"context"

	"plantcare/internal/domain/entity"
	domainerrors "plantcare/internal/domain/errors"
	"plantcare/internal/domain/repository"
	"plantcare/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// plantRepository implements the domain.PlantRepository interface.
type plantRepository struct {
	db *gorm.DB
}

// NewPlantRepository is the constructor for plantRepository.
func NewPlantRepository(db *gorm.DB) repository.PlantRepository {
	return &plantRepository{db: db}
}

// Create persists a new plant.
func (repo *plantRepository) Create(ctx context.Context, plant *entity.Plant) error {
	plantM := fromPlantDomain(plant)

	if err := repo.db.WithContext(ctx).Create(plantM).Error; err != nil {
		return translatePlantWriteError(err, "failed to create plant")
	}

	plant.CreatedAt = plantM.CreatedAt
	plant.UpdatedAt = plantM.UpdatedAt

	return nil
}

// FindByID retrieves a plant by its unique ID.
func (repo *plantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Plant, error) {
	var plantM model.PlantModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&plantM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlantNotFound
		}

		return nil, errors.Wrap(err, "failed to find plant by ID")
	}

	return toPlantDomain(&plantM), nil
}

// FindByOwner retrieves all plants of an owner, oldest first.
func (repo *plantRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Plant, error) {
	var plantModels []model.PlantModel
	err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&plantModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find plants by owner")
	}

	plants := make([]*entity.Plant, 0, len(plantModels))
	for i := range plantModels {
		plants = append(plants, toPlantDomain(&plantModels[i]))
	}

	return plants, nil
}

// Update overwrites the mutable columns of an existing plant.
func (repo *plantRepository) Update(ctx context.Context, plant *entity.Plant) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PlantModel{}).
		Where("id = ?", plant.ID).
		Select("name", "species", "acquisition_date", "watering_frequency_days", "last_watered",
			"fertilizing_frequency_days", "last_fertilized", "notes", "updated_at").
		Updates(fromPlantDomain(plant))
	if result.Error != nil {
		return translatePlantWriteError(result.Error, "failed to update plant")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPlantNotFound
	}

	return nil
}

// Delete removes a plant by ID.
func (repo *plantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PlantModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete plant")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPlantNotFound
	}

	return nil
}

func translatePlantWriteError(err error, details string) error {
	if isCheckConstraintViolation(err) {
		return domainerrors.ErrValidationFailed.WithDetails("plant frequencies are out of range")
	}
	if isValueOutOfRange(err) {
		return domainerrors.ErrValidationFailed.WithDetails("plant field value is too large")
	}
	if isForeignKeyConstraintViolation(err) {
		return domainerrors.ErrUnauthorized.WrapMessage("plant owner does not exist")
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

// toPlantDomain converts a GORM model to a domain entity.
func toPlantDomain(data *model.PlantModel) *entity.Plant {
	if data == nil {
		return nil
	}

	return &entity.Plant{
		ID:                       data.ID,
		OwnerID:                  data.OwnerID,
		Name:                     data.Name,
		Species:                  data.Species,
		AcquisitionDate:          data.AcquisitionDate,
		WateringFrequencyDays:    data.WateringFrequencyDays,
		LastWatered:              data.LastWatered,
		FertilizingFrequencyDays: data.FertilizingFrequencyDays,
		LastFertilized:           data.LastFertilized,
		Notes:                    data.Notes,
		CreatedAt:                data.CreatedAt,
		UpdatedAt:                data.UpdatedAt,
	}
}

// fromPlantDomain converts a domain entity to a GORM model.
func fromPlantDomain(data *entity.Plant) *model.PlantModel {
	if data == nil {
		return nil
	}

	return &model.PlantModel{
		ID:                       data.ID,
		OwnerID:                  data.OwnerID,
		Name:                     data.Name,
		Species:                  data.Species,
		AcquisitionDate:          data.AcquisitionDate,
		WateringFrequencyDays:    data.WateringFrequencyDays,
		LastWatered:              data.LastWatered,
		FertilizingFrequencyDays: data.FertilizingFrequencyDays,
		LastFertilized:           data.LastFertilized,
		Notes:                    data.Notes,
		CreatedAt:                data.CreatedAt,
		UpdatedAt:                data.UpdatedAt,
	}
}
