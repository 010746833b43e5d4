package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	deliverycontext "plantcare/internal/delivery/context"
	"plantcare/internal/domain/entity"
	domainerrors "plantcare/internal/domain/errors"
	"plantcare/internal/domain/repository"
	"plantcare/internal/domain/service"
	"plantcare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// plantService implements the PlantUsecase interface.
type plantService struct {
	plantRepo repository.PlantRepository
	publisher service.EventPublisher
	qrService service.QRCodeService
	logger    *slog.Logger
	now       func() time.Time
}

// PlantServiceParams holds dependencies for PlantService, injected by Fx.
type PlantServiceParams struct {
	fx.In

	PlantRepo repository.PlantRepository
	Publisher service.EventPublisher
	QRService service.QRCodeService
	Logger    *slog.Logger
}

// NewPlantService is the constructor for plantService.
func NewPlantService(params PlantServiceParams) usecase.PlantUsecase {
	return &plantService{
		plantRepo: params.PlantRepo,
		publisher: params.Publisher,
		qrService: params.QRService,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *plantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns the actor's plants, oldest first.
func (srv *plantService) List(ctx context.Context, actor uuid.UUID) ([]*entity.Plant, error) {
	plants, err := srv.plantRepo.FindByOwner(ctx, actor)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list plants")
	}

	return plants, nil
}

// Create stores a new plant owned by actor, filling in defaults for absent fields.
func (srv *plantService) Create(ctx context.Context, actor uuid.UUID, input *usecase.CreatePlantInput) (*entity.Plant, error) {
	if input.Name == nil || strings.TrimSpace(*input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	if input.WateringFrequencyDays == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("watering frequency is required")
	}

	now := srv.now()
	plant := &entity.Plant{
		ID:                    uuid.New(),
		OwnerID:               actor,
		Name:                  strings.TrimSpace(*input.Name),
		Species:               entity.DefaultSpecies,
		AcquisitionDate:       now,
		WateringFrequencyDays: *input.WateringFrequencyDays,
		LastWatered:           now,
		LastFertilized:        input.LastFertilized,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if input.Species != nil {
		plant.Species = strings.TrimSpace(*input.Species)
	}
	if input.AcquisitionDate != nil {
		plant.AcquisitionDate = *input.AcquisitionDate
	}
	if input.LastWatered != nil {
		plant.LastWatered = *input.LastWatered
	}
	if input.FertilizingFrequencyDays != nil {
		plant.FertilizingFrequencyDays = *input.FertilizingFrequencyDays
	}
	if input.Notes != nil {
		plant.Notes = strings.TrimSpace(*input.Notes)
	}
	if plant.Species == "" {
		plant.Species = entity.DefaultSpecies
	}

	if err := validatePlant(plant); err != nil {
		return nil, err
	}

	if err := srv.plantRepo.Create(ctx, plant); err != nil {
		return nil, errors.Wrap(err, "failed to create plant")
	}

	srv.log(ctx).Debug("Plant created", slog.Any("plantID", plant.ID), slog.Any("ownerID", actor))
	srv.publish(ctx, service.PlantCreated, plant)

	return plant, nil
}

// Get returns a plant the actor owns.
func (srv *plantService) Get(ctx context.Context, actor uuid.UUID, id string) (*entity.Plant, error) {
	return srv.findOwned(ctx, actor, id)
}

// Update applies the present fields of input. Concurrent updates are last-write-wins.
func (srv *plantService) Update(ctx context.Context, actor uuid.UUID, id string, input *usecase.UpdatePlantInput) (*entity.Plant, error) {
	plant, err := srv.findOwned(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if err := applyPlantUpdate(plant, input); err != nil {
		return nil, err
	}
	if err := validatePlant(plant); err != nil {
		return nil, err
	}
	plant.UpdatedAt = srv.now()

	if err := srv.plantRepo.Update(ctx, plant); err != nil {
		if errors.Is(err, repository.ErrPlantNotFound) {
			return nil, errors.WithStack(domainerrors.ErrPlantNotFound)
		}

		return nil, errors.Wrap(err, "failed to update plant")
	}

	srv.publish(ctx, service.PlantUpdated, plant)

	return plant, nil
}

// Delete removes a plant the actor owns.
func (srv *plantService) Delete(ctx context.Context, actor uuid.UUID, id string) error {
	plant, err := srv.findOwned(ctx, actor, id)
	if err != nil {
		return err
	}

	if err := srv.plantRepo.Delete(ctx, plant.ID); err != nil {
		if errors.Is(err, repository.ErrPlantNotFound) {
			return errors.WithStack(domainerrors.ErrPlantNotFound)
		}

		return errors.Wrap(err, "failed to delete plant")
	}

	srv.log(ctx).Debug("Plant deleted", slog.Any("plantID", plant.ID))
	srv.publish(ctx, service.PlantDeleted, plant)

	return nil
}

// Label renders the pot label of a plant the actor owns.
func (srv *plantService) Label(ctx context.Context, actor uuid.UUID, id string) ([]byte, error) {
	plant, err := srv.findOwned(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GeneratePlantLabel(plant.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate plant label")
	}

	return png, nil
}

// findOwned rejects a malformed id before touching storage, then reports
// missing before foreign.
func (srv *plantService) findOwned(ctx context.Context, actor uuid.UUID, id string) (*entity.Plant, error) {
	plantID, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrInvalidID)
	}

	plant, err := srv.plantRepo.FindByID(ctx, plantID)
	if errors.Is(err, repository.ErrPlantNotFound) {
		return nil, errors.WithStack(domainerrors.ErrPlantNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find plant")
	}

	if !plant.IsOwnedBy(actor) {
		srv.log(ctx).Warn("Plant access by non-owner", slog.Any("plantID", plant.ID), slog.Any("actor", actor))

		return nil, errors.WithStack(domainerrors.ErrPlantForbidden)
	}

	return plant, nil
}

// publish never fails the calling operation.
func (srv *plantService) publish(ctx context.Context, eventType service.PlantEventType, plant *entity.Plant) {
	event := &service.PlantEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.New().String(),
		Type:       eventType,
		PlantID:    plant.ID.String(),
		OwnerID:    plant.OwnerID.String(),
		OccurredAt: srv.now().UTC(),
	}

	if err := srv.publisher.PublishPlantEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish plant event",
			slog.String("type", string(eventType)),
			slog.Any("plantID", plant.ID),
			slog.Any("error", err),
		)
	}
}

func applyPlantUpdate(plant *entity.Plant, input *usecase.UpdatePlantInput) error {
	if err := setRequired(&plant.Name, input.Name, "name", strings.TrimSpace); err != nil {
		return err
	}
	if err := setRequired(&plant.Species, input.Species, "species", strings.TrimSpace); err != nil {
		return err
	}
	if plant.Species == "" {
		plant.Species = entity.DefaultSpecies
	}
	if err := setRequired(&plant.AcquisitionDate, input.AcquisitionDate, "acquisitionDate", nil); err != nil {
		return err
	}
	if err := setRequired(&plant.WateringFrequencyDays, input.WateringFrequencyDays, "wateringFrequencyDays", nil); err != nil {
		return err
	}
	if err := setRequired(&plant.LastWatered, input.LastWatered, "lastWatered", nil); err != nil {
		return err
	}
	if err := setRequired(&plant.FertilizingFrequencyDays, input.FertilizingFrequencyDays, "fertilizingFrequencyDays", nil); err != nil {
		return err
	}
	if err := setRequired(&plant.Notes, input.Notes, "notes", strings.TrimSpace); err != nil {
		return err
	}

	if input.LastFertilized.Set {
		if input.LastFertilized.IsNull() {
			plant.LastFertilized = nil
		} else {
			lastFertilized := *input.LastFertilized.Value
			plant.LastFertilized = &lastFertilized
		}
	}

	return nil
}

// setRequired copies a present value into dst. A present null is rejected
// because the field is not nullable.
func setRequired[T any](dst *T, opt usecase.Optional[T], field string, normalize func(T) T) error {
	if !opt.Set {
		return nil
	}
	if opt.IsNull() {
		return domainerrors.ErrValidationFailed.WithDetails(field + " cannot be null")
	}

	v := *opt.Value
	if normalize != nil {
		v = normalize(v)
	}
	*dst = v

	return nil
}

func validatePlant(plant *entity.Plant) error {
	switch {
	case plant.Name == "":
		return domainerrors.ErrValidationFailed.WithDetails("name is required")
	case utf8.RuneCountInString(plant.Name) > entity.MaxNameLength:
		return domainerrors.ErrValidationFailed.WithDetails("name cannot exceed 255 characters")
	case utf8.RuneCountInString(plant.Species) > entity.MaxSpeciesLength:
		return domainerrors.ErrValidationFailed.WithDetails("species cannot exceed 255 characters")
	case plant.WateringFrequencyDays < 1:
		return domainerrors.ErrValidationFailed.WithDetails("watering frequency must be at least 1 day")
	case plant.WateringFrequencyDays > entity.MaxFrequencyDays:
		return domainerrors.ErrValidationFailed.WithDetails("watering frequency cannot exceed 36500 days")
	case plant.FertilizingFrequencyDays < 0:
		return domainerrors.ErrValidationFailed.WithDetails("fertilizing frequency cannot be negative")
	case plant.FertilizingFrequencyDays > entity.MaxFrequencyDays:
		return domainerrors.ErrValidationFailed.WithDetails("fertilizing frequency cannot exceed 36500 days")
	case utf8.RuneCountInString(plant.Notes) > entity.MaxNotesLength:
		return domainerrors.ErrValidationFailed.WithDetails("notes cannot exceed 500 characters")
	}

	return nil
}
