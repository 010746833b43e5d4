package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	deliverycontext "plantcare/internal/delivery/context"
	"plantcare/internal/domain/entity"
	domainerrors "plantcare/internal/domain/errors"
	"plantcare/internal/domain/repository"
	"plantcare/internal/domain/service"
	mockRepo "plantcare/internal/mocks/repository"
	mockSvc "plantcare/internal/mocks/service"
	"plantcare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

type plantServiceFixtures struct {
	service   *plantService
	plantRepo *mockRepo.MockPlantRepository
	publisher *mockSvc.MockEventPublisher
	qrService *mockSvc.MockQRCodeService
}

func createTestPlantService(t *testing.T) plantServiceFixtures {
	plantRepo := mockRepo.NewMockPlantRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	qrService := mockSvc.NewMockQRCodeService(t)

	srv := NewPlantService(PlantServiceParams{
		PlantRepo: plantRepo,
		Publisher: publisher,
		QRService: qrService,
		Logger:    newDiscardLogger(),
	}).(*plantService)
	srv.now = func() time.Time { return fixedNow }

	return plantServiceFixtures{
		service:   srv,
		plantRepo: plantRepo,
		publisher: publisher,
		qrService: qrService,
	}
}

func newOwnedPlant(owner uuid.UUID) *entity.Plant {
	lastFertilized := fixedNow.AddDate(0, 0, -20)

	return &entity.Plant{
		ID:                       uuid.New(),
		OwnerID:                  owner,
		Name:                     "Jiboia",
		Species:                  "Epipremnum aureum",
		AcquisitionDate:          fixedNow.AddDate(-1, 0, 0),
		WateringFrequencyDays:    7,
		LastWatered:              fixedNow.AddDate(0, 0, -3),
		FertilizingFrequencyDays: 30,
		LastFertilized:           &lastFertilized,
		Notes:                    "sala de estar",
		CreatedAt:                fixedNow.AddDate(-1, 0, 0),
		UpdatedAt:                fixedNow.AddDate(-1, 0, 0),
	}
}

func TestPlantService_Create_AppliesDefaults(t *testing.T) {
	fx := createTestPlantService(t)
	ctx := context.Background()
	actor := uuid.New()

	fx.plantRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Plant")).Return(nil)
	fx.publisher.EXPECT().
		PublishPlantEvent(ctx, mock.MatchedBy(func(e *service.PlantEvent) bool {
			return e.Type == service.PlantCreated && e.OwnerID == actor.String()
		})).
		Return(nil)

	plant, err := fx.service.Create(ctx, actor, &usecase.CreatePlantInput{
		Name:                  ptr("  Costela-de-adão "),
		WateringFrequencyDays: ptr(5),
	})

	require.NoError(t, err)
	assert.Equal(t, actor, plant.OwnerID)
	assert.NotEqual(t, uuid.Nil, plant.ID)
	assert.Equal(t, "Costela-de-adão", plant.Name)
	assert.Equal(t, entity.DefaultSpecies, plant.Species)
	assert.Equal(t, fixedNow, plant.AcquisitionDate)
	assert.Equal(t, fixedNow, plant.LastWatered)
	assert.Equal(t, 0, plant.FertilizingFrequencyDays)
	assert.Nil(t, plant.LastFertilized)
	assert.Empty(t, plant.Notes)
}

func TestPlantService_Create_KeepsProvidedFields(t *testing.T) {
	fx := createTestPlantService(t)
	ctx := context.Background()
	acquired := fixedNow.AddDate(0, -2, 0)
	watered := fixedNow.AddDate(0, 0, -1)

	fx.plantRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishPlantEvent(ctx, mock.Anything).Return(nil)

	plant, err := fx.service.Create(ctx, uuid.New(), &usecase.CreatePlantInput{
		Name:                     ptr("Jiboia"),
		Species:                  ptr(" Epipremnum aureum "),
		AcquisitionDate:          &acquired,
		WateringFrequencyDays:    ptr(7),
		LastWatered:              &watered,
		FertilizingFrequencyDays: ptr(30),
		Notes:                    ptr(" perto da janela "),
	})

	require.NoError(t, err)
	assert.Equal(t, "Epipremnum aureum", plant.Species)
	assert.Equal(t, acquired, plant.AcquisitionDate)
	assert.Equal(t, watered, plant.LastWatered)
	assert.Equal(t, 30, plant.FertilizingFrequencyDays)
	assert.Equal(t, "perto da janela", plant.Notes)
}

func TestPlantService_Create_ValidationRules(t *testing.T) {
	tests := []struct {
		name    string
		input   usecase.CreatePlantInput
		details string
	}{
		{"missing name", usecase.CreatePlantInput{WateringFrequencyDays: ptr(7)}, "name is required"},
		{"blank name", usecase.CreatePlantInput{Name: ptr("  "), WateringFrequencyDays: ptr(7)}, "name is required"},
		{"missing watering", usecase.CreatePlantInput{Name: ptr("Jiboia")}, "watering frequency is required"},
		{"zero watering", usecase.CreatePlantInput{Name: ptr("Jiboia"), WateringFrequencyDays: ptr(0)}, "watering frequency must be at least 1 day"},
		{
			"negative fertilizing",
			usecase.CreatePlantInput{Name: ptr("Jiboia"), WateringFrequencyDays: ptr(7), FertilizingFrequencyDays: ptr(-1)},
			"fertilizing frequency cannot be negative",
		},
		{
			"long notes",
			usecase.CreatePlantInput{Name: ptr("Jiboia"), WateringFrequencyDays: ptr(7), Notes: ptr(strings.Repeat("ã", 501))},
			"notes cannot exceed 500 characters",
		},
		{
			"long name",
			usecase.CreatePlantInput{Name: ptr(strings.Repeat("a", 256)), WateringFrequencyDays: ptr(7)},
			"name cannot exceed 255 characters",
		},
		{
			"long species",
			usecase.CreatePlantInput{Name: ptr("Jiboia"), Species: ptr(strings.Repeat("é", 256)), WateringFrequencyDays: ptr(7)},
			"species cannot exceed 255 characters",
		},
		{
			"huge watering",
			usecase.CreatePlantInput{Name: ptr("Fern"), WateringFrequencyDays: ptr(200000)},
			"watering frequency cannot exceed 36500 days",
		},
		{
			"watering beyond int32",
			usecase.CreatePlantInput{Name: ptr("Fern"), WateringFrequencyDays: ptr(3000000000)},
			"watering frequency cannot exceed 36500 days",
		},
		{
			"huge fertilizing",
			usecase.CreatePlantInput{Name: ptr("Fern"), WateringFrequencyDays: ptr(7), FertilizingFrequencyDays: ptr(36501)},
			"fertilizing frequency cannot exceed 36500 days",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPlantService(t)

			_, err := fx.service.Create(context.Background(), uuid.New(), &tt.input)

			require.Error(t, err)
			var appErr *domainerrors.BaseError
			require.True(t, errors.As(err, &appErr))
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
			assert.Equal(t, tt.details, appErr.Details())
		})
	}
}

func TestPlantService_Create_NotesAtLimit(t *testing.T) {
	fx := createTestPlantService(t)
	ctx := context.Background()
	fx.plantRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishPlantEvent(ctx, mock.Anything).Return(nil)

	plant, err := fx.service.Create(ctx, uuid.New(), &usecase.CreatePlantInput{
		Name:                  ptr("Jiboia"),
		WateringFrequencyDays: ptr(7),
		Notes:                 ptr(strings.Repeat("ã", 500)),
	})

	require.NoError(t, err)
	assert.Len(t, []rune(plant.Notes), 500)
}

func TestPlantService_Create_PublishFailureDoesNotFail(t *testing.T) {
	fx := createTestPlantService(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-7")

	fx.plantRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().
		PublishPlantEvent(ctx, mock.MatchedBy(func(e *service.PlantEvent) bool {
			return e.RequestID == "req-7" && e.EventID != ""
		})).
		Return(errors.New("topic not found"))

	plant, err := fx.service.Create(ctx, uuid.New(), &usecase.CreatePlantInput{
		Name:                  ptr("Jiboia"),
		WateringFrequencyDays: ptr(7),
	})

	require.NoError(t, err)
	assert.NotNil(t, plant)
}

func TestPlantService_List(t *testing.T) {
	fx := createTestPlantService(t)
	ctx := context.Background()
	actor := uuid.New()
	plants := []*entity.Plant{newOwnedPlant(actor), newOwnedPlant(actor)}

	fx.plantRepo.EXPECT().FindByOwner(ctx, actor).Return(plants, nil)

	got, err := fx.service.List(ctx, actor)

	require.NoError(t, err)
	assert.Equal(t, plants, got)
}

func TestPlantService_Get_Checks(t *testing.T) {
	ctx := context.Background()
	actor := uuid.New()

	t.Run("malformed id is rejected before lookup", func(t *testing.T) {
		fx := createTestPlantService(t)

		_, err := fx.service.Get(ctx, actor, "not-a-uuid")

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidID))
		fx.plantRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("missing plant", func(t *testing.T) {
		fx := createTestPlantService(t)
		id := uuid.New()
		fx.plantRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrPlantNotFound)

		_, err := fx.service.Get(ctx, actor, id.String())

		assert.True(t, errors.Is(err, domainerrors.ErrPlantNotFound))
	})

	t.Run("foreign plant", func(t *testing.T) {
		fx := createTestPlantService(t)
		plant := newOwnedPlant(uuid.New())
		fx.plantRepo.EXPECT().FindByID(ctx, plant.ID).Return(plant, nil)

		_, err := fx.service.Get(ctx, actor, plant.ID.String())

		assert.True(t, errors.Is(err, domainerrors.ErrPlantForbidden))
		assert.Equal(t, 401, domainerrors.ErrPlantForbidden.HTTPCode())
	})

	t.Run("own plant", func(t *testing.T) {
		fx := createTestPlantService(t)
		plant := newOwnedPlant(actor)
		fx.plantRepo.EXPECT().FindByID(ctx, plant.ID).Return(plant, nil)

		got, err := fx.service.Get(ctx, actor, plant.ID.String())

		require.NoError(t, err)
		assert.Equal(t, plant, got)
	})
}

func TestPlantService_Update_TouchesOnlyPresentFields(t *testing.T) {
	fx := createTestPlantService(t)
	ctx := context.Background()
	actor := uuid.New()
	plant := newOwnedPlant(actor)
	before := *plant

	fx.plantRepo.EXPECT().FindByID(ctx, plant.ID).Return(plant, nil)
	fx.plantRepo.EXPECT().Update(ctx, plant).Return(nil)
	fx.publisher.EXPECT().
		PublishPlantEvent(ctx, mock.MatchedBy(func(e *service.PlantEvent) bool {
			return e.Type == service.PlantUpdated && e.PlantID == plant.ID.String()
		})).
		Return(nil)

	got, err := fx.service.Update(ctx, actor, plant.ID.String(), &usecase.UpdatePlantInput{
		WateringFrequencyDays: usecase.Some(3),
		Notes:                 usecase.Some("  regar menos no inverno "),
	})

	require.NoError(t, err)
	assert.Equal(t, 3, got.WateringFrequencyDays)
	assert.Equal(t, "regar menos no inverno", got.Notes)
	assert.Equal(t, before.Name, got.Name)
	assert.Equal(t, before.Species, got.Species)
	assert.Equal(t, before.LastWatered, got.LastWatered)
	assert.Equal(t, before.FertilizingFrequencyDays, got.FertilizingFrequencyDays)
	assert.Equal(t, before.LastFertilized, got.LastFertilized)
	assert.Equal(t, fixedNow, got.UpdatedAt)
}

func TestPlantService_Update_NullClearsLastFertilized(t *testing.T) {
	fx := createTestPlantService(t)
	ctx := context.Background()
	actor := uuid.New()
	plant := newOwnedPlant(actor)

	fx.plantRepo.EXPECT().FindByID(ctx, plant.ID).Return(plant, nil)
	fx.plantRepo.EXPECT().Update(ctx, plant).Return(nil)
	fx.publisher.EXPECT().PublishPlantEvent(ctx, mock.Anything).Return(nil)

	got, err := fx.service.Update(ctx, actor, plant.ID.String(), &usecase.UpdatePlantInput{
		LastFertilized: usecase.Null[time.Time](),
	})

	require.NoError(t, err)
	assert.Nil(t, got.LastFertilized)
	assert.Nil(t, got.NextFertilizing())
}

func TestPlantService_Update_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		input   usecase.UpdatePlantInput
		details string
	}{
		{"null name", usecase.UpdatePlantInput{Name: usecase.Null[string]()}, "name cannot be null"},
		{"blank name", usecase.UpdatePlantInput{Name: usecase.Some("   ")}, "name is required"},
		{"null watering", usecase.UpdatePlantInput{WateringFrequencyDays: usecase.Null[int]()}, "wateringFrequencyDays cannot be null"},
		{"zero watering", usecase.UpdatePlantInput{WateringFrequencyDays: usecase.Some(0)}, "watering frequency must be at least 1 day"},
		{"negative fertilizing", usecase.UpdatePlantInput{FertilizingFrequencyDays: usecase.Some(-2)}, "fertilizing frequency cannot be negative"},
		{"long notes", usecase.UpdatePlantInput{Notes: usecase.Some(strings.Repeat("x", 501))}, "notes cannot exceed 500 characters"},
		{"long name", usecase.UpdatePlantInput{Name: usecase.Some(strings.Repeat("x", 256))}, "name cannot exceed 255 characters"},
		{"huge watering", usecase.UpdatePlantInput{WateringFrequencyDays: usecase.Some(200000)}, "watering frequency cannot exceed 36500 days"},
		{"huge fertilizing", usecase.UpdatePlantInput{FertilizingFrequencyDays: usecase.Some(36501)}, "fertilizing frequency cannot exceed 36500 days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPlantService(t)
			ctx := context.Background()
			actor := uuid.New()
			plant := newOwnedPlant(actor)
			fx.plantRepo.EXPECT().FindByID(ctx, plant.ID).Return(plant, nil)

			_, err := fx.service.Update(ctx, actor, plant.ID.String(), &tt.input)

			require.Error(t, err)
			var appErr *domainerrors.BaseError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.details, appErr.Details())
		})
	}
}

func TestPlantService_Update_EmptySpeciesFallsBackToDefault(t *testing.T) {
	fx := createTestPlantService(t)
	ctx := context.Background()
	actor := uuid.New()
	plant := newOwnedPlant(actor)

	fx.plantRepo.EXPECT().FindByID(ctx, plant.ID).Return(plant, nil)
	fx.plantRepo.EXPECT().Update(ctx, plant).Return(nil)
	fx.publisher.EXPECT().PublishPlantEvent(ctx, mock.Anything).Return(nil)

	got, err := fx.service.Update(ctx, actor, plant.ID.String(), &usecase.UpdatePlantInput{
		Species: usecase.Some("  "),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.DefaultSpecies, got.Species)
}

func TestPlantService_Update_ForeignPlant(t *testing.T) {
	fx := createTestPlantService(t)
	ctx := context.Background()
	plant := newOwnedPlant(uuid.New())
	fx.plantRepo.EXPECT().FindByID(ctx, plant.ID).Return(plant, nil)

	_, err := fx.service.Update(ctx, uuid.New(), plant.ID.String(), &usecase.UpdatePlantInput{Name: usecase.Some("Mine now")})

	assert.True(t, errors.Is(err, domainerrors.ErrPlantForbidden))
	assert.Equal(t, "Jiboia", plant.Name)
}

func TestPlantService_Update_DeletedConcurrently(t *testing.T) {
	fx := createTestPlantService(t)
	ctx := context.Background()
	actor := uuid.New()
	plant := newOwnedPlant(actor)
	fx.plantRepo.EXPECT().FindByID(ctx, plant.ID).Return(plant, nil)
	fx.plantRepo.EXPECT().Update(ctx, plant).Return(repository.ErrPlantNotFound)

	_, err := fx.service.Update(ctx, actor, plant.ID.String(), &usecase.UpdatePlantInput{Name: usecase.Some("Jiboia")})

	assert.True(t, errors.Is(err, domainerrors.ErrPlantNotFound))
}

func TestPlantService_Delete(t *testing.T) {
	ctx := context.Background()
	actor := uuid.New()

	t.Run("own plant", func(t *testing.T) {
		fx := createTestPlantService(t)
		plant := newOwnedPlant(actor)
		fx.plantRepo.EXPECT().FindByID(ctx, plant.ID).Return(plant, nil)
		fx.plantRepo.EXPECT().Delete(ctx, plant.ID).Return(nil)
		fx.publisher.EXPECT().
			PublishPlantEvent(ctx, mock.MatchedBy(func(e *service.PlantEvent) bool {
				return e.Type == service.PlantDeleted
			})).
			Return(nil)

		require.NoError(t, fx.service.Delete(ctx, actor, plant.ID.String()))
	})

	t.Run("foreign plant", func(t *testing.T) {
		fx := createTestPlantService(t)
		plant := newOwnedPlant(uuid.New())
		fx.plantRepo.EXPECT().FindByID(ctx, plant.ID).Return(plant, nil)

		err := fx.service.Delete(ctx, actor, plant.ID.String())

		assert.True(t, errors.Is(err, domainerrors.ErrPlantForbidden))
	})

	t.Run("malformed id", func(t *testing.T) {
		fx := createTestPlantService(t)

		err := fx.service.Delete(ctx, actor, "123")

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidID))
	})
}

func TestPlantService_Label(t *testing.T) {
	fx := createTestPlantService(t)
	ctx := context.Background()
	actor := uuid.New()
	plant := newOwnedPlant(actor)
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.plantRepo.EXPECT().FindByID(ctx, plant.ID).Return(plant, nil)
	fx.qrService.EXPECT().GeneratePlantLabel(plant.ID).Return(png, nil)

	got, err := fx.service.Label(ctx, actor, plant.ID.String())

	require.NoError(t, err)
	assert.Equal(t, png, got)
}
