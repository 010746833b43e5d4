package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"plantcare/internal/domain/entity"
	domainerrors "plantcare/internal/domain/errors"
	mockUC "plantcare/internal/mocks/usecase"
	"plantcare/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPlantTestServer(t *testing.T) (*echo.Echo, *mockUC.MockPlantUsecase, *entity.User) {
	e := newTestEcho()
	user := newTestUser()
	auth, _ := newTestAuth(t, user)
	plantUC := mockUC.NewMockPlantUsecase(t)
	h := NewPlantHandler(PlantHandlerParams{PlantUC: plantUC, Logger: newDiscardLogger()})

	g := e.Group("/api/plants", auth.Authenticate)
	g.GET("", h.ListPlants)
	g.POST("", h.CreatePlant)
	g.GET("/:id", h.GetPlant)
	g.PUT("/:id", h.UpdatePlant)
	g.DELETE("/:id", h.DeletePlant)
	g.GET("/:id/label", h.GetPlantLabel)

	return e, plantUC, user
}

func samplePlant(owner uuid.UUID) *entity.Plant {
	watered := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	return &entity.Plant{
		ID:                    uuid.New(),
		OwnerID:               owner,
		Name:                  "Fern",
		Species:               entity.DefaultSpecies,
		AcquisitionDate:       watered,
		WateringFrequencyDays: 3,
		LastWatered:           watered,
		CreatedAt:             watered,
		UpdatedAt:             watered,
	}
}

func TestPlantHandler_RequiresToken(t *testing.T) {
	e, _, _ := newPlantTestServer(t)

	rec := doRequest(e, http.MethodGet, "/api/plants", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPlantHandler_CreatePlant(t *testing.T) {
	e, plantUC, user := newPlantTestServer(t)
	plant := samplePlant(user.ID)

	plantUC.EXPECT().
		Create(mock.Anything, user.ID, mock.MatchedBy(func(in *usecase.CreatePlantInput) bool {
			return *in.Name == "Fern" &&
				*in.WateringFrequencyDays == 3 &&
				in.Species == nil &&
				in.AcquisitionDate != nil && in.AcquisitionDate.Equal(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC))
		})).
		Return(plant, nil)

	rec := doRequest(e, http.MethodPost, "/api/plants",
		`{"name":"Fern","wateringFrequencyDays":3,"acquisitionDate":"2026-05-01"}`, testToken)

	require.Equal(t, http.StatusCreated, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, plant.ID.String(), body["id"])
	assert.Equal(t, user.ID.String(), body["owner"])
	assert.Equal(t, "Unknown", body["species"])
	assert.Equal(t, "2026-05-04T00:00:00Z", body["nextWatering"])
	assert.Nil(t, body["nextFertilizing"])
	assert.Nil(t, body["lastFertilized"])
}

func TestPlantHandler_CreatePlant_BadDate(t *testing.T) {
	e, _, _ := newPlantTestServer(t)

	rec := doRequest(e, http.MethodPost, "/api/plants", `{"name":"Fern","wateringFrequencyDays":3,"lastWatered":"yesterday"}`, testToken)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"msg":"invalid plant input"}`, rec.Body.String())
}

func TestPlantHandler_UpdatePlant_PresenceAndNull(t *testing.T) {
	e, plantUC, user := newPlantTestServer(t)
	plant := samplePlant(user.ID)

	plantUC.EXPECT().
		Update(mock.Anything, user.ID, plant.ID.String(), mock.MatchedBy(func(in *usecase.UpdatePlantInput) bool {
			return in.Notes.Set && *in.Notes.Value == "moved" &&
				in.LastFertilized.IsNull() &&
				!in.Name.Set && !in.WateringFrequencyDays.Set && !in.LastWatered.Set
		})).
		Return(plant, nil)

	rec := doRequest(e, http.MethodPut, "/api/plants/"+plant.ID.String(), `{"notes":"moved","lastFertilized":null}`, testToken)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPlantHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"invalid id", errors.WithStack(domainerrors.ErrInvalidID), http.StatusBadRequest, "invalid plant id"},
		{"not found", errors.WithStack(domainerrors.ErrPlantNotFound), http.StatusNotFound, "plant not found"},
		{"foreign", errors.WithStack(domainerrors.ErrPlantForbidden), http.StatusUnauthorized, "not authorized to access this plant"},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, plantUC, user := newPlantTestServer(t)
			plantUC.EXPECT().Get(mock.Anything, user.ID, "some-id").Return(nil, tt.err)

			rec := doRequest(e, http.MethodGet, "/api/plants/some-id", "", testToken)

			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, `{"msg":"`+tt.msg+`"}`, rec.Body.String())
		})
	}
}

func TestPlantHandler_ListPlants_Empty(t *testing.T) {
	e, plantUC, user := newPlantTestServer(t)
	plantUC.EXPECT().List(mock.Anything, user.ID).Return([]*entity.Plant{}, nil)

	rec := doRequest(e, http.MethodGet, "/api/plants", "", testToken)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestPlantHandler_DeletePlant(t *testing.T) {
	e, plantUC, user := newPlantTestServer(t)
	id := uuid.New().String()
	plantUC.EXPECT().Delete(mock.Anything, user.ID, id).Return(nil)

	rec := doRequest(e, http.MethodDelete, "/api/plants/"+id, "", testToken)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"msg":"plant removed"}`, rec.Body.String())
}

func TestPlantHandler_GetPlantLabel(t *testing.T) {
	e, plantUC, user := newPlantTestServer(t)
	id := uuid.New().String()
	png := []byte{0x89, 'P', 'N', 'G'}
	plantUC.EXPECT().Label(mock.Anything, user.ID, id).Return(png, nil)

	rec := doRequest(e, http.MethodGet, "/api/plants/"+id+"/label", "", testToken)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}
