package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"plantcare/internal/delivery/api/middleware"
	"plantcare/internal/delivery/api/response"
	"plantcare/internal/domain/entity"
	"plantcare/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const dateLayout = "2006-01-02"

// PlantHandlerParams holds dependencies for PlantHandler, injected by Fx.
type PlantHandlerParams struct {
	fx.In

	PlantUC usecase.PlantUsecase
	Logger  *slog.Logger
}

// PlantHandler holds dependencies for plant handlers
type PlantHandler struct {
	plantUC usecase.PlantUsecase
	logger  *slog.Logger
}

// NewPlantHandler is the constructor for PlantHandler
func NewPlantHandler(params PlantHandlerParams) *PlantHandler {
	return &PlantHandler{
		plantUC: params.PlantUC,
		logger:  params.Logger,
	}
}

// Timestamp accepts RFC 3339 timestamps and plain YYYY-MM-DD dates.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Wrap(err, "date must be a string")
	}

	for _, layout := range []string{time.RFC3339Nano, dateLayout} {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed

			return nil
		}
	}

	return errors.Errorf("invalid date %q", s)
}

// CreatePlantRequest represents the request body for creating a plant
type CreatePlantRequest struct {
	Name                     *string    `json:"name"`
	Species                  *string    `json:"species"`
	AcquisitionDate          *Timestamp `json:"acquisitionDate"`
	WateringFrequencyDays    *int       `json:"wateringFrequencyDays"`
	LastWatered              *Timestamp `json:"lastWatered"`
	FertilizingFrequencyDays *int       `json:"fertilizingFrequencyDays"`
	LastFertilized           *Timestamp `json:"lastFertilized"`
	Notes                    *string    `json:"notes"`
}

// UpdatePlantRequest represents a partial update; absent fields are left alone
type UpdatePlantRequest struct {
	Name                     usecase.Optional[string]    `json:"name"`
	Species                  usecase.Optional[string]    `json:"species"`
	AcquisitionDate          usecase.Optional[Timestamp] `json:"acquisitionDate"`
	WateringFrequencyDays    usecase.Optional[int]       `json:"wateringFrequencyDays"`
	LastWatered              usecase.Optional[Timestamp] `json:"lastWatered"`
	FertilizingFrequencyDays usecase.Optional[int]       `json:"fertilizingFrequencyDays"`
	LastFertilized           usecase.Optional[Timestamp] `json:"lastFertilized"`
	Notes                    usecase.Optional[string]    `json:"notes"`
}

// PlantResponse is the JSON view of a plant with its derived care schedule
type PlantResponse struct {
	ID                       uuid.UUID  `json:"id"`
	Owner                    uuid.UUID  `json:"owner"`
	Name                     string     `json:"name"`
	Species                  string     `json:"species"`
	AcquisitionDate          time.Time  `json:"acquisitionDate"`
	WateringFrequencyDays    int        `json:"wateringFrequencyDays"`
	LastWatered              time.Time  `json:"lastWatered"`
	FertilizingFrequencyDays int        `json:"fertilizingFrequencyDays"`
	LastFertilized           *time.Time `json:"lastFertilized"`
	Notes                    string     `json:"notes"`
	NextWatering             time.Time  `json:"nextWatering"`
	NextFertilizing          *time.Time `json:"nextFertilizing"`
	CreatedAt                time.Time  `json:"createdAt"`
	UpdatedAt                time.Time  `json:"updatedAt"`
}

func newPlantResponse(plant *entity.Plant) PlantResponse {
	return PlantResponse{
		ID:                       plant.ID,
		Owner:                    plant.OwnerID,
		Name:                     plant.Name,
		Species:                  plant.Species,
		AcquisitionDate:          plant.AcquisitionDate,
		WateringFrequencyDays:    plant.WateringFrequencyDays,
		LastWatered:              plant.LastWatered,
		FertilizingFrequencyDays: plant.FertilizingFrequencyDays,
		LastFertilized:           plant.LastFertilized,
		Notes:                    plant.Notes,
		NextWatering:             plant.NextWatering(),
		NextFertilizing:          plant.NextFertilizing(),
		CreatedAt:                plant.CreatedAt,
		UpdatedAt:                plant.UpdatedAt,
	}
}

// ListPlants returns the caller's plants
func (h *PlantHandler) ListPlants(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "not authorized, no token")
	}

	plants, err := h.plantUC.List(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]PlantResponse, 0, len(plants))
	for _, plant := range plants {
		out = append(out, newPlantResponse(plant))
	}

	return response.Success(c, http.StatusOK, out)
}

// CreatePlant stores a new plant for the caller
func (h *PlantHandler) CreatePlant(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "not authorized, no token")
	}

	var req CreatePlantRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "invalid plant input")
	}

	plant, err := h.plantUC.Create(c.Request().Context(), userID, &usecase.CreatePlantInput{
		Name:                     req.Name,
		Species:                  req.Species,
		AcquisitionDate:          timePtr(req.AcquisitionDate),
		WateringFrequencyDays:    req.WateringFrequencyDays,
		LastWatered:              timePtr(req.LastWatered),
		FertilizingFrequencyDays: req.FertilizingFrequencyDays,
		LastFertilized:           timePtr(req.LastFertilized),
		Notes:                    req.Notes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newPlantResponse(plant))
}

// GetPlant returns one of the caller's plants
func (h *PlantHandler) GetPlant(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "not authorized, no token")
	}

	plant, err := h.plantUC.Get(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newPlantResponse(plant))
}

// UpdatePlant applies a partial update to one of the caller's plants
func (h *PlantHandler) UpdatePlant(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "not authorized, no token")
	}

	var req UpdatePlantRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "invalid plant input")
	}

	plant, err := h.plantUC.Update(c.Request().Context(), userID, c.Param("id"), &usecase.UpdatePlantInput{
		Name:                     req.Name,
		Species:                  req.Species,
		AcquisitionDate:          optionalTime(req.AcquisitionDate),
		WateringFrequencyDays:    req.WateringFrequencyDays,
		LastWatered:              optionalTime(req.LastWatered),
		FertilizingFrequencyDays: req.FertilizingFrequencyDays,
		LastFertilized:           optionalTime(req.LastFertilized),
		Notes:                    req.Notes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newPlantResponse(plant))
}

// DeletePlant removes one of the caller's plants
func (h *PlantHandler) DeletePlant(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "not authorized, no token")
	}

	if err := h.plantUC.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "plant removed")
}

// GetPlantLabel returns the QR pot label of one of the caller's plants
func (h *PlantHandler) GetPlantLabel(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "not authorized, no token")
	}

	png, err := h.plantUC.Label(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func timePtr(ts *Timestamp) *time.Time {
	if ts == nil {
		return nil
	}
	t := ts.Time

	return &t
}

func optionalTime(o usecase.Optional[Timestamp]) usecase.Optional[time.Time] {
	if !o.Set || o.Value == nil {
		return usecase.Optional[time.Time]{Set: o.Set}
	}

	return usecase.Some(o.Value.Time)
}
