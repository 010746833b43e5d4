package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"plantcare/internal/delivery/api/response"
	"plantcare/internal/domain/entity"
	"plantcare/internal/domain/service"
	"plantcare/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SuggestionHandlerParams holds dependencies for SuggestionHandler, injected by Fx.
type SuggestionHandlerParams struct {
	fx.In

	SuggestionUC usecase.SuggestionUsecase
	Lookup       service.PlantLookup
	Logger       *slog.Logger
}

// SuggestionHandler serves plant suggestions and the external search proxy
type SuggestionHandler struct {
	suggestionUC usecase.SuggestionUsecase
	lookup       service.PlantLookup
	logger       *slog.Logger
}

// NewSuggestionHandler is the constructor for SuggestionHandler
func NewSuggestionHandler(params SuggestionHandlerParams) *SuggestionHandler {
	return &SuggestionHandler{
		suggestionUC: params.SuggestionUC,
		lookup:       params.Lookup,
		logger:       params.Logger,
	}
}

// TrefleSearchRequest represents the query of the external search proxy
type TrefleSearchRequest struct {
	Query string `query:"query" validate:"required"`
}

// SuggestionSearchRequest represents the query of a suggestion search
type SuggestionSearchRequest struct {
	Query    string `query:"q"`
	External bool   `query:"external"`
	Limit    int    `query:"limit" validate:"min=0"`
}

// ExternalPlantResponse is the simplified provider record
type ExternalPlantResponse struct {
	ID             int    `json:"id"`
	CommonName     string `json:"common_name"`
	ScientificName string `json:"scientific_name"`
	Family         string `json:"family"`
	ImageURL       string `json:"image_url"`
}

// DraftResponse pairs a selected candidate with its plant pre-fill
type DraftResponse struct {
	Candidate *entity.Candidate  `json:"candidate"`
	Draft     usecase.PlantDraft `json:"draft"`
}

// SearchTrefle proxies the external plant provider
func (h *SuggestionHandler) SearchTrefle(c echo.Context) error {
	var req TrefleSearchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "invalid search input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	plants, err := h.suggestionUC.SearchExternal(c.Request().Context(), req.Query)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]ExternalPlantResponse, 0, len(plants))
	for _, plant := range plants {
		out = append(out, ExternalPlantResponse{
			ID:             plant.ID,
			CommonName:     plant.CommonName,
			ScientificName: plant.ScientificName,
			Family:         plant.Family,
			ImageURL:       plant.ImageURL,
		})
	}

	return response.Success(c, http.StatusOK, out)
}

// Search ranks local candidates, falling back to the provider when asked
func (h *SuggestionHandler) Search(c echo.Context) error {
	var req SuggestionSearchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "invalid search input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	candidates := h.suggestionUC.Search(c.Request().Context(), req.Query, usecase.SearchOptions{
		UseExternal:    req.External,
		MaxResults:     req.Limit,
		ExternalSearch: h.lookup.Search,
	})

	return response.Success(c, http.StatusOK, candidates)
}

// Directory lists the whole local directory
func (h *SuggestionHandler) Directory(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.suggestionUC.Directory(c.Request().Context()))
}

// Draft returns creation defaults for a local directory entry
func (h *SuggestionHandler) Draft(c echo.Context) error {
	candidate, err := h.suggestionUC.Lookup(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, DraftResponse{
		Candidate: candidate,
		Draft:     h.suggestionUC.Draft(candidate),
	})
}

// DraftFromCandidate returns creation defaults for a candidate the client already
// holds, such as an external search result
func (h *SuggestionHandler) DraftFromCandidate(c echo.Context) error {
	var candidate entity.Candidate
	if err := c.Bind(&candidate); err != nil {
		return response.BindingError(c, "invalid suggestion input")
	}

	candidate.CommonNamePt = strings.TrimSpace(candidate.CommonNamePt)
	candidate.ScientificName = strings.TrimSpace(candidate.ScientificName)
	if candidate.CommonNamePt == "" && candidate.ScientificName == "" {
		return response.BadRequest(c, "suggestion name is required")
	}

	return response.Success(c, http.StatusOK, DraftResponse{
		Candidate: &candidate,
		Draft:     h.suggestionUC.Draft(&candidate),
	})
}
