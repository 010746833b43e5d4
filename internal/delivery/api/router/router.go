// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"plantcare/internal/delivery/api/middleware"
	"plantcare/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	PlantHandler      *handler.PlantHandler
	SuggestionHandler *handler.SuggestionHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	plantHandler      *handler.PlantHandler
	suggestionHandler *handler.SuggestionHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		plantHandler:      params.PlantHandler,
		suggestionHandler: params.SuggestionHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Plant routes, scoped to the authenticated owner
	plantsGroup := api.Group("/plants")
	plantsGroup.Use(r.authMiddleware.Authenticate)
	{
		plantsGroup.GET("", r.plantHandler.ListPlants)
		plantsGroup.POST("", r.plantHandler.CreatePlant)
		plantsGroup.GET("/:id", r.plantHandler.GetPlant)
		plantsGroup.PUT("/:id", r.plantHandler.UpdatePlant)
		plantsGroup.DELETE("/:id", r.plantHandler.DeletePlant)
		plantsGroup.GET("/:id/label", r.plantHandler.GetPlantLabel)
	}

	// External plant provider proxy
	trefleGroup := api.Group("/trefle")
	trefleGroup.Use(r.authMiddleware.Authenticate)
	{
		trefleGroup.GET("/search", r.suggestionHandler.SearchTrefle)
	}

	// Suggestion routes
	suggestionsGroup := api.Group("/suggestions")
	suggestionsGroup.Use(r.authMiddleware.Authenticate)
	{
		suggestionsGroup.GET("", r.suggestionHandler.Search)
		suggestionsGroup.GET("/directory", r.suggestionHandler.Directory)
		suggestionsGroup.GET("/:id/draft", r.suggestionHandler.Draft)
		suggestionsGroup.POST("/draft", r.suggestionHandler.DraftFromCandidate)
	}
}
