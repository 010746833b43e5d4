// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"plantcare/internal/delivery/api/middleware"
	"plantcare/internal/delivery/api/response"
	"plantcare/internal/domain/entity"
	"plantcare/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	IdentityUC usecase.IdentityUsecase
	Logger     *slog.Logger
}

// AuthHandler holds dependencies for identity handlers
type AuthHandler struct {
	identityUC usecase.IdentityUsecase
	logger     *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		identityUC: params.IdentityUC,
		logger:     params.Logger,
	}
}

// RegisterRequest represents the request body for registration
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the public view of an account
type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	UserResponse
	Token string `json:"token"`
}

func newUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}

// Register handles account creation
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	output, err := h.identityUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, AuthResponse{
		UserResponse: newUserResponse(output.User),
		Token:        output.Token,
	})
}

// Login handles credential exchange for a bearer token
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	output, err := h.identityUC.Authenticate(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, AuthResponse{
		UserResponse: newUserResponse(output.User),
		Token:        output.Token,
	})
}

// Me returns the authenticated user
func (h *AuthHandler) Me(c echo.Context) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "not authorized, no token")
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}
