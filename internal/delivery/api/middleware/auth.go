package middleware

import (
	"log/slog"
	"strings"

	"plantcare/internal/delivery/api/response"
	deliverycontext "plantcare/internal/delivery/context"
	"plantcare/internal/domain/entity"
	domainerrors "plantcare/internal/domain/errors"
	"plantcare/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	contextKeyUserID = "userID"
	contextKeyUser   = "user"

	bearerPrefix = "Bearer "
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	IdentityUC usecase.IdentityUsecase
	Logger     *slog.Logger
}

// AuthMiddleware resolves the bearer credential to the calling user.
type AuthMiddleware struct {
	identityUC usecase.IdentityUsecase
	logger     *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		identityUC: params.IdentityUC,
		logger:     params.Logger,
	}
}

// Authenticate rejects requests without a valid bearer token and stores the
// resolved user on the context for handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		token, found := strings.CutPrefix(authHeader, bearerPrefix)
		token = strings.TrimSpace(token)
		if !found || token == "" {
			return response.Unauthorized(c, "not authorized, no token")
		}

		ctx := c.Request().Context()
		user, err := m.identityUC.VerifyCredential(ctx, token)
		if err != nil {
			if errors.Is(err, domainerrors.ErrUnauthorized) {
				deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Rejected request credential", slog.Any("error", err))

				return response.Unauthorized(c, domainerrors.ErrUnauthorized.Message())
			}

			return errors.WithStack(err)
		}

		c.Set(contextKeyUserID, user.ID)
		c.Set(contextKeyUser, user)

		return next(c)
	}
}

// GetUserID returns the authenticated user's ID set by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok
}

// GetUser returns the authenticated user set by Authenticate.
func GetUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(contextKeyUser).(*entity.User)

	return user, ok && user != nil
}
