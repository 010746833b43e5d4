package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"plantcare/internal/delivery/api/middleware"
	"plantcare/internal/delivery/api/validator"
	"plantcare/internal/domain/entity"
	mockUC "plantcare/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
)

const testToken = "good-token"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEcho wires the same validator and error handler as the API server.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(newDiscardLogger()).HandleHTTPError

	return e
}

// newTestAuth returns an auth middleware that accepts testToken as user.
func newTestAuth(t *testing.T, user *entity.User) (*middleware.AuthMiddleware, *mockUC.MockIdentityUsecase) {
	identityUC := mockUC.NewMockIdentityUsecase(t)
	if user != nil {
		identityUC.EXPECT().VerifyCredential(mock.Anything, testToken).Return(user, nil).Maybe()
	}

	return newAuthMiddlewareFor(identityUC), identityUC
}

func newAuthMiddlewareFor(identityUC *mockUC.MockIdentityUsecase) *middleware.AuthMiddleware {
	return middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{
		IdentityUC: identityUC,
		Logger:     newDiscardLogger(),
	})
}

func newTestUser() *entity.User {
	return &entity.User{ID: uuid.New(), Username: "alice", Email: "alice@x.com"}
}

func doRequest(e *echo.Echo, method, target, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	return serve(e, req)
}

func newRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}
