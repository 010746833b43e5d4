package response

import (
	"net/http"

	domainerrors "plantcare/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// MessageResponse is the body of every error and of acknowledgement responses.
type MessageResponse struct {
	Msg string `json:"msg"`
}

// Success writes data as the bare JSON body
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Message writes a {"msg": ...} body
func Message(c echo.Context, statusCode int, msg string) error {
	return c.JSON(statusCode, MessageResponse{Msg: msg})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, msg string) error {
	return Message(c, statusCode, msg)
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, msg string) error {
	return Error(c, http.StatusBadRequest, msg)
}

// BindingError returns a binding error response
func BindingError(c echo.Context, msg string) error {
	return Error(c, http.StatusBadRequest, msg)
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, msg string) error {
	return Error(c, http.StatusUnauthorized, msg)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, msg string) error {
	return Error(c, http.StatusInternalServerError, msg)
}

// MessageFor picks the client-facing text of an application error. Details
// name the violated rule and are only shown for 400s.
func MessageFor(appErr domainerrors.AppError) string {
	if appErr.HTTPCode() == http.StatusBadRequest && appErr.Details() != "" {
		return appErr.Details()
	}

	return appErr.Message()
}
