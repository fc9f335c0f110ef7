// Package response shapes every API reply as {code, message, ...extra}.
package response

import (
	"net/http"

	domainerrors "corral/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Body is the response envelope. Every reply carries "code" (the API status
// code string) and "message"; operation-specific extras like "token" or
// "devices" ride alongside them at the top level.
type Body map[string]any

// Success writes a 200 reply with code SUCCESS and the given message.
func Success(c echo.Context, message string, extra Body) error {
	return write(c, http.StatusOK, domainerrors.CodeSuccess, message, extra)
}

// Error writes an error reply with the given HTTP status and API code.
func Error(c echo.Context, statusCode int, errorCode, message string) error {
	return write(c, statusCode, errorCode, message, nil)
}

func write(c echo.Context, statusCode int, code, message string, extra Body) error {
	body := Body{
		"code":    code,
		"message": message,
	}
	for key, value := range extra {
		body[key] = value
	}

	return c.JSON(statusCode, body)
}
