// Package response holds the JSON response helpers. Success bodies are the
// payload itself; error bodies are {"error": "<message>"}.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the uniform error response shape.
type ErrorBody struct {
	Error string `json:"error"`
}

// JSON writes a success payload with the given status.
func JSON(c echo.Context, statusCode int, payload any) error {
	return c.JSON(statusCode, payload)
}

// Error writes an error body with the given status.
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, ErrorBody{Error: message})
}

// BadRequest writes a 400 error.
func BadRequest(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, message)
}

// Unauthorized writes a 401 error. Authentication failures share one
// message so callers cannot probe which check failed.
func Unauthorized(c echo.Context) error {
	return Error(c, http.StatusUnauthorized, "please authenticate")
}

// NotFound writes a 404 error.
func NotFound(c echo.Context) error {
	return Error(c, http.StatusNotFound, "not found")
}

// InternalServerError writes a 500 error with a generic message.
func InternalServerError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, "internal server error")
}
