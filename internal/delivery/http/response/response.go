// Package response defines the error envelope returned when a request fails.
// Successful responses carry their resource body directly; only failures are
// wrapped.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response is the unified failure envelope.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-friendly message
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo carries the machine-readable error detail.
type ErrorInfo struct {
	Code    string `json:"code"`    // Business error code, e.g. "POST_NOT_FOUND"
	Details string `json:"details"` // Detailed error description
}

// Error writes an error envelope with the given status and codes.
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// BindingError is the 400 envelope for requests whose body could not be bound.
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}
