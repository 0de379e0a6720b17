// Package response provides standardized HTTP response builders for the offer pricing API.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// InvalidRequestBody writes a 400 Bad Request response for malformed request bodies.
func InvalidRequestBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, &ErrorDetail{
		Code:    CodeInvalidRequest,
		Message: MsgInvalidRequestBody,
	})
}

// ValidationError writes a 400 Bad Request response with validation error details.
func ValidationError(c echo.Context, details map[string]string) error {
	return c.JSON(http.StatusBadRequest, &ErrorDetail{
		Code:    CodeValidationError,
		Message: MsgValidationFailed,
		Details: details,
	})
}

// ValidationErrorWithMessage writes a 400 Bad Request response with a custom message.
func ValidationErrorWithMessage(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, &ErrorDetail{
		Code:    CodeValidationError,
		Message: message,
	})
}

// NotFound writes a 404 Not Found response with the given message.
func NotFound(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, &ErrorDetail{
		Code:    CodeNotFound,
		Message: message,
	})
}

// ServiceUnavailable writes a 503 Service Unavailable response.
func ServiceUnavailable(c echo.Context) error {
	return c.JSON(http.StatusServiceUnavailable, &ErrorDetail{
		Code:    CodeServiceUnavailable,
		Message: MsgServiceUnavailable,
	})
}

// GatewayTimeout writes a 504 Gateway Timeout response.
func GatewayTimeout(c echo.Context) error {
	return c.JSON(http.StatusGatewayTimeout, &ErrorDetail{
		Code:    CodeTimeout,
		Message: MsgTimeout,
	})
}

// RequestCancelled writes a 504 Gateway Timeout response for cancelled requests.
func RequestCancelled(c echo.Context) error {
	return c.JSON(http.StatusGatewayTimeout, &ErrorDetail{
		Code:    CodeTimeout,
		Message: MsgRequestCancelled,
	})
}

// InternalServerError writes a 500 Internal Server Error response.
func InternalServerError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, &ErrorDetail{
		Code:    CodeInternalError,
		Message: MsgInternalError,
	})
}
