package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Setup registers all middleware on the Echo instance in the correct order.
// The order is important:
//  1. RequestID - first, so every subsequent log line carries the id
//  2. RequestLogger - logs all requests with request ID
//  3. Recover - catches panics and returns 500 (wraps handlers)
//
// This function should be called before registering routes.
func Setup(e *echo.Echo, log zerolog.Logger) {
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.Use(Recover(log))
}
