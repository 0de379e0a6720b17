package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// RequestLogger returns middleware that logs each HTTP request on completion
// with method, path, status, duration, and client info. The log level follows
// the response status: 5xx is error, 4xx is warn, everything else info.
func RequestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// Let Echo's error handler set the response status first.
				c.Error(err)
			}

			duration := time.Since(start)
			req := c.Request()
			res := c.Response()

			var event *zerolog.Event
			switch {
			case res.Status >= 500:
				event = log.Error()
			case res.Status >= 400:
				event = log.Warn()
			default:
				event = log.Info()
			}

			event.
				Str("request_id", GetRequestID(c)).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("query", req.URL.RawQuery).
				Int("status", res.Status).
				Int64("duration_ms", duration.Milliseconds()).
				Int64("bytes_out", res.Size).
				Str("client_ip", c.RealIP()).
				Str("user_agent", req.UserAgent()).
				Msg("HTTP request")

			// Already handled via c.Error.
			return nil
		}
	}
}
