package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	requestIDHeader     = "X-Request-ID"
	requestIDContextKey = "request_id"
)

// RequestID propagates the caller's X-Request-ID, assigning a fresh
// uuid when the header is absent, and echoes it on the response.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(requestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}

			c.Set(requestIDContextKey, id)
			c.Response().Header().Set(requestIDHeader, id)

			return next(c)
		}
	}
}

// GetRequestID returns the request ID bound by RequestID, or "".
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(requestIDContextKey).(string)
	return id
}
