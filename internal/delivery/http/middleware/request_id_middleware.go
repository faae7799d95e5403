// Package middleware contains the echo middleware for the HTTP delivery.
package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	deliveryctx "superstore/internal/delivery/context"
)

// RequestID tags every request with an identifier, reusing the caller's
// X-Request-Id header when present.
func RequestID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliveryctx.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		deliveryctx.SetRequestID(c, requestID)
		c.Response().Header().Set(deliveryctx.HeaderXRequestID, requestID)

		ctx := deliveryctx.WithRequestID(c.Request().Context(), requestID)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
