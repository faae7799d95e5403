package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"superstore/config"
	domainerrors "superstore/internal/domain/errors"
	"superstore/internal/domain/service"
)

// AuthMiddleware gates route groups behind a bearer session token. The
// gate is disabled unless auth is configured and enabled, so local
// dashboards can run open.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	enabled  bool
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc: tokenSvc,
		enabled:  cfg.Auth != nil && cfg.Auth.Enabled,
	}
}

// Authenticate validates the bearer token and stores its subject on the
// request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.enabled {
			return next(c)
		}

		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WithDetails("Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrUnauthorized.WithDetails("token must be sent as Bearer")
		}

		subject, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthorized.WithDetails("invalid or expired token")
		}

		c.Set("subject", subject)

		return next(c)
	}
}
