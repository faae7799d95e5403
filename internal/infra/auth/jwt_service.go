// Package auth provides the JWT implementation of the token service.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"superstore/config"
	"superstore/internal/domain/service"
)

// jwtService signs and validates session tokens with a single HMAC secret.
type jwtService struct {
	secret []byte
}

// NewJWTService is the constructor for jwtService. The secret is only
// required when token auth is switched on.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth != nil && cfg.Auth.Enabled && cfg.Auth.Secret == "" {
		return nil, errors.New("jwt secret must be provided when auth is enabled")
	}

	var secret string
	if cfg.Auth != nil {
		secret = cfg.Auth.Secret
	}

	return &jwtService{secret: []byte(secret)}, nil
}

// GenerateToken creates a signed token for the given subject.
func (s *jwtService) GenerateToken(subject string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub": subject,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(s.secret)
}

// ValidateToken checks the token signature and expiry and returns the
// subject claim.
func (s *jwtService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		return "", err
	}

	if !token.Valid {
		return "", jwt.ErrTokenUnverifiable
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return "", err
	}

	return subject, nil
}
