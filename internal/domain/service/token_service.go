// Package service declares domain service interfaces implemented in infra.
package service

import "time"

// TokenService validates the session tokens that gate the protected route
// groups. Token issuance lives here too so operators can mint tokens from
// the CLI and tests can build valid credentials.
type TokenService interface {
	// GenerateToken creates a signed token for the given subject.
	GenerateToken(subject string, ttl time.Duration) (string, error)

	// ValidateToken checks the token signature and expiry and returns the
	// subject claim.
	ValidateToken(tokenString string) (string, error)
}
