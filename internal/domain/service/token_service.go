package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for the admin JWT.
type Claims struct {
	Username string
	Roles    []string
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateToken creates an access token for the admin.
	GenerateToken(username string, roles []string) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// GetTokenDuration returns how long issued tokens stay valid.
	GetTokenDuration() time.Duration
}
