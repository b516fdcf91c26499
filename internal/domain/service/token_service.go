package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the claims carried by hosted-auth access tokens.
type Claims struct {
	UserID uuid.UUID `json:"-"`
	Email  string    `json:"email,omitempty"`
	Role   string    `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating access tokens.
// Tokens are normally issued by the hosted auth provider; issuing exists for local development and tests.
type TokenService interface {
	// GenerateAccessToken signs an access token for the given user.
	GenerateAccessToken(userID uuid.UUID, email string, ttl time.Duration) (string, error)

	// ValidateToken checks the signature and expiry of a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
