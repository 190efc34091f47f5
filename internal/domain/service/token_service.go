package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims defines the custom claims for checkout session tokens.
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// SessionTokenService issues and validates signed checkout session tokens.
type SessionTokenService interface {
	// IssueSessionToken signs a token bound to the given session ID.
	IssueSessionToken(sessionID string) (token string, expiresAt time.Time, err error)

	// ValidateSessionToken checks the signature and expiry of a token.
	ValidateSessionToken(tokenString string) (*SessionClaims, error)

	// SessionTTL returns how long issued tokens remain valid.
	SessionTTL() time.Duration
}
