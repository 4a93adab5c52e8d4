package service

import (
	"time"
)

// TokenService issues and verifies the bearer tokens that guard the write routes.
type TokenService interface {
	// IssueToken signs a token for subject valid for ttl.
	IssueToken(subject string, ttl time.Duration) (string, error)

	// ValidateToken checks signature, expiry and issuer, and returns the subject.
	ValidateToken(tokenString string) (string, error)
}
