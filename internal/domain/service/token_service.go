package service

import (
	"time"

	"github.com/google/uuid"
)

// Claims is the verified content of a bearer credential.
type Claims struct {
	UserID    uuid.UUID
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService issues and verifies stateless bearer credentials.
type TokenService interface {
	// Issue signs a credential for userID.
	Issue(userID uuid.UUID) (string, error)

	// Verify rejects malformed, mis-signed and expired tokens.
	Verify(token string) (*Claims, error)
}
