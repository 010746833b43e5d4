// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"plantcare/config"
	"plantcare/internal/domain/service"

	"golang.org/x/crypto/bcrypt"
)

// minBcryptCost is the lowest work factor accepted for stored passwords.
const minBcryptCost = 10

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher builds a hasher with the configured cost, raised to at least 10.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := minBcryptCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost > cost {
		cost = cfg.Auth.BcryptCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}
