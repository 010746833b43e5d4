// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that owns plants.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Username     string    // Unique display name, at least three characters.
	Email        string    // Unique, lowercased login identifier.
	PasswordHash string    // bcrypt hash; never leaves the service layer.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

// Public returns a copy of the user without the password hash.
func (u *User) Public() *User {
	if u == nil {
		return nil
	}
	public := *u
	public.PasswordHash = ""

	return &public
}
