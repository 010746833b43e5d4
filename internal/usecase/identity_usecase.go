// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"plantcare/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput is returned by registration and login.
type AuthOutput struct {
	User  *entity.User // public identity, hash cleared
	Token string
}

// IdentityUsecase defines the interface for account and credential operations.
type IdentityUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Authenticate(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// VerifyCredential resolves a bearer token to the user it was issued for.
	VerifyCredential(ctx context.Context, token string) (*entity.User, error)
}
