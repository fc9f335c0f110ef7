// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// LoginInput defines the data required for a user to log in. DeviceID is
// optional; when present the issued token is bound to that device and
// carries a snapshot of its group memberships.
type LoginInput struct {
	Email    string
	Password string
	DeviceID *uuid.UUID
}

// UpdateProfileInput defines a profile update request. Password is the
// current password and is always required; every other field is optional
// and keeps its previous value when nil.
type UpdateProfileInput struct {
	Password    string
	FirstName   *string
	LastName    *string
	Email       *string
	NewPassword *string
}

// --- Output DTOs ---

// LoginOutput returns the issued token after a successful login.
type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	// Register creates a new account with a freshly generated UUID and a
	// hashed password.
	Register(ctx context.Context, input *RegisterInput) error

	// Login verifies credentials, optionally binds a device, issues a token
	// and persists it in the token registry.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// UpdateProfile re-verifies the current password and applies the
	// provided fields; omitted fields keep their previous values.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) error

	// DeleteAccount re-verifies the password and removes the account with
	// everything it owns: devices, groups, memberships and tokens.
	DeleteAccount(ctx context.Context, userID uuid.UUID, password string) error
}
