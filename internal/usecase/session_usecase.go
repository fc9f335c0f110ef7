package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RenewOutput returns the replacement token after a successful renewal.
type RenewOutput struct {
	Token     string
	ExpiresAt time.Time
}

// SessionUsecase manages the lifecycle of issued tokens after login.
type SessionUsecase interface {
	// Renew exchanges an old token for a fresh one. The old token's
	// signature must verify, its expiry is ignored, and its registry row is
	// atomically replaced; the device binding is carried forward while the
	// group snapshot is dropped.
	Renew(ctx context.Context, oldToken string) (*RenewOutput, error)

	// Logout revokes the single token the request was authorized with.
	Logout(ctx context.Context, rawToken string) error

	// LogoutAll revokes every token issued to the user.
	LogoutAll(ctx context.Context, userID uuid.UUID) error
}
