// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"corral/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTokenNotFound is returned when no registry row matches the given token.
var ErrTokenNotFound = errors.New("token not found")

// TokenRepository is the server-side token registry. A token authorizes
// requests only while its row exists, which is what makes immediate logout
// and logout-everywhere possible on top of an otherwise stateless signature
// scheme. Rows are keyed by the raw token string.
type TokenRepository interface {
	// Create persists a newly issued token.
	Create(ctx context.Context, token *entity.AuthToken) error

	// FindByToken retrieves the registry row for a raw token string.
	// Returns ErrTokenNotFound if the token has been revoked or never existed.
	FindByToken(ctx context.Context, raw string) (*entity.AuthToken, error)

	// Replace atomically swaps an old token's row for a new token value,
	// matching by the old raw token. Returns ErrTokenNotFound if no row
	// matched, which is how renewal of an unknown token is detected.
	Replace(ctx context.Context, oldToken, newToken string, expiresAt time.Time) error

	// DeleteByToken revokes a single token.
	DeleteByToken(ctx context.Context, raw string) error

	// DeleteByUserID revokes every token issued to a user ("logout everywhere").
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error

	// DeleteExpired prunes rows whose cryptographic expiry has passed.
	// Revoking them is a no-op security-wise; this keeps the table small.
	DeleteExpired(ctx context.Context) error
}
