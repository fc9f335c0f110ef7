// Package service defines the interfaces for domain services that require
// infrastructure-level implementations.
package service

import (
	"errors"
	"time"

	"corral/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for token verification.
var (
	// ErrTokenInvalid is returned when a token is malformed or its signature
	// does not verify against the service public key.
	ErrTokenInvalid = errors.New("token invalid")
	// ErrTokenExpired is returned when a token's signature verifies but its
	// expiry has passed.
	ErrTokenExpired = errors.New("token expired")
)

// TokenClaims is the payload embedded in an issued token. Claims are visible
// to any holder; they are tamper-proof, not encrypted.
type TokenClaims struct {
	UserID   uuid.UUID         // The "uuid" claim, identifying the account.
	DeviceID *uuid.UUID        // The "device_id" claim, set when a device was bound at login.
	Groups   []entity.GroupRef // The "groups" claim, a snapshot of the bound device's memberships at login.
}

// TokenService signs and verifies bearer tokens with an asymmetric keypair:
// the private key signs, the public key verifies.
type TokenService interface {
	// Issue signs a token carrying the given claims with a fixed expiry
	// horizon from now, and reports the expiry it embedded.
	Issue(claims *TokenClaims) (token string, expiresAt time.Time, err error)

	// Verify checks signature and expiry, returning the embedded claims.
	// Fails with ErrTokenInvalid or ErrTokenExpired.
	Verify(token string) (*TokenClaims, error)

	// Decode checks the signature but ignores expiry. Renewal uses this:
	// the signature must still be genuine, but an expired token may be
	// renewed as long as its registry row survives.
	Decode(token string) (*TokenClaims, error)
}
