// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuthToken is the server-side record of an issued bearer token. A token is
// live only while its row exists; deleting the row revokes the token
// immediately, independent of the cryptographic expiry embedded in it.
// The registry is keyed by the raw signed token string for O(1) lookup.
type AuthToken struct {
	ID        uuid.UUID // The unique ID for this registry row.
	UserID    uuid.UUID // The user the token was issued to.
	Token     string    // The raw signed token string, unique across the registry.
	ExpiresAt time.Time // The cryptographic expiry carried by the token, mirrored for cleanup.
	CreatedAt time.Time // Timestamp of when the token was issued.
}

// Principal is the authenticated identity attached to a request after the
// authorization middleware has validated the bearer token.
type Principal struct {
	UserID   uuid.UUID  // The authenticated user.
	DeviceID *uuid.UUID // The device bound at login, if any.
	Groups   []GroupRef // Snapshot of the bound device's group memberships at login, if any.
	RawToken string     // The raw bearer token the request carried, needed for single-token logout.
}
