// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity of the system, representing a registered account.
// The ID is an opaque UUID rather than a sequential key so that account
// identifiers cannot be enumerated.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	FirstName    string    // The user's given name.
	LastName     string    // The user's family name.
	Email        string    // The user's unique email, used as the login identifier.
	PasswordHash string    // The bcrypt-hashed password. Never exposed over the API.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
