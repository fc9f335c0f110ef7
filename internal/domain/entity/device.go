// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Device represents a physical device registered by a user. A device is
// exclusively owned by one user; every query against devices is scoped by
// the owning user id.
type Device struct {
	ID        uuid.UUID  // The Global Unique Identifier (GUID) for the device.
	UserID    uuid.UUID  // The ID of the user who owns this device.
	Name      string     // The user-chosen display name for the device.
	IsDeleted bool       // Soft-delete flag. A soft-deleted device is hidden from listings but its data is retained.
	CreatedAt time.Time  // Timestamp of when this device was registered.
	Groups    []GroupRef // Group memberships, populated when listing devices.
}
