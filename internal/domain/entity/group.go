// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Group is a user-defined named bucket that devices can be associated with.
// The external API calls these "collections"; the name is unique per owner.
type Group struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the group.
	UserID    uuid.UUID // The ID of the user who owns this group.
	Name      string    // The group name, unique within the owning user's groups.
	CreatedAt time.Time // Timestamp of when this group was created.
}

// GroupRef is the compact representation of a group embedded in device
// listings and token payloads. The JSON keys follow the public API
// vocabulary ("collections").
type GroupRef struct {
	ID   uuid.UUID `json:"id_collections"`
	Name string    `json:"collections_name"`
}
