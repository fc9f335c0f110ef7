// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Membership is the association record linking one device to one group.
// A given (device, group) pair appears at most once, and both sides must
// belong to the same user.
type Membership struct {
	DeviceID  uuid.UUID // The device side of the association.
	GroupID   uuid.UUID // The group side of the association.
	CreatedAt time.Time // Timestamp of when the device was added to the group.
}

// DeviceGroupLink is a membership row joined with its group, scoped to a
// single user. It is the raw material for the in-memory merge that nests
// group info under each device in listings.
type DeviceGroupLink struct {
	DeviceID uuid.UUID
	Group    GroupRef
}
