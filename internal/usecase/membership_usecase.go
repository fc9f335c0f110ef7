package usecase

import (
	"context"

	"github.com/google/uuid"
)

// MembershipUsecase manages the many-to-many association between a user's
// devices and groups. Both operations resolve the group by name and the
// device by id as sequential checks, because each missing piece maps to a
// distinct user-facing error.
type MembershipUsecase interface {
	// Add associates a device with a group, both owned by the user.
	Add(ctx context.Context, userID uuid.UUID, groupName string, deviceID uuid.UUID) error

	// Remove dissociates a device from a group.
	Remove(ctx context.Context, userID uuid.UUID, groupName string, deviceID uuid.UUID) error
}
