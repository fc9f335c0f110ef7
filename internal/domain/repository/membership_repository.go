// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"corral/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for membership persistence.
var (
	// ErrMembershipNotFound is returned when a (device, group) association does not exist.
	ErrMembershipNotFound = errors.New("membership not found")
	// ErrMembershipExists is returned when an insert collides with the
	// (device, group) uniqueness constraint.
	ErrMembershipExists = errors.New("membership already exists")
)

// MembershipRepository manages the many-to-many association between devices
// and groups. Ownership checks happen one level up, in the use case layer,
// where each resolution step maps to a distinct user-facing error.
type MembershipRepository interface {
	// Create inserts a new (device, group) association.
	// Returns ErrMembershipExists if the pair is already associated.
	Create(ctx context.Context, membership *entity.Membership) error

	// Find retrieves the association for an exact (device, group) pair.
	Find(ctx context.Context, deviceID, groupID uuid.UUID) (*entity.Membership, error)

	// Delete removes the association for an exact (device, group) pair.
	// Returns ErrMembershipNotFound if no row matched.
	Delete(ctx context.Context, deviceID, groupID uuid.UUID) error

	// FindGroupsByDevice retrieves the groups a device currently belongs to,
	// used to snapshot memberships into the token payload at login.
	FindGroupsByDevice(ctx context.Context, deviceID uuid.UUID) ([]entity.GroupRef, error)

	// FindLinksByUser retrieves every membership row joined with its group,
	// scoped to groups owned by the given user. Feeds the in-memory merge
	// that nests groups under devices in listings.
	FindLinksByUser(ctx context.Context, userID uuid.UUID) ([]*entity.DeviceGroupLink, error)
}
