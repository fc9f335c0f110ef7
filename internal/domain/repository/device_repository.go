// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"corral/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDeviceNotFound is returned when a device does not exist or is not owned
// by the acting user. The two cases are deliberately indistinguishable.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository defines the operations for device persistence.
// Every operation is scoped by the owning user id.
type DeviceRepository interface {
	// Create persists a new device for a user.
	Create(ctx context.Context, device *entity.Device) error

	// FindByIDAndUser retrieves a device by id, restricted to the given owner.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Device, error)

	// FindByUser retrieves all of a user's devices, excluding soft-deleted ones.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error)

	// SoftDelete marks a device as deleted while retaining its row and its
	// historical group associations. Returns ErrDeviceNotFound if no row matched.
	SoftDelete(ctx context.Context, userID, id uuid.UUID) error

	// Delete removes a device row entirely; memberships are cascaded away.
	// Returns ErrDeviceNotFound if no row matched.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
