package usecase

import (
	"context"

	"corral/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceUsecase defines the interface for device management use cases.
type DeviceUsecase interface {
	// List retrieves the user's devices, excluding soft-deleted ones, with
	// each device's group memberships nested under it.
	List(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error)

	// Register creates a new device and returns its generated id.
	Register(ctx context.Context, userID uuid.UUID, name string) (uuid.UUID, error)

	// Delete removes a device. With keepData false the row and its
	// memberships are removed entirely; with keepData true the device is
	// soft-deleted and its data retained.
	Delete(ctx context.Context, userID, deviceID uuid.UUID, keepData bool) error
}
