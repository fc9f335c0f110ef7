package usecase

import (
	"context"

	"corral/internal/domain/entity"

	"github.com/google/uuid"
)

// GroupUsecase defines the interface for group management use cases.
type GroupUsecase interface {
	// Create makes a new group for the user and returns its generated id.
	// The name must be unique within the user's groups.
	Create(ctx context.Context, userID uuid.UUID, name string) (uuid.UUID, error)

	// Delete removes a group by name; memberships referencing it go with it.
	Delete(ctx context.Context, userID uuid.UUID, name string) error

	// List retrieves all groups owned by the user.
	List(ctx context.Context, userID uuid.UUID) ([]*entity.Group, error)
}
