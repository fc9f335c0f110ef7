// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"corral/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for group persistence.
var (
	// ErrGroupNotFound is returned when a group does not exist for the acting user.
	ErrGroupNotFound = errors.New("group not found")
	// ErrGroupNameTaken is returned when an insert collides with the
	// per-user unique name constraint.
	ErrGroupNameTaken = errors.New("group name already registered")
)

// GroupRepository defines the operations for group persistence.
// Every operation is scoped by the owning user id.
type GroupRepository interface {
	// Create persists a new group. Returns ErrGroupNameTaken if the user
	// already has a group with that name.
	Create(ctx context.Context, group *entity.Group) error

	// FindByNameAndUser retrieves a group by its per-user unique name.
	FindByNameAndUser(ctx context.Context, name string, userID uuid.UUID) (*entity.Group, error)

	// FindByUser retrieves all groups owned by a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Group, error)

	// DeleteByNameAndUser removes a group by name. Returns ErrGroupNotFound
	// if no row matched.
	DeleteByNameAndUser(ctx context.Context, name string, userID uuid.UUID) error
}
