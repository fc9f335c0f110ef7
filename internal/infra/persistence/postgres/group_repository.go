package postgres

import (
	"context"

	"corral/internal/domain/entity"
	domainerrors "corral/internal/domain/errors"
	"corral/internal/domain/repository"
	"corral/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// groupRepository implements the repository.GroupRepository interface.
type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository is the constructor for groupRepository.
func NewGroupRepository(db *gorm.DB) repository.GroupRepository {
	return &groupRepository{
		db: db,
	}
}

// Create persists a new group entity to the storage. The per-user unique
// name index is the authoritative duplicate guard.
func (repo *groupRepository) Create(ctx context.Context, group *entity.Group) error {
	groupM := fromGroupDomain(group)

	if err := repo.db.WithContext(ctx).Create(groupM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrGroupNameTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create group")
	}

	// Update the entity with generated values
	group.ID = groupM.ID
	group.CreatedAt = groupM.CreatedAt

	return nil
}

// FindByNameAndUser retrieves a group by its per-user unique name.
func (repo *groupRepository) FindByNameAndUser(ctx context.Context, name string, userID uuid.UUID) (*entity.Group, error) {
	var groupM model.GroupModel

	if err := repo.db.WithContext(ctx).
		Where("name = ? AND user_id = ?", name, userID).
		First(&groupM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGroupNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find group by name")
	}

	return toGroupDomain(&groupM), nil
}

// FindByUser retrieves all groups owned by a user.
func (repo *groupRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Group, error) {
	var groupMs []model.GroupModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&groupMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list groups")
	}

	groups := make([]*entity.Group, 0, len(groupMs))
	for i := range groupMs {
		groups = append(groups, toGroupDomain(&groupMs[i]))
	}

	return groups, nil
}

// DeleteByNameAndUser removes a group by name; memberships are cascaded away.
func (repo *groupRepository) DeleteByNameAndUser(ctx context.Context, name string, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("name = ? AND user_id = ?", name, userID).
		Delete(&model.GroupModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete group")
	}

	if result.RowsAffected == 0 {
		return repository.ErrGroupNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toGroupDomain converts a GORM GroupModel to a domain Group entity.
func toGroupDomain(data *model.GroupModel) *entity.Group {
	if data == nil {
		return nil
	}

	return &entity.Group{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
	}
}

// fromGroupDomain converts a domain Group entity to a GORM GroupModel.
func fromGroupDomain(data *entity.Group) *model.GroupModel {
	if data == nil {
		return nil
	}

	return &model.GroupModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
	}
}
