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

// membershipRepository implements the repository.MembershipRepository interface.
type membershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository is the constructor for membershipRepository.
func NewMembershipRepository(db *gorm.DB) repository.MembershipRepository {
	return &membershipRepository{
		db: db,
	}
}

// Create inserts a new (device, group) association. The composite primary
// key is the authoritative duplicate guard.
func (repo *membershipRepository) Create(ctx context.Context, membership *entity.Membership) error {
	membershipM := fromMembershipDomain(membership)

	if err := repo.db.WithContext(ctx).Create(membershipM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrMembershipExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create membership")
	}

	membership.CreatedAt = membershipM.CreatedAt

	return nil
}

// Find retrieves the association for an exact (device, group) pair.
func (repo *membershipRepository) Find(ctx context.Context, deviceID, groupID uuid.UUID) (*entity.Membership, error) {
	var membershipM model.MembershipModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ? AND group_id = ?", deviceID, groupID).
		First(&membershipM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMembershipNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find membership")
	}

	return toMembershipDomain(&membershipM), nil
}

// Delete removes the association for an exact (device, group) pair.
func (repo *membershipRepository) Delete(ctx context.Context, deviceID, groupID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("device_id = ? AND group_id = ?", deviceID, groupID).
		Delete(&model.MembershipModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete membership")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMembershipNotFound
	}

	return nil
}

// FindGroupsByDevice retrieves the groups a device currently belongs to.
func (repo *membershipRepository) FindGroupsByDevice(ctx context.Context, deviceID uuid.UUID) ([]entity.GroupRef, error) {
	var rows []struct {
		ID   uuid.UUID
		Name string
	}

	if err := repo.db.WithContext(ctx).
		Table("device_collections").
		Select("collections.id, collections.name").
		Joins("JOIN collections ON collections.id = device_collections.group_id").
		Where("device_collections.device_id = ?", deviceID).
		Order("collections.created_at ASC").
		Scan(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list groups by device")
	}

	refs := make([]entity.GroupRef, 0, len(rows))
	for _, row := range rows {
		refs = append(refs, entity.GroupRef{ID: row.ID, Name: row.Name})
	}

	return refs, nil
}

// FindLinksByUser retrieves every membership row joined with its group,
// scoped to groups owned by the given user.
func (repo *membershipRepository) FindLinksByUser(ctx context.Context, userID uuid.UUID) ([]*entity.DeviceGroupLink, error) {
	var rows []struct {
		DeviceID uuid.UUID
		ID       uuid.UUID
		Name     string
	}

	if err := repo.db.WithContext(ctx).
		Table("device_collections").
		Select("device_collections.device_id, collections.id, collections.name").
		Joins("JOIN collections ON collections.id = device_collections.group_id").
		Where("collections.user_id = ?", userID).
		Order("collections.created_at ASC").
		Scan(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list memberships by user")
	}

	links := make([]*entity.DeviceGroupLink, 0, len(rows))
	for _, row := range rows {
		links = append(links, &entity.DeviceGroupLink{
			DeviceID: row.DeviceID,
			Group:    entity.GroupRef{ID: row.ID, Name: row.Name},
		})
	}

	return links, nil
}

// --- Mapper Functions ---

// toMembershipDomain converts a GORM MembershipModel to a domain Membership entity.
func toMembershipDomain(data *model.MembershipModel) *entity.Membership {
	if data == nil {
		return nil
	}

	return &entity.Membership{
		DeviceID:  data.DeviceID,
		GroupID:   data.GroupID,
		CreatedAt: data.CreatedAt,
	}
}

// fromMembershipDomain converts a domain Membership entity to a GORM MembershipModel.
func fromMembershipDomain(data *entity.Membership) *model.MembershipModel {
	if data == nil {
		return nil
	}

	return &model.MembershipModel{
		DeviceID:  data.DeviceID,
		GroupID:   data.GroupID,
		CreatedAt: data.CreatedAt,
	}
}
