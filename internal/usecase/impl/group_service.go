package impl

import (
	"context"
	"log/slog"

	deliverycontext "corral/internal/delivery/context"
	"corral/internal/domain/entity"
	domainerrors "corral/internal/domain/errors"
	"corral/internal/domain/repository"
	"corral/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// groupService implements the GroupUsecase interface.
type groupService struct {
	txManager repository.TransactionManager
	groupRepo repository.GroupRepository
	logger    *slog.Logger
}

// GroupServiceParams holds dependencies for groupService, injected by Fx.
type GroupServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	GroupRepo repository.GroupRepository
	Logger    *slog.Logger
}

// NewGroupService is the constructor for groupService.
func NewGroupService(params GroupServiceParams) usecase.GroupUsecase {
	return &groupService{
		txManager: params.TxManager,
		groupRepo: params.GroupRepo,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *groupService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create makes a new group. The name pre-check runs inside the transaction
// so the common duplicate gets a clean error; the per-user unique constraint
// remains the authoritative guard should two creations race past the check.
func (srv *groupService) Create(ctx context.Context, userID uuid.UUID, name string) (uuid.UUID, error) {
	var groupID uuid.UUID

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		groupRepo := repoFactory.GroupRepo()

		_, err := groupRepo.FindByNameAndUser(ctx, name, userID)
		if err == nil {
			return domainerrors.AlreadyRegistered("This group already exist")
		}
		if !errors.Is(err, repository.ErrGroupNotFound) {
			return errors.Wrap(err, "failed to check group name availability")
		}

		group := &entity.Group{
			ID:     uuid.New(),
			UserID: userID,
			Name:   name,
		}

		if err := groupRepo.Create(ctx, group); err != nil {
			if errors.Is(err, repository.ErrGroupNameTaken) {
				return domainerrors.AlreadyRegistered("This group already exist")
			}

			return errors.Wrap(err, "failed to create group")
		}

		groupID = group.ID

		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	srv.log(ctx).Info("Group created", slog.Any("userID", userID), slog.Any("groupID", groupID))

	return groupID, nil
}

// Delete removes a group by name.
func (srv *groupService) Delete(ctx context.Context, userID uuid.UUID, name string) error {
	if err := srv.groupRepo.DeleteByNameAndUser(ctx, name, userID); err != nil {
		if errors.Is(err, repository.ErrGroupNotFound) {
			return domainerrors.WrongParameters("Wrong group name")
		}

		return errors.Wrap(err, "failed to delete group")
	}

	srv.log(ctx).Info("Group deleted", slog.Any("userID", userID), slog.String("name", name))

	return nil
}

// List retrieves all groups owned by the user.
func (srv *groupService) List(ctx context.Context, userID uuid.UUID) ([]*entity.Group, error) {
	groups, err := srv.groupRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list groups")
	}

	return groups, nil
}
