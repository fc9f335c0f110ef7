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

// membershipService implements the MembershipUsecase interface.
type membershipService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// MembershipServiceParams holds dependencies for membershipService, injected by Fx.
type MembershipServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewMembershipService is the constructor for membershipService.
func NewMembershipService(params MembershipServiceParams) usecase.MembershipUsecase {
	return &membershipService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *membershipService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Add associates a device with a group. The resolution order is fixed,
// group by (user, name), then device by (user, id), then the membership
// row itself, because each missing piece maps to a distinct error.
func (srv *membershipService) Add(ctx context.Context, userID uuid.UUID, groupName string, deviceID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		group, device, err := srv.resolve(ctx, repoFactory, userID, groupName, deviceID)
		if err != nil {
			return err
		}

		membership := &entity.Membership{
			DeviceID: device.ID,
			GroupID:  group.ID,
		}

		if err := repoFactory.MembershipRepo().Create(ctx, membership); err != nil {
			if errors.Is(err, repository.ErrMembershipExists) {
				return domainerrors.AlreadyRegistered("The device is already registered in this group")
			}

			return errors.Wrap(err, "failed to create membership")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Device added to group", slog.Any("userID", userID), slog.Any("deviceID", deviceID), slog.String("group", groupName))

	return nil
}

// Remove dissociates a device from a group using the same resolution chain
// as Add; a pair that is not associated is its own distinct failure.
func (srv *membershipService) Remove(ctx context.Context, userID uuid.UUID, groupName string, deviceID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		group, device, err := srv.resolve(ctx, repoFactory, userID, groupName, deviceID)
		if err != nil {
			return err
		}

		if err := repoFactory.MembershipRepo().Delete(ctx, device.ID, group.ID); err != nil {
			if errors.Is(err, repository.ErrMembershipNotFound) {
				return domainerrors.WrongParameters("The device is not registered in this group")
			}

			return errors.Wrap(err, "failed to delete membership")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Device removed from group", slog.Any("userID", userID), slog.Any("deviceID", deviceID), slog.String("group", groupName))

	return nil
}

// resolve looks up the group and the device, both scoped to the acting user.
func (srv *membershipService) resolve(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	userID uuid.UUID,
	groupName string,
	deviceID uuid.UUID,
) (*entity.Group, *entity.Device, error) {
	group, err := repoFactory.GroupRepo().FindByNameAndUser(ctx, groupName, userID)
	if err != nil {
		if errors.Is(err, repository.ErrGroupNotFound) {
			return nil, nil, domainerrors.WrongParameters("This group doesn't exist")
		}

		return nil, nil, errors.Wrap(err, "failed to find group")
	}

	device, err := repoFactory.DeviceRepo().FindByIDAndUser(ctx, deviceID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, nil, domainerrors.WrongParameters("This device doesn't exist")
		}

		return nil, nil, errors.Wrap(err, "failed to find device")
	}

	return group, device, nil
}
