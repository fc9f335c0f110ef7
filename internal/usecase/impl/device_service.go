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

// deviceService implements the DeviceUsecase interface.
type deviceService struct {
	deviceRepo repository.DeviceRepository
	membership repository.MembershipRepository
	logger     *slog.Logger
}

// DeviceServiceParams holds dependencies for deviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	DeviceRepo     repository.DeviceRepository
	MembershipRepo repository.MembershipRepository
	Logger         *slog.Logger
}

// NewDeviceService is the constructor for deviceService.
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: params.DeviceRepo,
		membership: params.MembershipRepo,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List retrieves the user's devices with their group memberships nested.
// Two user-scoped queries and an in-memory merge keyed by device id.
func (srv *deviceService) List(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error) {
	devices, err := srv.deviceRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	links, err := srv.membership.FindLinksByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list memberships")
	}

	groupsByDevice := make(map[uuid.UUID][]entity.GroupRef, len(devices))
	for _, link := range links {
		groupsByDevice[link.DeviceID] = append(groupsByDevice[link.DeviceID], link.Group)
	}

	for _, device := range devices {
		device.Groups = groupsByDevice[device.ID]
		if device.Groups == nil {
			device.Groups = []entity.GroupRef{}
		}
	}

	return devices, nil
}

// Register creates a new device and returns its generated id.
func (srv *deviceService) Register(ctx context.Context, userID uuid.UUID, name string) (uuid.UUID, error) {
	device := &entity.Device{
		ID:     uuid.New(),
		UserID: userID,
		Name:   name,
	}

	if err := srv.deviceRepo.Create(ctx, device); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to create device")
	}

	srv.log(ctx).Info("Device registered", slog.Any("userID", userID), slog.Any("deviceID", device.ID))

	return device.ID, nil
}

// Delete removes a device, hard or soft depending on keepData. Zero matched
// rows means the device does not exist or belongs to someone else; the two
// cases are deliberately indistinguishable to the caller.
func (srv *deviceService) Delete(ctx context.Context, userID, deviceID uuid.UUID, keepData bool) error {
	var err error
	if keepData {
		err = srv.deviceRepo.SoftDelete(ctx, userID, deviceID)
	} else {
		err = srv.deviceRepo.Delete(ctx, userID, deviceID)
	}

	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.WrongParameters("Wrong device_id")
		}

		return errors.Wrap(err, "failed to delete device")
	}

	srv.log(ctx).Info("Device deleted", slog.Any("userID", userID), slog.Any("deviceID", deviceID), slog.Bool("keepData", keepData))

	return nil
}
