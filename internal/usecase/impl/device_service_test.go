package impl

import (
	"context"
	"testing"

	"corral/internal/domain/entity"
	domainerrors "corral/internal/domain/errors"
	"corral/internal/domain/repository"
	mockRepo "corral/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDeviceService(t *testing.T) (*deviceService, *mockRepo.MockDeviceRepository, *mockRepo.MockMembershipRepository) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	membershipRepo := mockRepo.NewMockMembershipRepository(t)

	svc := NewDeviceService(DeviceServiceParams{
		DeviceRepo:     deviceRepo,
		MembershipRepo: membershipRepo,
		Logger:         newDiscardLogger(),
	}).(*deviceService)

	return svc, deviceRepo, membershipRepo
}

func TestDeviceService_List_NestsGroups(t *testing.T) {
	svc, deviceRepo, membershipRepo := newDeviceService(t)
	ctx := context.Background()

	userID := uuid.New()
	phoneID := uuid.New()
	sensorID := uuid.New()
	homeRef := entity.GroupRef{ID: uuid.New(), Name: "home"}
	workRef := entity.GroupRef{ID: uuid.New(), Name: "work"}

	deviceRepo.EXPECT().FindByUser(ctx, userID).Return([]*entity.Device{
		{ID: phoneID, UserID: userID, Name: "phone"},
		{ID: sensorID, UserID: userID, Name: "sensor"},
	}, nil)
	membershipRepo.EXPECT().FindLinksByUser(ctx, userID).Return([]*entity.DeviceGroupLink{
		{DeviceID: phoneID, Group: homeRef},
		{DeviceID: phoneID, Group: workRef},
	}, nil)

	devices, err := svc.List(ctx, userID)

	require.NoError(t, err)
	require.Len(t, devices, 2)
	assert.Equal(t, []entity.GroupRef{homeRef, workRef}, devices[0].Groups)
	// A device in no group reports an empty list, not null.
	require.NotNil(t, devices[1].Groups)
	assert.Empty(t, devices[1].Groups)
}

func TestDeviceService_List_Empty(t *testing.T) {
	svc, deviceRepo, membershipRepo := newDeviceService(t)
	ctx := context.Background()

	userID := uuid.New()
	deviceRepo.EXPECT().FindByUser(ctx, userID).Return([]*entity.Device{}, nil)
	membershipRepo.EXPECT().FindLinksByUser(ctx, userID).Return([]*entity.DeviceGroupLink{}, nil)

	devices, err := svc.List(ctx, userID)

	require.NoError(t, err)
	assert.Empty(t, devices)
}

func TestDeviceService_Register(t *testing.T) {
	svc, deviceRepo, _ := newDeviceService(t)
	ctx := context.Background()

	userID := uuid.New()
	deviceRepo.EXPECT().Create(ctx, mock.MatchedBy(func(device *entity.Device) bool {
		return device.UserID == userID && device.Name == "phone" && device.ID != uuid.Nil
	})).Return(nil)

	deviceID, err := svc.Register(ctx, userID, "phone")

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, deviceID)
}

func TestDeviceService_Delete_KeepData(t *testing.T) {
	svc, deviceRepo, _ := newDeviceService(t)
	ctx := context.Background()

	userID := uuid.New()
	deviceID := uuid.New()
	deviceRepo.EXPECT().SoftDelete(ctx, userID, deviceID).Return(nil)

	require.NoError(t, svc.Delete(ctx, userID, deviceID, true))
}

func TestDeviceService_Delete_Hard(t *testing.T) {
	svc, deviceRepo, _ := newDeviceService(t)
	ctx := context.Background()

	userID := uuid.New()
	deviceID := uuid.New()
	deviceRepo.EXPECT().Delete(ctx, userID, deviceID).Return(nil)

	require.NoError(t, svc.Delete(ctx, userID, deviceID, false))
}

func TestDeviceService_Delete_NotFound(t *testing.T) {
	svc, deviceRepo, _ := newDeviceService(t)
	ctx := context.Background()

	userID := uuid.New()
	deviceID := uuid.New()
	deviceRepo.EXPECT().Delete(ctx, userID, deviceID).Return(repository.ErrDeviceNotFound)

	err := svc.Delete(ctx, userID, deviceID, false)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.CodeWrongParameters, appErr.ErrorCode())
	assert.Equal(t, "Wrong device_id", appErr.Message())
}
