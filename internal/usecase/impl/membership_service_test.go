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

func newMembershipService(t *testing.T) (*membershipService, *mockRepo.MockTransactionManager) {
	txManager := mockRepo.NewMockTransactionManager(t)

	svc := NewMembershipService(MembershipServiceParams{
		TxManager: txManager,
		Logger:    newDiscardLogger(),
	}).(*membershipService)

	return svc, txManager
}

func TestMembershipService_Add_Success(t *testing.T) {
	svc, txManager := newMembershipService(t)
	ctx := context.Background()

	userID := uuid.New()
	deviceID := uuid.New()
	groupID := uuid.New()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockGroupRepo := mockRepo.NewMockGroupRepository(t)
			mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
			mockMembershipRepo := mockRepo.NewMockMembershipRepository(t)
			mockFactory.EXPECT().GroupRepo().Return(mockGroupRepo)
			mockFactory.EXPECT().DeviceRepo().Return(mockDeviceRepo)
			mockFactory.EXPECT().MembershipRepo().Return(mockMembershipRepo)

			mockGroupRepo.EXPECT().FindByNameAndUser(ctx, "home", userID).
				Return(&entity.Group{ID: groupID, UserID: userID, Name: "home"}, nil)
			mockDeviceRepo.EXPECT().FindByIDAndUser(ctx, deviceID, userID).
				Return(&entity.Device{ID: deviceID, UserID: userID, Name: "phone"}, nil)
			mockMembershipRepo.EXPECT().Create(ctx, mock.MatchedBy(func(membership *entity.Membership) bool {
				return membership.DeviceID == deviceID && membership.GroupID == groupID
			})).Return(nil)

			return fn(mockFactory)
		})

	require.NoError(t, svc.Add(ctx, userID, "home", deviceID))
}

func TestMembershipService_Add_GroupMissing(t *testing.T) {
	svc, txManager := newMembershipService(t)
	ctx := context.Background()

	userID := uuid.New()
	deviceID := uuid.New()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockGroupRepo := mockRepo.NewMockGroupRepository(t)
			mockFactory.EXPECT().GroupRepo().Return(mockGroupRepo)

			mockGroupRepo.EXPECT().FindByNameAndUser(ctx, "nope", userID).
				Return(nil, repository.ErrGroupNotFound)

			return fn(mockFactory)
		})

	err := svc.Add(ctx, userID, "nope", deviceID)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.CodeWrongParameters, appErr.ErrorCode())
	assert.Equal(t, "This group doesn't exist", appErr.Message())
}

func TestMembershipService_Add_DeviceMissing(t *testing.T) {
	svc, txManager := newMembershipService(t)
	ctx := context.Background()

	userID := uuid.New()
	deviceID := uuid.New()
	groupID := uuid.New()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockGroupRepo := mockRepo.NewMockGroupRepository(t)
			mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
			mockFactory.EXPECT().GroupRepo().Return(mockGroupRepo)
			mockFactory.EXPECT().DeviceRepo().Return(mockDeviceRepo)

			mockGroupRepo.EXPECT().FindByNameAndUser(ctx, "home", userID).
				Return(&entity.Group{ID: groupID, UserID: userID, Name: "home"}, nil)
			mockDeviceRepo.EXPECT().FindByIDAndUser(ctx, deviceID, userID).
				Return(nil, repository.ErrDeviceNotFound)

			return fn(mockFactory)
		})

	err := svc.Add(ctx, userID, "home", deviceID)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "This device doesn't exist", appErr.Message())
}

func TestMembershipService_Add_Duplicate(t *testing.T) {
	svc, txManager := newMembershipService(t)
	ctx := context.Background()

	userID := uuid.New()
	deviceID := uuid.New()
	groupID := uuid.New()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockGroupRepo := mockRepo.NewMockGroupRepository(t)
			mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
			mockMembershipRepo := mockRepo.NewMockMembershipRepository(t)
			mockFactory.EXPECT().GroupRepo().Return(mockGroupRepo)
			mockFactory.EXPECT().DeviceRepo().Return(mockDeviceRepo)
			mockFactory.EXPECT().MembershipRepo().Return(mockMembershipRepo)

			mockGroupRepo.EXPECT().FindByNameAndUser(ctx, "home", userID).
				Return(&entity.Group{ID: groupID, UserID: userID, Name: "home"}, nil)
			mockDeviceRepo.EXPECT().FindByIDAndUser(ctx, deviceID, userID).
				Return(&entity.Device{ID: deviceID, UserID: userID, Name: "phone"}, nil)
			mockMembershipRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrMembershipExists)

			return fn(mockFactory)
		})

	err := svc.Add(ctx, userID, "home", deviceID)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.CodeAlreadyRegistered, appErr.ErrorCode())
	assert.Equal(t, "The device is already registered in this group", appErr.Message())
}

func TestMembershipService_Remove_Success(t *testing.T) {
	svc, txManager := newMembershipService(t)
	ctx := context.Background()

	userID := uuid.New()
	deviceID := uuid.New()
	groupID := uuid.New()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockGroupRepo := mockRepo.NewMockGroupRepository(t)
			mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
			mockMembershipRepo := mockRepo.NewMockMembershipRepository(t)
			mockFactory.EXPECT().GroupRepo().Return(mockGroupRepo)
			mockFactory.EXPECT().DeviceRepo().Return(mockDeviceRepo)
			mockFactory.EXPECT().MembershipRepo().Return(mockMembershipRepo)

			mockGroupRepo.EXPECT().FindByNameAndUser(ctx, "home", userID).
				Return(&entity.Group{ID: groupID, UserID: userID, Name: "home"}, nil)
			mockDeviceRepo.EXPECT().FindByIDAndUser(ctx, deviceID, userID).
				Return(&entity.Device{ID: deviceID, UserID: userID, Name: "phone"}, nil)
			mockMembershipRepo.EXPECT().Delete(ctx, deviceID, groupID).Return(nil)

			return fn(mockFactory)
		})

	require.NoError(t, svc.Remove(ctx, userID, "home", deviceID))
}

func TestMembershipService_Remove_NotAssociated(t *testing.T) {
	svc, txManager := newMembershipService(t)
	ctx := context.Background()

	userID := uuid.New()
	deviceID := uuid.New()
	groupID := uuid.New()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockGroupRepo := mockRepo.NewMockGroupRepository(t)
			mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
			mockMembershipRepo := mockRepo.NewMockMembershipRepository(t)
			mockFactory.EXPECT().GroupRepo().Return(mockGroupRepo)
			mockFactory.EXPECT().DeviceRepo().Return(mockDeviceRepo)
			mockFactory.EXPECT().MembershipRepo().Return(mockMembershipRepo)

			mockGroupRepo.EXPECT().FindByNameAndUser(ctx, "home", userID).
				Return(&entity.Group{ID: groupID, UserID: userID, Name: "home"}, nil)
			mockDeviceRepo.EXPECT().FindByIDAndUser(ctx, deviceID, userID).
				Return(&entity.Device{ID: deviceID, UserID: userID, Name: "phone"}, nil)
			mockMembershipRepo.EXPECT().Delete(ctx, deviceID, groupID).Return(repository.ErrMembershipNotFound)

			return fn(mockFactory)
		})

	err := svc.Remove(ctx, userID, "home", deviceID)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.CodeWrongParameters, appErr.ErrorCode())
	assert.Equal(t, "The device is not registered in this group", appErr.Message())
}
