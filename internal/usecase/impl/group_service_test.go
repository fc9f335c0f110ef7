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

func newGroupService(t *testing.T) (*groupService, *mockRepo.MockTransactionManager, *mockRepo.MockGroupRepository) {
	txManager := mockRepo.NewMockTransactionManager(t)
	groupRepo := mockRepo.NewMockGroupRepository(t)

	svc := NewGroupService(GroupServiceParams{
		TxManager: txManager,
		GroupRepo: groupRepo,
		Logger:    newDiscardLogger(),
	}).(*groupService)

	return svc, txManager, groupRepo
}

func TestGroupService_Create_Success(t *testing.T) {
	svc, txManager, _ := newGroupService(t)
	ctx := context.Background()

	userID := uuid.New()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockGroupRepo := mockRepo.NewMockGroupRepository(t)
			mockFactory.EXPECT().GroupRepo().Return(mockGroupRepo)

			mockGroupRepo.EXPECT().FindByNameAndUser(ctx, "home", userID).Return(nil, repository.ErrGroupNotFound)
			mockGroupRepo.EXPECT().Create(ctx, mock.MatchedBy(func(group *entity.Group) bool {
				return group.UserID == userID && group.Name == "home" && group.ID != uuid.Nil
			})).Return(nil)

			return fn(mockFactory)
		})

	groupID, err := svc.Create(ctx, userID, "home")

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, groupID)
}

func TestGroupService_Create_Duplicate(t *testing.T) {
	svc, txManager, _ := newGroupService(t)
	ctx := context.Background()

	userID := uuid.New()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockGroupRepo := mockRepo.NewMockGroupRepository(t)
			mockFactory.EXPECT().GroupRepo().Return(mockGroupRepo)

			mockGroupRepo.EXPECT().FindByNameAndUser(ctx, "home", userID).
				Return(&entity.Group{ID: uuid.New(), UserID: userID, Name: "home"}, nil)

			return fn(mockFactory)
		})

	_, err := svc.Create(ctx, userID, "home")

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.CodeAlreadyRegistered, appErr.ErrorCode())
	assert.Equal(t, "This group already exist", appErr.Message())
	assert.Equal(t, 403, appErr.HTTPCode())
}

func TestGroupService_Delete_Success(t *testing.T) {
	svc, _, groupRepo := newGroupService(t)
	ctx := context.Background()

	userID := uuid.New()
	groupRepo.EXPECT().DeleteByNameAndUser(ctx, "home", userID).Return(nil)

	require.NoError(t, svc.Delete(ctx, userID, "home"))
}

func TestGroupService_Delete_NotFound(t *testing.T) {
	svc, _, groupRepo := newGroupService(t)
	ctx := context.Background()

	userID := uuid.New()
	groupRepo.EXPECT().DeleteByNameAndUser(ctx, "nope", userID).Return(repository.ErrGroupNotFound)

	err := svc.Delete(ctx, userID, "nope")

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.CodeWrongParameters, appErr.ErrorCode())
	assert.Equal(t, "Wrong group name", appErr.Message())
}

func TestGroupService_List(t *testing.T) {
	svc, _, groupRepo := newGroupService(t)
	ctx := context.Background()

	userID := uuid.New()
	groups := []*entity.Group{
		{ID: uuid.New(), UserID: userID, Name: "home"},
		{ID: uuid.New(), UserID: userID, Name: "work"},
	}
	groupRepo.EXPECT().FindByUser(ctx, userID).Return(groups, nil)

	got, err := svc.List(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, groups, got)
}
