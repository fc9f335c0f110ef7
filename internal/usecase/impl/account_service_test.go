package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"corral/internal/domain/entity"
	domainerrors "corral/internal/domain/errors"
	"corral/internal/domain/repository"
	"corral/internal/domain/service"
	mockRepo "corral/internal/mocks/repository"
	mockService "corral/internal/mocks/service"
	"corral/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAccountService(t *testing.T) (*accountService, *mockRepo.MockTransactionManager, *mockRepo.MockUserRepository, *mockRepo.MockDeviceRepository, *mockRepo.MockMembershipRepository, *mockRepo.MockTokenRepository, *mockService.MockPasswordHasher, *mockService.MockTokenService) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	membershipRepo := mockRepo.NewMockMembershipRepository(t)
	tokenRepo := mockRepo.NewMockTokenRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)

	svc := NewAccountService(AccountServiceParams{
		TxManager:      txManager,
		UserRepo:       userRepo,
		DeviceRepo:     deviceRepo,
		MembershipRepo: membershipRepo,
		TokenRepo:      tokenRepo,
		Hasher:         hasher,
		TokenService:   tokenService,
		Logger:         newDiscardLogger(),
	}).(*accountService)

	return svc, txManager, userRepo, deviceRepo, membershipRepo, tokenRepo, hasher, tokenService
}

func TestAccountService_Register_Success(t *testing.T) {
	svc, txManager, _, _, _, _, hasher, _ := newAccountService(t)
	ctx := context.Background()

	hasher.EXPECT().Hash("secret").Return("hashed", nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().FindByEmail(ctx, "jo@example.com").Return(nil, repository.ErrUserNotFound)
			mockUserRepo.EXPECT().Create(ctx, mock.MatchedBy(func(user *entity.User) bool {
				return user.Email == "jo@example.com" && user.PasswordHash == "hashed" && user.ID != uuid.Nil
			})).Return(nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	err := svc.Register(ctx, &usecase.RegisterInput{
		FirstName: "Jo",
		LastName:  "Doe",
		Email:     "jo@example.com",
		Password:  "secret",
	})

	require.NoError(t, err)
}

func TestAccountService_Register_EmailTaken(t *testing.T) {
	svc, txManager, _, _, _, _, hasher, _ := newAccountService(t)
	ctx := context.Background()

	hasher.EXPECT().Hash("secret").Return("hashed", nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().FindByEmail(ctx, "jo@example.com").
				Return(&entity.User{ID: uuid.New(), Email: "jo@example.com"}, nil)

			return fn(mockFactory)
		})

	err := svc.Register(ctx, &usecase.RegisterInput{
		FirstName: "Jo",
		LastName:  "Doe",
		Email:     "jo@example.com",
		Password:  "secret",
	})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.CodeAlreadyRegistered, appErr.ErrorCode())
	assert.Equal(t, "User is already registered", appErr.Message())
}

func TestAccountService_Login_Success(t *testing.T) {
	svc, _, userRepo, _, _, tokenRepo, hasher, tokenService := newAccountService(t)
	ctx := context.Background()

	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "jo@example.com", PasswordHash: "hashed"}
	expiresAt := time.Now().Add(30 * time.Minute)

	userRepo.EXPECT().FindByEmail(ctx, "jo@example.com").Return(user, nil)
	hasher.EXPECT().Check("secret", "hashed").Return(true)
	tokenService.EXPECT().
		Issue(mock.MatchedBy(func(claims *service.TokenClaims) bool {
			return claims.UserID == userID && claims.DeviceID == nil
		})).
		Return("signed-token", expiresAt, nil)
	tokenRepo.EXPECT().Create(ctx, mock.MatchedBy(func(record *entity.AuthToken) bool {
		return record.UserID == userID && record.Token == "signed-token"
	})).Return(nil)

	output, err := svc.Login(ctx, &usecase.LoginInput{Email: "jo@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, expiresAt, output.ExpiresAt)
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	svc, _, userRepo, _, _, _, _, _ := newAccountService(t)
	ctx := context.Background()

	userRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := svc.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "secret"})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.CodeWrongParameters, appErr.ErrorCode())
	assert.Equal(t, "User not found", appErr.Message())
	assert.Equal(t, 401, appErr.HTTPCode())
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	svc, _, userRepo, _, _, _, hasher, _ := newAccountService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Email: "jo@example.com", PasswordHash: "hashed"}

	userRepo.EXPECT().FindByEmail(ctx, "jo@example.com").Return(user, nil)
	hasher.EXPECT().Check("bad", "hashed").Return(false)

	_, err := svc.Login(ctx, &usecase.LoginInput{Email: "jo@example.com", Password: "bad"})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.CodeWrongParameters, appErr.ErrorCode())
	assert.Equal(t, "Wrong password", appErr.Message())
	assert.Equal(t, 401, appErr.HTTPCode())
}

func TestAccountService_Login_DeviceBinding(t *testing.T) {
	svc, _, userRepo, deviceRepo, membershipRepo, tokenRepo, hasher, tokenService := newAccountService(t)
	ctx := context.Background()

	userID := uuid.New()
	deviceID := uuid.New()
	user := &entity.User{ID: userID, Email: "jo@example.com", PasswordHash: "hashed"}
	device := &entity.Device{ID: deviceID, UserID: userID, Name: "phone"}
	groups := []entity.GroupRef{{ID: uuid.New(), Name: "home"}}

	userRepo.EXPECT().FindByEmail(ctx, "jo@example.com").Return(user, nil)
	hasher.EXPECT().Check("secret", "hashed").Return(true)
	deviceRepo.EXPECT().FindByIDAndUser(ctx, deviceID, userID).Return(device, nil)
	membershipRepo.EXPECT().FindGroupsByDevice(ctx, deviceID).Return(groups, nil)
	tokenService.EXPECT().
		Issue(mock.MatchedBy(func(claims *service.TokenClaims) bool {
			return claims.UserID == userID &&
				claims.DeviceID != nil && *claims.DeviceID == deviceID &&
				len(claims.Groups) == 1 && claims.Groups[0].Name == "home"
		})).
		Return("bound-token", time.Now().Add(30*time.Minute), nil)
	tokenRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	output, err := svc.Login(ctx, &usecase.LoginInput{
		Email:    "jo@example.com",
		Password: "secret",
		DeviceID: &deviceID,
	})

	require.NoError(t, err)
	assert.Equal(t, "bound-token", output.Token)
}

func TestAccountService_Login_WrongDevice(t *testing.T) {
	svc, _, userRepo, deviceRepo, _, _, hasher, _ := newAccountService(t)
	ctx := context.Background()

	userID := uuid.New()
	deviceID := uuid.New()
	user := &entity.User{ID: userID, Email: "jo@example.com", PasswordHash: "hashed"}

	userRepo.EXPECT().FindByEmail(ctx, "jo@example.com").Return(user, nil)
	hasher.EXPECT().Check("secret", "hashed").Return(true)
	deviceRepo.EXPECT().FindByIDAndUser(ctx, deviceID, userID).Return(nil, repository.ErrDeviceNotFound)

	_, err := svc.Login(ctx, &usecase.LoginInput{
		Email:    "jo@example.com",
		Password: "secret",
		DeviceID: &deviceID,
	})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.CodeWrongParameters, appErr.ErrorCode())
	assert.Equal(t, "Wrong device_id", appErr.Message())
	assert.Equal(t, 400, appErr.HTTPCode())
}

func TestAccountService_UpdateProfile_PartialFields(t *testing.T) {
	svc, txManager, _, _, _, _, hasher, _ := newAccountService(t)
	ctx := context.Background()

	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		FirstName:    "Jo",
		LastName:     "Doe",
		Email:        "jo@example.com",
		PasswordHash: "hashed",
	}

	hasher.EXPECT().Check("secret", "hashed").Return(true)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
			mockUserRepo.EXPECT().Update(ctx, mock.MatchedBy(func(updated *entity.User) bool {
				// Changed field applied, omitted fields kept.
				return updated.FirstName == "Joan" &&
					updated.LastName == "Doe" &&
					updated.Email == "jo@example.com" &&
					updated.PasswordHash == "hashed"
			})).Return(nil)

			return fn(mockFactory)
		})

	newFirst := "Joan"
	err := svc.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{
		Password:  "secret",
		FirstName: &newFirst,
	})

	require.NoError(t, err)
}

func TestAccountService_UpdateProfile_EmailTaken(t *testing.T) {
	svc, txManager, _, _, _, _, hasher, _ := newAccountService(t)
	ctx := context.Background()

	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "jo@example.com", PasswordHash: "hashed"}

	hasher.EXPECT().Check("secret", "hashed").Return(true)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
			mockUserRepo.EXPECT().Update(ctx, mock.Anything).Return(repository.ErrEmailTaken)

			return fn(mockFactory)
		})

	taken := "taken@example.com"
	err := svc.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{
		Password: "secret",
		Email:    &taken,
	})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.CodeAlreadyRegistered, appErr.ErrorCode())
	assert.Equal(t, "Email already used", appErr.Message())
	assert.Equal(t, 403, appErr.HTTPCode())
}

func TestAccountService_DeleteAccount_WrongPassword(t *testing.T) {
	svc, txManager, _, _, _, _, hasher, _ := newAccountService(t)
	ctx := context.Background()

	userID := uuid.New()
	user := &entity.User{ID: userID, PasswordHash: "hashed"}

	hasher.EXPECT().Check("bad", "hashed").Return(false)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

			return fn(mockFactory)
		})

	err := svc.DeleteAccount(ctx, userID, "bad")

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Wrong password", appErr.Message())
}

func TestAccountService_DeleteAccount_Success(t *testing.T) {
	svc, txManager, _, _, _, _, hasher, _ := newAccountService(t)
	ctx := context.Background()

	userID := uuid.New()
	user := &entity.User{ID: userID, PasswordHash: "hashed"}

	hasher.EXPECT().Check("secret", "hashed").Return(true)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
			mockUserRepo.EXPECT().Delete(ctx, userID).Return(nil)

			return fn(mockFactory)
		})

	require.NoError(t, svc.DeleteAccount(ctx, userID, "secret"))
}
