// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "corral/internal/delivery/context"
	"corral/internal/domain/entity"
	domainerrors "corral/internal/domain/errors"
	"corral/internal/domain/repository"
	"corral/internal/domain/service"
	"corral/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	deviceRepo   repository.DeviceRepository
	membership   repository.MembershipRepository
	tokenRepo    repository.TokenRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserRepo       repository.UserRepository
	DeviceRepo     repository.DeviceRepository
	MembershipRepo repository.MembershipRepository
	TokenRepo      repository.TokenRepository
	Hasher         service.PasswordHasher
	TokenService   service.TokenService
	Logger         *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		deviceRepo:   params.DeviceRepo,
		membership:   params.MembershipRepo,
		tokenRepo:    params.TokenRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account. The email pre-check runs inside the same
// transaction as the insert, and the unique constraint on email remains the
// authoritative guard should two registrations race past the check.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) error {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return errors.Wrap(err, "failed to hash password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, err := userRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return domainerrors.AlreadyRegistered("User is already registered")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check email availability")
		}

		user := &entity.User{
			ID:           uuid.New(),
			FirstName:    input.FirstName,
			LastName:     input.LastName,
			Email:        input.Email,
			PasswordHash: hashed,
		}

		if err := userRepo.Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrEmailTaken) {
				return domainerrors.AlreadyRegistered("User is already registered")
			}

			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Debug("Registration completed", slog.String("email", input.Email))

	return nil
}

// Login verifies credentials and issues a token. The status code is the same
// for an unknown email and a wrong password, only the messages differ, so
// the code alone does not reveal whether the account exists.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login attempt for unknown email", slog.String("email", input.Email))

			return nil, domainerrors.WrongCredentials("User not found")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login attempt with wrong password", slog.Any("userID", user.ID))

		return nil, domainerrors.WrongCredentials("Wrong password")
	}

	claims := &service.TokenClaims{UserID: user.ID}

	if input.DeviceID != nil {
		device, err := srv.deviceRepo.FindByIDAndUser(ctx, *input.DeviceID, user.ID)
		if err != nil {
			if errors.Is(err, repository.ErrDeviceNotFound) {
				return nil, domainerrors.WrongParameters("Wrong device_id")
			}

			return nil, errors.Wrap(err, "failed to find device for binding")
		}

		groups, err := srv.membership.FindGroupsByDevice(ctx, device.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to snapshot device groups")
		}

		claims.DeviceID = &device.ID
		claims.Groups = groups
	}

	token, expiresAt, err := srv.tokenService.Issue(claims)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token")
	}

	record := &entity.AuthToken{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: expiresAt,
	}
	if err := srv.tokenRepo.Create(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to persist token")
	}

	srv.log(ctx).Info("Login succeeded", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{Token: token, ExpiresAt: expiresAt}, nil
}

// UpdateProfile re-verifies the current password and applies the provided
// fields. Email uniqueness is enforced by the storage constraint rather
// than a pre-check; the violation surfaces as AlreadyRegistered.
func (srv *accountService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.WrongCredentials("User not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		if !srv.hasher.Check(input.Password, user.PasswordHash) {
			srv.log(ctx).Warn("Profile update with wrong password", slog.Any("userID", userID))

			return domainerrors.WrongCredentials("Wrong password")
		}

		if input.FirstName != nil {
			user.FirstName = *input.FirstName
		}
		if input.LastName != nil {
			user.LastName = *input.LastName
		}
		if input.Email != nil {
			user.Email = *input.Email
		}
		if input.NewPassword != nil {
			hashed, err := srv.hasher.Hash(*input.NewPassword)
			if err != nil {
				return errors.Wrap(err, "failed to hash new password")
			}
			user.PasswordHash = hashed
		}

		if err := userRepo.Update(ctx, user); err != nil {
			if errors.Is(err, repository.ErrEmailTaken) {
				return domainerrors.AlreadyRegistered("Email already used")
			}

			return errors.Wrap(err, "failed to update user")
		}

		srv.log(ctx).Info("Profile updated", slog.Any("userID", userID))

		return nil
	})
}

// DeleteAccount re-verifies the password and removes the account. Devices,
// groups, memberships and tokens are swept by cascading foreign keys inside
// the same transaction as the user row delete.
func (srv *accountService) DeleteAccount(ctx context.Context, userID uuid.UUID, password string) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.WrongCredentials("User not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		if !srv.hasher.Check(password, user.PasswordHash) {
			srv.log(ctx).Warn("Account deletion with wrong password", slog.Any("userID", userID))

			return domainerrors.WrongCredentials("Wrong password")
		}

		if err := userRepo.Delete(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to delete user")
		}

		srv.log(ctx).Info("Account deleted", slog.Any("userID", userID))

		return nil
	})
}
