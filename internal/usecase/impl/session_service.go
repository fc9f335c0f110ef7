package impl

import (
	"context"
	"log/slog"

	deliverycontext "corral/internal/delivery/context"
	domainerrors "corral/internal/domain/errors"
	"corral/internal/domain/repository"
	"corral/internal/domain/service"
	"corral/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	tokenRepo    repository.TokenRepository
	tokenService service.TokenService
	logger       *slog.Logger
}

// SessionServiceParams holds dependencies for sessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	TokenRepo    repository.TokenRepository
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		tokenRepo:    params.TokenRepo,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Renew exchanges an old token for a fresh one. The old token must carry a
// genuine signature, but may be expired: the registry row, not the embedded
// expiry, is what decides whether renewal is allowed. The device binding is
// carried forward; the group snapshot is intentionally dropped, since it may
// be stale by renewal time.
func (srv *sessionService) Renew(ctx context.Context, oldToken string) (*usecase.RenewOutput, error) {
	claims, err := srv.tokenService.Decode(oldToken)
	if err != nil {
		srv.log(ctx).Warn("Renewal with unverifiable token", slog.Any("error", err))

		return nil, domainerrors.WrongCredentials("Invalid token")
	}

	newClaims := &service.TokenClaims{
		UserID:   claims.UserID,
		DeviceID: claims.DeviceID,
	}

	token, expiresAt, err := srv.tokenService.Issue(newClaims)
	if err != nil {
		srv.log(ctx).Error("Failed to issue replacement token", slog.Any("userID", claims.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue replacement token")
	}

	if err := srv.tokenRepo.Replace(ctx, oldToken, token, expiresAt); err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			srv.log(ctx).Warn("Renewal of revoked or unknown token", slog.Any("userID", claims.UserID))

			return nil, domainerrors.WrongCredentials("Invalid token")
		}

		return nil, errors.Wrap(err, "failed to replace token")
	}

	srv.log(ctx).Info("Token renewed", slog.Any("userID", claims.UserID))

	return &usecase.RenewOutput{Token: token, ExpiresAt: expiresAt}, nil
}

// Logout revokes the single token the request was authorized with. A missing
// row means the token was already revoked, which the caller cannot reach:
// the authorization middleware would have rejected the request first.
func (srv *sessionService) Logout(ctx context.Context, rawToken string) error {
	if err := srv.tokenRepo.DeleteByToken(ctx, rawToken); err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return domainerrors.WrongCredentials("Invalid token")
		}

		return errors.Wrap(err, "failed to delete token")
	}

	return nil
}

// LogoutAll revokes every token issued to the user.
func (srv *sessionService) LogoutAll(ctx context.Context, userID uuid.UUID) error {
	if err := srv.tokenRepo.DeleteByUserID(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to delete user tokens")
	}

	srv.log(ctx).Info("All sessions revoked", slog.Any("userID", userID))

	return nil
}
