package impl

import (
	"context"
	"testing"
	"time"

	"corral/internal/domain/entity"
	domainerrors "corral/internal/domain/errors"
	"corral/internal/domain/repository"
	"corral/internal/domain/service"
	mockRepo "corral/internal/mocks/repository"
	mockService "corral/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSessionService(t *testing.T) (*sessionService, *mockRepo.MockTokenRepository, *mockService.MockTokenService) {
	tokenRepo := mockRepo.NewMockTokenRepository(t)
	tokenService := mockService.NewMockTokenService(t)

	svc := NewSessionService(SessionServiceParams{
		TokenRepo:    tokenRepo,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	}).(*sessionService)

	return svc, tokenRepo, tokenService
}

func TestSessionService_Renew_Success(t *testing.T) {
	svc, tokenRepo, tokenService := newSessionService(t)
	ctx := context.Background()

	userID := uuid.New()
	deviceID := uuid.New()
	expiresAt := time.Now().Add(30 * time.Minute)

	tokenService.EXPECT().Decode("old-token").Return(&service.TokenClaims{
		UserID:   userID,
		DeviceID: &deviceID,
		Groups:   []entity.GroupRef{{ID: uuid.New(), Name: "home"}},
	}, nil)
	tokenService.EXPECT().
		Issue(mock.MatchedBy(func(claims *service.TokenClaims) bool {
			// Device binding carried forward, group snapshot dropped.
			return claims.UserID == userID &&
				claims.DeviceID != nil && *claims.DeviceID == deviceID &&
				claims.Groups == nil
		})).
		Return("new-token", expiresAt, nil)
	tokenRepo.EXPECT().Replace(ctx, "old-token", "new-token", expiresAt).Return(nil)

	output, err := svc.Renew(ctx, "old-token")

	require.NoError(t, err)
	assert.Equal(t, "new-token", output.Token)
	assert.Equal(t, expiresAt, output.ExpiresAt)
}

func TestSessionService_Renew_BadSignature(t *testing.T) {
	svc, _, tokenService := newSessionService(t)
	ctx := context.Background()

	tokenService.EXPECT().Decode("forged").Return(nil, service.ErrTokenInvalid)

	_, err := svc.Renew(ctx, "forged")

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Invalid token", appErr.Message())
	assert.Equal(t, 401, appErr.HTTPCode())
}

func TestSessionService_Renew_RevokedToken(t *testing.T) {
	svc, tokenRepo, tokenService := newSessionService(t)
	ctx := context.Background()

	userID := uuid.New()
	expiresAt := time.Now().Add(30 * time.Minute)

	tokenService.EXPECT().Decode("revoked").Return(&service.TokenClaims{UserID: userID}, nil)
	tokenService.EXPECT().Issue(mock.Anything).Return("new-token", expiresAt, nil)
	tokenRepo.EXPECT().Replace(ctx, "revoked", "new-token", expiresAt).Return(repository.ErrTokenNotFound)

	_, err := svc.Renew(ctx, "revoked")

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Invalid token", appErr.Message())
}

func TestSessionService_Logout(t *testing.T) {
	svc, tokenRepo, _ := newSessionService(t)
	ctx := context.Background()

	tokenRepo.EXPECT().DeleteByToken(ctx, "current-token").Return(nil)

	require.NoError(t, svc.Logout(ctx, "current-token"))
}

func TestSessionService_LogoutAll(t *testing.T) {
	svc, tokenRepo, _ := newSessionService(t)
	ctx := context.Background()

	userID := uuid.New()
	tokenRepo.EXPECT().DeleteByUserID(ctx, userID).Return(nil)

	require.NoError(t, svc.LogoutAll(ctx, userID))
}
