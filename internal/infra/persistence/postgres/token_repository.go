package postgres

import (
	"context"
	"time"

	"corral/internal/domain/entity"
	domainerrors "corral/internal/domain/errors"
	"corral/internal/domain/repository"
	"corral/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// tokenRepository implements the repository.TokenRepository interface.
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository is the constructor for tokenRepository.
func NewTokenRepository(db *gorm.DB) repository.TokenRepository {
	return &tokenRepository{
		db: db,
	}
}

// Create persists a newly issued token.
func (repo *tokenRepository) Create(ctx context.Context, token *entity.AuthToken) error {
	tokenM := fromAuthTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create token")
	}

	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindByToken retrieves the registry row for a raw token string.
func (repo *tokenRepository) FindByToken(ctx context.Context, raw string) (*entity.AuthToken, error) {
	var tokenM model.AuthTokenModel

	if err := repo.db.WithContext(ctx).
		Where("token = ?", raw).
		First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTokenNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find token")
	}

	return toAuthTokenDomain(&tokenM), nil
}

// Replace atomically swaps an old token's row for a new token value.
// Matching by the old raw token means a revoked or never-issued token
// cannot be renewed, regardless of who signed it.
func (repo *tokenRepository) Replace(ctx context.Context, oldToken, newToken string, expiresAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AuthTokenModel{}).
		Where("token = ?", oldToken).
		Updates(map[string]any{
			"token":      newToken,
			"expires_at": expiresAt,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to replace token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTokenNotFound
	}

	return nil
}

// DeleteByToken revokes a single token.
func (repo *tokenRepository) DeleteByToken(ctx context.Context, raw string) error {
	result := repo.db.WithContext(ctx).
		Where("token = ?", raw).
		Delete(&model.AuthTokenModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTokenNotFound
	}

	return nil
}

// DeleteByUserID revokes every token issued to a user. Deleting zero rows
// is fine; the user may simply have no live sessions.
func (repo *tokenRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.AuthTokenModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete tokens by user")
	}

	return nil
}

// DeleteExpired prunes rows whose cryptographic expiry has passed.
func (repo *tokenRepository) DeleteExpired(ctx context.Context) error {
	if err := repo.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&model.AuthTokenModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to prune expired tokens")
	}

	return nil
}

// --- Mapper Functions ---

// toAuthTokenDomain converts a GORM AuthTokenModel to a domain AuthToken entity.
func toAuthTokenDomain(data *model.AuthTokenModel) *entity.AuthToken {
	if data == nil {
		return nil
	}

	return &entity.AuthToken{
		ID:        data.ID,
		UserID:    data.UserID,
		Token:     data.Token,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

// fromAuthTokenDomain converts a domain AuthToken entity to a GORM AuthTokenModel.
func fromAuthTokenDomain(data *entity.AuthToken) *model.AuthTokenModel {
	if data == nil {
		return nil
	}

	return &model.AuthTokenModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Token:     data.Token,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}
