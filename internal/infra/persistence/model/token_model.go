package model

import (
	"time"

	"github.com/google/uuid"
)

// AuthTokenModel mirrors the 'auth_tokens' table. The raw signed token is
// the lookup key (unique index), so the authorization middleware resolves a
// bearer token with a single indexed equality match.
type AuthTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index;constraint:OnDelete:CASCADE"`
	Token     string    `gorm:"type:text;uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AuthTokenModel) TableName() string {
	return "auth_tokens"
}
