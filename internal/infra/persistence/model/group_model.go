package model

import (
	"time"

	"github.com/google/uuid"
)

// GroupModel mirrors the 'collections' table. The group name is unique per
// owning user; the composite unique index is the authoritative guard against
// duplicate names racing past the use-case pre-check.
type GroupModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_collections_user_id_name;constraint:OnDelete:CASCADE"`
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_collections_user_id_name"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (GroupModel) TableName() string {
	return "collections"
}
