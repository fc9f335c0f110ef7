package model

import (
	"time"

	"github.com/google/uuid"
)

// MembershipModel mirrors the 'device_collections' table, the many-to-many
// association between devices and collections. The composite primary key
// guarantees a (device, group) pair appears at most once; both foreign keys
// cascade so hard-deleting a device or group sweeps its memberships.
type MembershipModel struct {
	DeviceID  uuid.UUID `gorm:"type:uuid;primary_key;constraint:OnDelete:CASCADE"`
	GroupID   uuid.UUID `gorm:"type:uuid;primary_key;index;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (MembershipModel) TableName() string {
	return "device_collections"
}
