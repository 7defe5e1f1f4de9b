// domain/models/notification.go

package models

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType is reference data mapping a stable code to a display name.
// Rows are seeded at migration time and never mutated afterwards.
type NotificationType struct {
	ID   uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Code string    `json:"code" gorm:"type:varchar(30);not null;unique"`
	Name string    `json:"name" gorm:"type:varchar(100);not null"`
}

func (NotificationType) TableName() string {
	return "notification_types"
}

// Notification is addressed to a single person and carries a free-text info
// payload describing what happened.
type Notification struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	TypeID   uuid.UUID `json:"type_id" gorm:"type:uuid;not null"`
	ToWhomID uuid.UUID `json:"to_whom_id" gorm:"type:uuid;not null;index"`
	SentTime time.Time `json:"sent_time" gorm:"type:timestamp with time zone;default:now();index"`
	Info     string    `json:"info" gorm:"type:text"`
	IsRead   bool      `json:"is_read" gorm:"default:false"`
}

func (Notification) TableName() string {
	return "notifications"
}

// NotificationSettings holds a per-person enable flag for one notification
// type. Absence of a row means the type is enabled.
type NotificationSettings struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	PersonID uuid.UUID `json:"person_id" gorm:"type:uuid;not null;uniqueIndex:uq_settings_person_type"`
	TypeID   uuid.UUID `json:"type_id" gorm:"type:uuid;not null;uniqueIndex:uq_settings_person_type"`
	Enabled  bool      `json:"enabled" gorm:"default:true"`
}

func (NotificationSettings) TableName() string {
	return "notification_settings"
}
