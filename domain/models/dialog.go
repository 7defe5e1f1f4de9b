// domain/models/dialog.go

package models

import (
	"time"

	"github.com/google/uuid"
)

// Dialog is a message thread owned by the person who opened it. Membership
// is kept in the persons_dialogs join table.
type Dialog struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OwnerID     uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;index"`
	UnreadCount int       `json:"unread_count" gorm:"default:0"`
	InviteCode  string    `json:"invite_code,omitempty" gorm:"type:varchar(40)"`
	CreatedAt   time.Time `json:"created_at" gorm:"type:timestamp with time zone;default:now()"`
	IsDeleted   bool      `json:"is_deleted" gorm:"default:false"`
}

func (Dialog) TableName() string {
	return "dialogs"
}

// Person2Dialog links a person into a dialog.
type Person2Dialog struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	DialogID uuid.UUID `json:"dialog_id" gorm:"type:uuid;not null;uniqueIndex:uq_person_dialog"`
	PersonID uuid.UUID `json:"person_id" gorm:"type:uuid;not null;uniqueIndex:uq_person_dialog"`
}

func (Person2Dialog) TableName() string {
	return "persons_dialogs"
}
