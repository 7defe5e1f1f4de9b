// domain/models/message.go

package models

import (
	"time"

	"github.com/google/uuid"
)

// Message is a single entry in a dialog. Removal is a soft delete; deleted
// messages stay in place and are filtered out of listings.
type Message struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	DialogID    uuid.UUID  `json:"dialog_id" gorm:"type:uuid;not null;index"`
	AuthorID    uuid.UUID  `json:"author_id" gorm:"type:uuid;not null"`
	RecipientID *uuid.UUID `json:"recipient_id,omitempty" gorm:"type:uuid"`
	Time        time.Time  `json:"time" gorm:"type:timestamp with time zone;default:now();index"`
	MessageText string     `json:"message_text" gorm:"type:text;not null"`
	ReadStatus  string     `json:"read_status" gorm:"type:varchar(10);default:'SENT'"`
	IsDeleted   bool       `json:"is_deleted" gorm:"default:false"`
}

func (Message) TableName() string {
	return "messages"
}
