// domain/models/friendship.go

package models

import (
	"time"

	"github.com/google/uuid"
)

// Friendship is a directed edge between two persons. Direction matters for
// REQUEST and SUBSCRIBED semantics; a mutual friendship is stored as two
// FRIEND rows pointing at each other.
type Friendship struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	SrcPersonID uuid.UUID `json:"src_person_id" gorm:"type:uuid;not null;index"`
	DstPersonID uuid.UUID `json:"dst_person_id" gorm:"type:uuid;not null;index"`
	Status      string    `json:"status" gorm:"type:varchar(20);not null;default:'REQUEST'"`
	Time        time.Time `json:"time" gorm:"type:timestamp with time zone;default:now()"`
}

func (Friendship) TableName() string {
	return "friendships"
}
