// domain/models/like.go

package models

import (
	"time"

	"github.com/google/uuid"
)

// Like associates a person with a liked item, a post or a comment depending
// on Type. At most one row may exist per (person, item, type).
type Like struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	PersonID uuid.UUID `json:"person_id" gorm:"type:uuid;not null;uniqueIndex:uq_like_person_item"`
	ItemID   uuid.UUID `json:"item_id" gorm:"type:uuid;not null;uniqueIndex:uq_like_person_item"`
	Type     string    `json:"type" gorm:"type:varchar(20);not null;uniqueIndex:uq_like_person_item"`
	Time     time.Time `json:"time" gorm:"type:timestamp with time zone;default:now()"`
}

func (Like) TableName() string {
	return "likes"
}
