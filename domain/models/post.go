// domain/models/post.go

package models

import (
	"time"

	"github.com/google/uuid"
)

// Post is a wall entry owned by exactly one author.
type Post struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	AuthorID  uuid.UUID `json:"author_id" gorm:"type:uuid;not null;index"`
	Time      time.Time `json:"time" gorm:"type:timestamp with time zone;default:now();index"`
	Title     string    `json:"title" gorm:"type:varchar(255);not null"`
	PostText  string    `json:"post_text" gorm:"type:text"`
	IsBlocked bool      `json:"is_blocked" gorm:"default:false"`
	IsDeleted bool      `json:"is_deleted" gorm:"default:false"`
	// Denormalized counter kept in sync by the like service.
	Likes int `json:"likes" gorm:"default:0"`
}

func (Post) TableName() string {
	return "posts"
}
