// domain/models/comment.go

package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment belongs to one post and one author. ParentID builds a reply tree
// of unbounded depth; a parent always belongs to the same post.
type Comment struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	PostID      uuid.UUID  `json:"post_id" gorm:"type:uuid;not null;index"`
	AuthorID    uuid.UUID  `json:"author_id" gorm:"type:uuid;not null"`
	ParentID    *uuid.UUID `json:"parent_id,omitempty" gorm:"type:uuid;index"`
	CommentText string     `json:"comment_text" gorm:"type:text;not null"`
	Time        time.Time  `json:"time" gorm:"type:timestamp with time zone;default:now()"`
	IsBlocked   bool       `json:"is_blocked" gorm:"default:false"`
}

func (Comment) TableName() string {
	return "post_comments"
}
