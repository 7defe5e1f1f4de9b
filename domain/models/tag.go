// domain/models/tag.go

package models

import "github.com/google/uuid"

// Tag is a free-standing label attachable to posts.
type Tag struct {
	ID  uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Tag string    `json:"tag" gorm:"type:varchar(100);not null;unique"`
}

func (Tag) TableName() string {
	return "tags"
}

// Post2Tag links a tag onto a post.
type Post2Tag struct {
	ID     uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	PostID uuid.UUID `json:"post_id" gorm:"type:uuid;not null;uniqueIndex:uq_post_tag"`
	TagID  uuid.UUID `json:"tag_id" gorm:"type:uuid;not null;uniqueIndex:uq_post_tag"`
}

func (Post2Tag) TableName() string {
	return "posts_tags"
}
