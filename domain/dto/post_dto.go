// domain/dto/post_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

// ============ Request DTOs ============

// AddPostRequest creates a wall post. PublishTime in the past or absent is
// replaced by the current time.
type AddPostRequest struct {
	Title       string     `json:"title" validate:"required"`
	PostText    string     `json:"post_text" validate:"required"`
	PublishTime *time.Time `json:"publish_time,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
}

// EditPostRequest updates title, text and tags of an existing post.
type EditPostRequest struct {
	Title    string   `json:"title" validate:"required"`
	PostText string   `json:"post_text" validate:"required"`
	Tags     []string `json:"tags,omitempty"`
}

// ============ Response Data DTOs ============

// PostData is a wall entry with its author projection and comment tree.
type PostData struct {
	ID        uuid.UUID     `json:"id"`
	Time      time.Time     `json:"time"`
	Author    PersonData    `json:"author"`
	Title     string        `json:"title"`
	PostText  string        `json:"post_text"`
	IsBlocked bool          `json:"is_blocked"`
	Likes     int           `json:"likes"`
	Tags      []string      `json:"tags,omitempty"`
	Comments  []CommentData `json:"comments"`
}
