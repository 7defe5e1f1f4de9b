// domain/dto/comment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

// AddCommentRequest creates a comment on a post, optionally as a reply to
// another comment of the same post.
type AddCommentRequest struct {
	CommentText string     `json:"comment_text" validate:"required"`
	ParentID    *uuid.UUID `json:"parent_id,omitempty"`
}

// EditCommentRequest updates the text of an existing comment.
type EditCommentRequest struct {
	CommentText string `json:"comment_text" validate:"required"`
}

// CommentData is one node of a post's comment tree.
type CommentData struct {
	ID          uuid.UUID     `json:"id"`
	PostID      uuid.UUID     `json:"post_id"`
	ParentID    *uuid.UUID    `json:"parent_id,omitempty"`
	AuthorID    uuid.UUID     `json:"author_id"`
	CommentText string        `json:"comment_text"`
	Time        time.Time     `json:"time"`
	IsBlocked   bool          `json:"is_blocked"`
	SubComments []CommentData `json:"sub_comments,omitempty"`
}
