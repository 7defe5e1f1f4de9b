// domain/service/comment_service.go
package service

import (
	"github.com/altsora/SocialNetwork-sub000/domain/dto"
	"github.com/altsora/SocialNetwork-sub000/domain/models"
	"github.com/google/uuid"
)

type CommentService interface {
	// AddComment rejects a parent comment that does not belong to the post.
	AddComment(postID, authorID uuid.UUID, req dto.AddCommentRequest) (*models.Comment, error)
	EditComment(id uuid.UUID, text string) (*models.Comment, error)
	// DeleteComment blocks the comment out of its post's tree.
	DeleteComment(id uuid.UUID) error
	// GetByPost returns the post's comment tree, replies nested under their
	// parents.
	GetByPost(postID uuid.UUID) ([]dto.CommentData, error)
	// ComplaintComment is an acknowledgment stub.
	ComplaintComment(postID, commentID uuid.UUID) error
}
