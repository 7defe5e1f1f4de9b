// domain/repository/comment_repository.go
package repository

import (
	"github.com/altsora/SocialNetwork-sub000/domain/models"
	"github.com/google/uuid"
)

type CommentRepository interface {
	Create(comment *models.Comment) error
	FindByID(id uuid.UUID) (*models.Comment, error)
	Update(comment *models.Comment) error
	SetBlocked(id uuid.UUID, blocked bool) error

	// FindByPost returns every non-blocked comment of a post, oldest first.
	FindByPost(postID uuid.UUID) ([]*models.Comment, error)
}
