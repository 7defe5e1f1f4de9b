// domain/service/post_service.go
package service

import (
	"github.com/altsora/SocialNetwork-sub000/domain/dto"
	"github.com/altsora/SocialNetwork-sub000/domain/models"
	"github.com/google/uuid"
)

type PostService interface {
	// AddPost substitutes the current time when the requested publish time
	// is absent or in the past.
	AddPost(authorID uuid.UUID, req dto.AddPostRequest) (*models.Post, error)
	GetByID(id uuid.UUID) (*dto.PostData, error)
	// GetWall returns the person's posts with author projection and comment
	// tree, newest first.
	GetWall(personID uuid.UUID, offset, limit int) ([]dto.PostData, int64, error)
	GetFeed(offset, limit int) ([]dto.PostData, int64, error)

	EditPost(id uuid.UUID, req dto.EditPostRequest) (*dto.PostData, error)
	DeletePost(id uuid.UUID) error
	RecoverPost(id uuid.UUID) error
	// ComplaintPost is an acknowledgment stub.
	ComplaintPost(id uuid.UUID) error
}
