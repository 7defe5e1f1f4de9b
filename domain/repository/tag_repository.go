// domain/repository/tag_repository.go
package repository

import (
	"github.com/altsora/SocialNetwork-sub000/domain/models"
	"github.com/google/uuid"
)

type TagRepository interface {
	Create(tag *models.Tag) error
	FindByID(id uuid.UUID) (*models.Tag, error)
	FindByText(text string) (*models.Tag, error)
	Delete(id uuid.UUID) error
	List(textFilter string, offset, limit int) ([]*models.Tag, int64, error)

	AttachToPost(postID, tagID uuid.UUID) error
	DetachAllFromPost(postID uuid.UUID) error
	FindByPost(postID uuid.UUID) ([]*models.Tag, error)
}
