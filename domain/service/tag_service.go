// domain/service/tag_service.go
package service

import (
	"github.com/altsora/SocialNetwork-sub000/domain/models"
	"github.com/google/uuid"
)

type TagService interface {
	// CreateTag is idempotent on duplicate text.
	CreateTag(text string) (*models.Tag, error)
	DeleteTag(id uuid.UUID) error
	ListTags(textFilter string, offset, limit int) ([]*models.Tag, int64, error)

	// SyncPostTags replaces the tag set of a post, creating missing tags.
	SyncPostTags(postID uuid.UUID, tags []string) error
	GetPostTags(postID uuid.UUID) ([]string, error)
}
