// application/serviceimpl/tag_service.go
package serviceimpl

import (
	"errors"
	"strings"

	"github.com/altsora/SocialNetwork-sub000/domain/models"
	"github.com/altsora/SocialNetwork-sub000/domain/repository"
	"github.com/altsora/SocialNetwork-sub000/domain/service"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type tagService struct {
	tagRepo repository.TagRepository
}

func NewTagService(tagRepo repository.TagRepository) service.TagService {
	return &tagService{tagRepo: tagRepo}
}

// CreateTag returns the existing row when the text is already taken.
func (s *tagService) CreateTag(text string) (*models.Tag, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.New("tag text is empty")
	}

	existing, err := s.tagRepo.FindByText(text)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tag := &models.Tag{ID: uuid.New(), Tag: text}
	if err := s.tagRepo.Create(tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *tagService) DeleteTag(id uuid.UUID) error {
	if _, err := s.tagRepo.FindByID(id); err != nil {
		return errors.New("tag not found")
	}
	return s.tagRepo.Delete(id)
}

func (s *tagService) ListTags(textFilter string, offset, limit int) ([]*models.Tag, int64, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.tagRepo.List(textFilter, offset, limit)
}

// SyncPostTags replaces the post's tag set, creating tags that do not exist
// yet.
func (s *tagService) SyncPostTags(postID uuid.UUID, tags []string) error {
	if err := s.tagRepo.DetachAllFromPost(postID); err != nil {
		return err
	}

	for _, text := range tags {
		tag, err := s.CreateTag(text)
		if err != nil {
			return err
		}
		if err := s.tagRepo.AttachToPost(postID, tag.ID); err != nil {
			return err
		}
	}
	return nil
}

func (s *tagService) GetPostTags(postID uuid.UUID) ([]string, error) {
	tags, err := s.tagRepo.FindByPost(postID)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		out = append(out, tag.Tag)
	}
	return out, nil
}
