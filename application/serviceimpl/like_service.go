// application/serviceimpl/like_service.go
package serviceimpl

import (
	"errors"
	"time"

	"github.com/altsora/SocialNetwork-sub000/domain/dto"
	"github.com/altsora/SocialNetwork-sub000/domain/models"
	"github.com/altsora/SocialNetwork-sub000/domain/repository"
	"github.com/altsora/SocialNetwork-sub000/domain/service"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type likeService struct {
	likeRepo            repository.LikeRepository
	postRepo            repository.PostRepository
	notificationService service.NotificationService
}

func NewLikeService(
	likeRepo repository.LikeRepository,
	postRepo repository.PostRepository,
	notificationService service.NotificationService,
) service.LikeService {
	return &likeService{
		likeRepo:            likeRepo,
		postRepo:            postRepo,
		notificationService: notificationService,
	}
}

func (s *likeService) LikeExists(personID, itemID uuid.UUID, likeType dto.LikeType) (bool, error) {
	_, err := s.likeRepo.Find(personID, itemID, likeType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// PutLike inserts the like unless one already exists for the same
// (person, item, type); the duplicate case is a no-op returning false.
func (s *likeService) PutLike(personID, itemID uuid.UUID, likeType dto.LikeType) (bool, error) {
	exists, err := s.LikeExists(personID, itemID, likeType)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	like := &models.Like{
		ID:       uuid.New(),
		PersonID: personID,
		ItemID:   itemID,
		Type:     string(likeType),
		Time:     time.Now(),
	}
	if err := s.likeRepo.Create(like); err != nil {
		return false, err
	}

	if likeType == dto.LikeTypePost {
		if err := s.postRepo.IncrementLikes(itemID); err != nil {
			return false, err
		}
		if post, err := s.postRepo.FindByID(itemID); err == nil && post.AuthorID != personID {
			_ = s.notificationService.Send(dto.NotificationTypeLike, post.AuthorID, "Someone liked your post")
		}
	}

	return true, nil
}

// RemoveLike is a no-op when no matching like exists.
func (s *likeService) RemoveLike(personID, itemID uuid.UUID, likeType dto.LikeType) error {
	exists, err := s.LikeExists(personID, itemID, likeType)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}

	if err := s.likeRepo.Delete(personID, itemID, likeType); err != nil {
		return err
	}

	if likeType == dto.LikeTypePost {
		return s.postRepo.DecrementLikes(itemID)
	}
	return nil
}

func (s *likeService) GetUsersOfLike(itemID uuid.UUID, likeType dto.LikeType) ([]uuid.UUID, error) {
	return s.likeRepo.FindUserIDsByItem(itemID, likeType)
}

func (s *likeService) GetCount(itemID uuid.UUID, likeType dto.LikeType) (int64, error) {
	return s.likeRepo.CountByItem(itemID, likeType)
}
