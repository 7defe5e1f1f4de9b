// domain/repository/like_repository.go
package repository

import (
	"github.com/altsora/SocialNetwork-sub000/domain/dto"
	"github.com/altsora/SocialNetwork-sub000/domain/models"
	"github.com/google/uuid"
)

type LikeRepository interface {
	Create(like *models.Like) error
	Find(personID, itemID uuid.UUID, likeType dto.LikeType) (*models.Like, error)
	Delete(personID, itemID uuid.UUID, likeType dto.LikeType) error

	FindUserIDsByItem(itemID uuid.UUID, likeType dto.LikeType) ([]uuid.UUID, error)
	CountByItem(itemID uuid.UUID, likeType dto.LikeType) (int64, error)
}
