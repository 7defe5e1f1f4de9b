// domain/service/like_service.go
package service

import (
	"github.com/altsora/SocialNetwork-sub000/domain/dto"
	"github.com/google/uuid"
)

type LikeService interface {
	LikeExists(personID, itemID uuid.UUID, likeType dto.LikeType) (bool, error)
	// PutLike returns false without side effects when the like already
	// exists. POST-type likes increment the post's denormalized counter.
	PutLike(personID, itemID uuid.UUID, likeType dto.LikeType) (bool, error)
	// RemoveLike is a no-op when no matching like exists.
	RemoveLike(personID, itemID uuid.UUID, likeType dto.LikeType) error
	GetUsersOfLike(itemID uuid.UUID, likeType dto.LikeType) ([]uuid.UUID, error)
	GetCount(itemID uuid.UUID, likeType dto.LikeType) (int64, error)
}
