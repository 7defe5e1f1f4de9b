// infrastructure/persistence/postgres/like_repository.go
package postgres

import (
	"time"

	"github.com/altsora/SocialNetwork-sub000/domain/dto"
	"github.com/altsora/SocialNetwork-sub000/domain/models"
	"github.com/altsora/SocialNetwork-sub000/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) repository.LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Create(like *models.Like) error {
	if like.ID == uuid.Nil {
		like.ID = uuid.New()
	}
	if like.Time.IsZero() {
		like.Time = time.Now()
	}

	return r.db.Create(like).Error
}

func (r *likeRepository) Find(personID, itemID uuid.UUID, likeType dto.LikeType) (*models.Like, error) {
	var like models.Like
	err := r.db.Where("person_id = ? AND item_id = ? AND type = ?", personID, itemID, likeType).
		First(&like).Error
	if err != nil {
		return nil, err
	}
	return &like, nil
}

func (r *likeRepository) Delete(personID, itemID uuid.UUID, likeType dto.LikeType) error {
	return r.db.Where("person_id = ? AND item_id = ? AND type = ?", personID, itemID, likeType).
		Delete(&models.Like{}).Error
}

func (r *likeRepository) FindUserIDsByItem(itemID uuid.UUID, likeType dto.LikeType) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.Like{}).
		Where("item_id = ? AND type = ?", itemID, likeType).
		Pluck("person_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *likeRepository) CountByItem(itemID uuid.UUID, likeType dto.LikeType) (int64, error) {
	var count int64
	err := r.db.Model(&models.Like{}).
		Where("item_id = ? AND type = ?", itemID, likeType).
		Count(&count).Error
	return count, err
}
