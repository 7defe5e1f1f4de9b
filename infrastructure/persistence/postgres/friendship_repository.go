// infrastructure/persistence/postgres/friendship_repository.go
package postgres

import (
	"time"

	"github.com/altsora/SocialNetwork-sub000/domain/dto"
	"github.com/altsora/SocialNetwork-sub000/domain/models"
	"github.com/altsora/SocialNetwork-sub000/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type friendshipRepository struct {
	db *gorm.DB
}

func NewFriendshipRepository(db *gorm.DB) repository.FriendshipRepository {
	return &friendshipRepository{db: db}
}

func (r *friendshipRepository) Create(friendship *models.Friendship) error {
	if friendship.ID == uuid.Nil {
		friendship.ID = uuid.New()
	}
	if friendship.Time.IsZero() {
		friendship.Time = time.Now()
	}

	return r.db.Create(friendship).Error
}

func (r *friendshipRepository) Update(friendship *models.Friendship) error {
	return r.db.Save(friendship).Error
}

func (r *friendshipRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Friendship{}, "id = ?", id).Error
}

func (r *friendshipRepository) FindBySrcAndDst(srcID, dstID uuid.UUID) (*models.Friendship, error) {
	var friendship models.Friendship
	err := r.db.Where("src_person_id = ? AND dst_person_id = ?", srcID, dstID).
		First(&friendship).Error
	if err != nil {
		return nil, err
	}
	return &friendship, nil
}

func (r *friendshipRepository) DeletePair(aID, bID uuid.UUID) error {
	return r.db.Where("(src_person_id = ? AND dst_person_id = ?) OR (src_person_id = ? AND dst_person_id = ?)",
		aID, bID, bID, aID).Delete(&models.Friendship{}).Error
}

func (r *friendshipRepository) FindPersonIDsBySrcAndStatus(srcID uuid.UUID, status dto.FriendshipStatus) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.Friendship{}).
		Where("src_person_id = ? AND status = ?", srcID, status).
		Pluck("dst_person_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *friendshipRepository) FindPersonIDsByDstAndStatus(dstID uuid.UUID, status dto.FriendshipStatus) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.Friendship{}).
		Where("dst_person_id = ? AND status = ?", dstID, status).
		Pluck("src_person_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *friendshipRepository) FindStatuses(srcID uuid.UUID, candidateIDs []uuid.UUID) ([]*models.Friendship, error) {
	if len(candidateIDs) == 0 {
		return nil, nil
	}
	var friendships []*models.Friendship
	err := r.db.Where("src_person_id = ? AND dst_person_id IN ?", srcID, candidateIDs).
		Find(&friendships).Error
	if err != nil {
		return nil, err
	}
	return friendships, nil
}
