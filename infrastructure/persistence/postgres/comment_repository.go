// infrastructure/persistence/postgres/comment_repository.go
package postgres

import (
	"time"

	"github.com/altsora/SocialNetwork-sub000/domain/models"
	"github.com/altsora/SocialNetwork-sub000/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *models.Comment) error {
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	if comment.Time.IsZero() {
		comment.Time = time.Now()
	}

	return r.db.Create(comment).Error
}

func (r *commentRepository) FindByID(id uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.Where("id = ?", id).First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) Update(comment *models.Comment) error {
	return r.db.Save(comment).Error
}

func (r *commentRepository) SetBlocked(id uuid.UUID, blocked bool) error {
	return r.db.Model(&models.Comment{}).Where("id = ?", id).
		UpdateColumn("is_blocked", blocked).Error
}

func (r *commentRepository) FindByPost(postID uuid.UUID) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.Where("post_id = ? AND is_blocked = ?", postID, false).
		Order("time ASC").Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
