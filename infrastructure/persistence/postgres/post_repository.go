// infrastructure/persistence/postgres/post_repository.go
package postgres

import (
	"time"

	"github.com/altsora/SocialNetwork-sub000/domain/models"
	"github.com/altsora/SocialNetwork-sub000/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *models.Post) error {
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	if post.Time.IsZero() {
		post.Time = time.Now()
	}

	return r.db.Create(post).Error
}

func (r *postRepository) FindByID(id uuid.UUID) (*models.Post, error) {
	var post models.Post
	if err := r.db.Where("id = ?", id).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) Mutate(id uuid.UUID, apply func(*models.Post) error) (*models.Post, error) {
	var post models.Post
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).First(&post).Error; err != nil {
			return err
		}
		if err := apply(&post); err != nil {
			return err
		}
		return tx.Save(&post).Error
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) FindByAuthor(authorID uuid.UUID, offset, limit int) ([]*models.Post, int64, error) {
	// Posts scheduled for the future stay hidden until their time comes.
	query := r.db.Model(&models.Post{}).
		Where("author_id = ? AND is_deleted = ? AND time <= ?", authorID, false, time.Now())

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []*models.Post
	if err := query.Order("time DESC").Offset(offset).Limit(limit).Find(&posts).Error; err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *postRepository) FindFeed(offset, limit int) ([]*models.Post, int64, error) {
	query := r.db.Model(&models.Post{}).
		Where("is_deleted = ? AND is_blocked = ? AND time <= ?", false, false, time.Now())

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []*models.Post
	if err := query.Order("time DESC").Offset(offset).Limit(limit).Find(&posts).Error; err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *postRepository) IncrementLikes(id uuid.UUID) error {
	return r.db.Model(&models.Post{}).
		Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("likes + 1")).Error
}

func (r *postRepository) DecrementLikes(id uuid.UUID) error {
	return r.db.Model(&models.Post{}).
		Where("id = ? AND likes > 0", id).
		UpdateColumn("likes", gorm.Expr("likes - 1")).Error
}
