// infrastructure/persistence/postgres/tag_repository.go
package postgres

import (
	"github.com/altsora/SocialNetwork-sub000/domain/models"
	"github.com/altsora/SocialNetwork-sub000/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) repository.TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(tag *models.Tag) error {
	if tag.ID == uuid.Nil {
		tag.ID = uuid.New()
	}
	return r.db.Create(tag).Error
}

func (r *tagRepository) FindByID(id uuid.UUID) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.Where("id = ?", id).First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) FindByText(text string) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.Where("tag = ?", text).First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) Delete(id uuid.UUID) error {
	if err := r.db.Where("tag_id = ?", id).Delete(&models.Post2Tag{}).Error; err != nil {
		return err
	}
	return r.db.Delete(&models.Tag{}, "id = ?", id).Error
}

func (r *tagRepository) List(textFilter string, offset, limit int) ([]*models.Tag, int64, error) {
	query := r.db.Model(&models.Tag{})
	if textFilter != "" {
		query = query.Where("tag ILIKE ?", "%"+textFilter+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tags []*models.Tag
	if err := query.Order("tag ASC").Offset(offset).Limit(limit).Find(&tags).Error; err != nil {
		return nil, 0, err
	}
	return tags, total, nil
}

func (r *tagRepository) AttachToPost(postID, tagID uuid.UUID) error {
	link := &models.Post2Tag{ID: uuid.New(), PostID: postID, TagID: tagID}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "post_id"}, {Name: "tag_id"}},
		DoNothing: true,
	}).Create(link).Error
}

func (r *tagRepository) DetachAllFromPost(postID uuid.UUID) error {
	return r.db.Where("post_id = ?", postID).Delete(&models.Post2Tag{}).Error
}

func (r *tagRepository) FindByPost(postID uuid.UUID) ([]*models.Tag, error) {
	var tags []*models.Tag
	err := r.db.Model(&models.Tag{}).
		Joins("JOIN posts_tags ON posts_tags.tag_id = tags.id").
		Where("posts_tags.post_id = ?", postID).
		Order("tags.tag ASC").
		Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}
