// infrastructure/persistence/postgres/file_upload_repository.go
package postgres

import (
	"time"

	"github.com/altsora/SocialNetwork-sub000/domain/models"
	"github.com/altsora/SocialNetwork-sub000/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fileUploadRepository struct {
	db *gorm.DB
}

func NewFileUploadRepository(db *gorm.DB) repository.FileUploadRepository {
	return &fileUploadRepository{db: db}
}

func (r *fileUploadRepository) Create(upload *models.FileUpload) error {
	if upload.ID == uuid.Nil {
		upload.ID = uuid.New()
	}
	if upload.CreatedAt.IsZero() {
		upload.CreatedAt = time.Now()
	}

	return r.db.Create(upload).Error
}

func (r *fileUploadRepository) FindByID(id uuid.UUID) (*models.FileUpload, error) {
	var upload models.FileUpload
	if err := r.db.Where("id = ?", id).First(&upload).Error; err != nil {
		return nil, err
	}
	return &upload, nil
}

func (r *fileUploadRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.FileUpload{}, "id = ?", id).Error
}
