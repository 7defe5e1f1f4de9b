// domain/repository/file_upload_repository.go
package repository

import (
	"github.com/altsora/SocialNetwork-sub000/domain/models"
	"github.com/google/uuid"
)

type FileUploadRepository interface {
	Create(upload *models.FileUpload) error
	FindByID(id uuid.UUID) (*models.FileUpload, error)
	Delete(id uuid.UUID) error
}
