// domain/service/storage_service.go
package service

import (
	"mime/multipart"

	"github.com/altsora/SocialNetwork-sub000/domain/models"
	"github.com/google/uuid"
)

// FileUploadResult is what the storage provider reports back after an upload.
type FileUploadResult struct {
	URL          string
	Path         string
	PublicID     string
	ResourceType string
	Format       string
	Size         int
	Width        int
	Height       int
}

// FileStorageService is the port to the external object-storage provider.
type FileStorageService interface {
	UploadImage(file *multipart.FileHeader, folder string) (*FileUploadResult, error)
	DeleteFile(path string) error
	GetPublicURL(path string) string
}

// StorageService validates and records uploads on top of the provider.
type StorageService interface {
	// UploadFile rejects unknown file types and unreadable files with a
	// descriptive client error.
	UploadFile(ownerID uuid.UUID, fileType string, file *multipart.FileHeader) (*models.FileUpload, error)
}
