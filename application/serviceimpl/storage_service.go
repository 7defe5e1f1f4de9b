// application/serviceimpl/storage_service.go
package serviceimpl

import (
	"errors"
	"mime/multipart"
	"time"

	"github.com/altsora/SocialNetwork-sub000/domain/models"
	"github.com/altsora/SocialNetwork-sub000/domain/repository"
	"github.com/altsora/SocialNetwork-sub000/domain/service"
	"github.com/google/uuid"
)

const uploadFolder = "social"

type storageService struct {
	fileStorage    service.FileStorageService
	fileUploadRepo repository.FileUploadRepository
}

func NewStorageService(
	fileStorage service.FileStorageService,
	fileUploadRepo repository.FileUploadRepository,
) service.StorageService {
	return &storageService{
		fileStorage:    fileStorage,
		fileUploadRepo: fileUploadRepo,
	}
}

// UploadFile pushes the file to the storage provider and records its
// metadata. Only IMAGE uploads are accepted.
func (s *storageService) UploadFile(ownerID uuid.UUID, fileType string, file *multipart.FileHeader) (*models.FileUpload, error) {
	if fileType != "IMAGE" {
		return nil, errors.New("unsupported file type: " + fileType)
	}
	if file == nil {
		return nil, errors.New("file is missing")
	}

	result, err := s.fileStorage.UploadImage(file, uploadFolder)
	if err != nil {
		return nil, errors.New("file could not be read or uploaded")
	}

	upload := &models.FileUpload{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		FileName:    file.Filename,
		FileFormat:  result.Format,
		FileType:    fileType,
		Bytes:       result.Size,
		RelativeURL: result.URL,
		StoragePath: result.Path,
		CreatedAt:   time.Now(),
	}
	if err := s.fileUploadRepo.Create(upload); err != nil {
		return nil, err
	}

	return upload, nil
}
