// infrastructure/storage/cloudinary/cloudinary_storage.go
package cloudinary

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/altsora/SocialNetwork-sub000/domain/service"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Config holds the Cloudinary account parameters.
type Config struct {
	CloudName    string
	APIKey       string
	APISecret    string
	UploadFolder string
}

type cloudinaryStorage struct {
	cld    *cloudinary.Cloudinary
	config *Config
}

// NewCloudinaryStorage builds a FileStorageService backed by Cloudinary.
func NewCloudinaryStorage(config *Config) (service.FileStorageService, error) {
	cld, err := cloudinary.NewFromParams(config.CloudName, config.APIKey, config.APISecret)
	if err != nil {
		return nil, err
	}

	return &cloudinaryStorage{
		cld:    cld,
		config: config,
	}, nil
}

func boolPtr(b bool) *bool {
	return &b
}

// UploadImage pushes an image to Cloudinary and maps the result back into
// the domain type.
func (c *cloudinaryStorage) UploadImage(file *multipart.FileHeader, folder string) (*service.FileUploadResult, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	uploadParams := uploader.UploadParams{
		Folder:         folder,
		UseFilename:    boolPtr(true),
		UniqueFilename: boolPtr(true),
		ResourceType:   "image",
		Transformation: "q_auto:good",
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := c.cld.Upload.Upload(ctx, src, uploadParams)
	if err != nil {
		return nil, err
	}

	return &service.FileUploadResult{
		URL:          result.SecureURL,
		Path:         result.PublicID,
		PublicID:     result.PublicID,
		ResourceType: result.ResourceType,
		Format:       result.Format,
		Size:         int(result.Bytes),
		Width:        result.Width,
		Height:       result.Height,
	}, nil
}

// DeleteFile destroys the stored file; for Cloudinary the path is the
// public id.
func (c *cloudinaryStorage) DeleteFile(path string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: path,
	})
	return err
}

// GetPublicURL composes the delivery URL for a stored file.
func (c *cloudinaryStorage) GetPublicURL(path string) string {
	return "https://res.cloudinary.com/" + c.config.CloudName + "/image/upload/" + path
}
