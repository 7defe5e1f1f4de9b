// pkg/configs/storage_config.go
package configs

import (
	"os"

	"github.com/altsora/SocialNetwork-sub000/domain/service"
	"github.com/altsora/SocialNetwork-sub000/infrastructure/storage/cloudinary"
)

// SetupStorageService builds the FileStorageService from the environment.
func SetupStorageService() (service.FileStorageService, error) {
	return cloudinary.NewCloudinaryStorage(&cloudinary.Config{
		CloudName:    os.Getenv("CLOUDINARY_CLOUD_NAME"),
		APIKey:       os.Getenv("CLOUDINARY_API_KEY"),
		APISecret:    os.Getenv("CLOUDINARY_API_SECRET"),
		UploadFolder: getEnv("CLOUDINARY_UPLOAD_FOLDER", "social"),
	})
}
