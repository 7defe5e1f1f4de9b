// interfaces/api/handler/storage_handler.go
package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/altsora/SocialNetwork-sub000/domain/service"
	"github.com/altsora/SocialNetwork-sub000/interfaces/api/middleware"
)

// StorageHandler - file uploads
type StorageHandler struct {
	storageService service.StorageService
}

func NewStorageHandler(storageService service.StorageService) *StorageHandler {
	return &StorageHandler{storageService: storageService}
}

// Upload - store a multipart file and return its public location
func (h *StorageHandler) Upload(c *fiber.Ctx) error {
	fileType := c.Query("type", "IMAGE")

	file, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, errors.New("file is required"))
	}

	upload, err := h.storageService.UploadFile(middleware.GetUserUUID(c), fileType, file)
	if err != nil {
		return badRequest(c, err)
	}

	return ok(c, fiber.Map{
		"id":        upload.ID,
		"file_name": upload.FileName,
		"file_type": upload.FileType,
		"format":    upload.FileFormat,
		"bytes":     upload.Bytes,
		"url":       upload.RelativeURL,
	})
}
