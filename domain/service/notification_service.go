// domain/service/notification_service.go
package service

import (
	"github.com/altsora/SocialNetwork-sub000/domain/dto"
	"github.com/google/uuid"
)

type NotificationService interface {
	// GetNotifications pages through unread notifications, most recent first.
	GetNotifications(personID uuid.UUID, offset, perPage int) ([]dto.NotificationData, int64, error)
	ReadAll(personID uuid.UUID) error
	// ReadByID fails with a descriptive error when the notification does not
	// exist, belongs to someone else, or is already read.
	ReadByID(personID, id uuid.UUID) error

	SaveSettings(personID uuid.UUID, typeCode dto.NotificationTypeCode, enable bool) error
	GetSettings(personID uuid.UUID) ([]dto.NotificationSettingsData, error)

	// Send creates a notification unless the recipient disabled the type.
	Send(typeCode dto.NotificationTypeCode, toWhomID uuid.UUID, info string) error
}
