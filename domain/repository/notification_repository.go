// domain/repository/notification_repository.go
package repository

import (
	"github.com/altsora/SocialNetwork-sub000/domain/models"
	"github.com/google/uuid"
)

type NotificationRepository interface {
	Create(notification *models.Notification) error
	// Mutate runs find-apply-save as one transaction; an error from the
	// callback rolls it back.
	Mutate(id uuid.UUID, apply func(*models.Notification) error) (*models.Notification, error)

	// FindUnreadByPerson returns unread notifications, most recent first.
	FindUnreadByPerson(personID uuid.UUID, offset, perPage int) ([]*models.Notification, int64, error)
	MarkAllRead(personID uuid.UUID) error
}

type NotificationTypeRepository interface {
	Create(nt *models.NotificationType) error
	FindByCode(code string) (*models.NotificationType, error)
	FindAll() ([]*models.NotificationType, error)
}

type NotificationSettingsRepository interface {
	FindByPersonAndType(personID, typeID uuid.UUID) (*models.NotificationSettings, error)
	FindByPerson(personID uuid.UUID) ([]*models.NotificationSettings, error)
	// Upsert inserts the row or updates its enabled flag when one already
	// exists for (person, type).
	Upsert(settings *models.NotificationSettings) error
}
