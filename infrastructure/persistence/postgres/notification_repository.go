// infrastructure/persistence/postgres/notification_repository.go
package postgres

import (
	"time"

	"github.com/altsora/SocialNetwork-sub000/domain/models"
	"github.com/altsora/SocialNetwork-sub000/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(notification *models.Notification) error {
	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}
	if notification.SentTime.IsZero() {
		notification.SentTime = time.Now()
	}

	return r.db.Create(notification).Error
}

func (r *notificationRepository) Mutate(id uuid.UUID, apply func(*models.Notification) error) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).First(&notification).Error; err != nil {
			return err
		}
		if err := apply(&notification); err != nil {
			return err
		}
		return tx.Save(&notification).Error
	})
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepository) FindUnreadByPerson(personID uuid.UUID, offset, perPage int) ([]*models.Notification, int64, error) {
	query := r.db.Model(&models.Notification{}).
		Where("to_whom_id = ? AND is_read = ?", personID, false)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var notifications []*models.Notification
	if err := query.Order("sent_time DESC").Offset(offset).Limit(perPage).Find(&notifications).Error; err != nil {
		return nil, 0, err
	}
	return notifications, total, nil
}

func (r *notificationRepository) MarkAllRead(personID uuid.UUID) error {
	return r.db.Model(&models.Notification{}).
		Where("to_whom_id = ? AND is_read = ?", personID, false).
		Update("is_read", true).Error
}

type notificationTypeRepository struct {
	db *gorm.DB
}

func NewNotificationTypeRepository(db *gorm.DB) repository.NotificationTypeRepository {
	return &notificationTypeRepository{db: db}
}

func (r *notificationTypeRepository) Create(nt *models.NotificationType) error {
	if nt.ID == uuid.Nil {
		nt.ID = uuid.New()
	}
	// Seeding is idempotent; an existing code wins.
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoNothing: true,
	}).Create(nt).Error
}

func (r *notificationTypeRepository) FindByCode(code string) (*models.NotificationType, error) {
	var nt models.NotificationType
	if err := r.db.Where("code = ?", code).First(&nt).Error; err != nil {
		return nil, err
	}
	return &nt, nil
}

func (r *notificationTypeRepository) FindAll() ([]*models.NotificationType, error) {
	var types []*models.NotificationType
	if err := r.db.Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

type notificationSettingsRepository struct {
	db *gorm.DB
}

func NewNotificationSettingsRepository(db *gorm.DB) repository.NotificationSettingsRepository {
	return &notificationSettingsRepository{db: db}
}

func (r *notificationSettingsRepository) FindByPersonAndType(personID, typeID uuid.UUID) (*models.NotificationSettings, error) {
	var settings models.NotificationSettings
	err := r.db.Where("person_id = ? AND type_id = ?", personID, typeID).
		First(&settings).Error
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *notificationSettingsRepository) FindByPerson(personID uuid.UUID) ([]*models.NotificationSettings, error) {
	var settings []*models.NotificationSettings
	if err := r.db.Where("person_id = ?", personID).Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *notificationSettingsRepository) Upsert(settings *models.NotificationSettings) error {
	if settings.ID == uuid.Nil {
		settings.ID = uuid.New()
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "person_id"}, {Name: "type_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"enabled"}),
	}).Create(settings).Error
}
