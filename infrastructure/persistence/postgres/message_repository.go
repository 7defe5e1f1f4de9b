// infrastructure/persistence/postgres/message_repository.go
package postgres

import (
	"time"

	"github.com/altsora/SocialNetwork-sub000/domain/models"
	"github.com/altsora/SocialNetwork-sub000/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(message *models.Message) error {
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	if message.Time.IsZero() {
		message.Time = time.Now()
	}

	return r.db.Create(message).Error
}

func (r *messageRepository) FindByID(id uuid.UUID) (*models.Message, error) {
	var message models.Message
	if err := r.db.Where("id = ?", id).First(&message).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *messageRepository) Update(message *models.Message) error {
	return r.db.Save(message).Error
}

func (r *messageRepository) FindByDialog(dialogID uuid.UUID, offset, limit int) ([]*models.Message, int64, error) {
	query := r.db.Model(&models.Message{}).
		Where("dialog_id = ? AND is_deleted = ?", dialogID, false)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var messages []*models.Message
	if err := query.Order("time ASC").Offset(offset).Limit(limit).Find(&messages).Error; err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}

func (r *messageRepository) MarkRead(dialogID, recipientID uuid.UUID) error {
	return r.db.Model(&models.Message{}).
		Where("dialog_id = ? AND recipient_id = ? AND read_status = ?", dialogID, recipientID, "SENT").
		Update("read_status", "READ").Error
}
