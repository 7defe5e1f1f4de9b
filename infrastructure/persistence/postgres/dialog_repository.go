// infrastructure/persistence/postgres/dialog_repository.go
package postgres

import (
	"time"

	"github.com/altsora/SocialNetwork-sub000/domain/models"
	"github.com/altsora/SocialNetwork-sub000/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type dialogRepository struct {
	db *gorm.DB
}

func NewDialogRepository(db *gorm.DB) repository.DialogRepository {
	return &dialogRepository{db: db}
}

func (r *dialogRepository) Create(dialog *models.Dialog) error {
	if dialog.ID == uuid.Nil {
		dialog.ID = uuid.New()
	}
	if dialog.CreatedAt.IsZero() {
		dialog.CreatedAt = time.Now()
	}

	return r.db.Create(dialog).Error
}

func (r *dialogRepository) FindByID(id uuid.UUID) (*models.Dialog, error) {
	var dialog models.Dialog
	if err := r.db.Where("id = ? AND is_deleted = ?", id, false).First(&dialog).Error; err != nil {
		return nil, err
	}
	return &dialog, nil
}

func (r *dialogRepository) Update(dialog *models.Dialog) error {
	return r.db.Save(dialog).Error
}

func (r *dialogRepository) Exists(id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Dialog{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *dialogRepository) FindByPerson(personID uuid.UUID, offset, limit int) ([]*models.Dialog, int64, error) {
	query := r.db.Model(&models.Dialog{}).
		Joins("JOIN persons_dialogs ON persons_dialogs.dialog_id = dialogs.id").
		Where("persons_dialogs.person_id = ? AND dialogs.is_deleted = ?", personID, false)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var dialogs []*models.Dialog
	if err := query.Order("dialogs.created_at DESC").Offset(offset).Limit(limit).Find(&dialogs).Error; err != nil {
		return nil, 0, err
	}
	return dialogs, total, nil
}

func (r *dialogRepository) AddMember(member *models.Person2Dialog) error {
	if member.ID == uuid.Nil {
		member.ID = uuid.New()
	}
	return r.db.Create(member).Error
}

func (r *dialogRepository) MemberExists(personID, dialogID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Person2Dialog{}).
		Where("person_id = ? AND dialog_id = ?", personID, dialogID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *dialogRepository) MemberIDs(dialogID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.Person2Dialog{}).
		Where("dialog_id = ?", dialogID).
		Pluck("person_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *dialogRepository) IncrementUnread(dialogID uuid.UUID) error {
	return r.db.Model(&models.Dialog{}).
		Where("id = ?", dialogID).
		UpdateColumn("unread_count", gorm.Expr("unread_count + 1")).Error
}

func (r *dialogRepository) DecrementUnread(dialogID uuid.UUID) error {
	return r.db.Model(&models.Dialog{}).
		Where("id = ? AND unread_count > 0", dialogID).
		UpdateColumn("unread_count", gorm.Expr("unread_count - 1")).Error
}

func (r *dialogRepository) ResetUnread(dialogID uuid.UUID) error {
	return r.db.Model(&models.Dialog{}).
		Where("id = ?", dialogID).
		UpdateColumn("unread_count", 0).Error
}

func (r *dialogRepository) TotalUnreadByPerson(personID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Message{}).
		Where("recipient_id = ? AND read_status = ? AND is_deleted = ?", personID, "SENT", false).
		Count(&count).Error
	return count, err
}
