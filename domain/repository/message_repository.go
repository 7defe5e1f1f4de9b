// domain/repository/message_repository.go
package repository

import (
	"github.com/altsora/SocialNetwork-sub000/domain/models"
	"github.com/google/uuid"
)

type MessageRepository interface {
	Create(message *models.Message) error
	FindByID(id uuid.UUID) (*models.Message, error)
	Update(message *models.Message) error

	// FindByDialog returns non-deleted messages of a dialog, oldest first.
	FindByDialog(dialogID uuid.UUID, offset, limit int) ([]*models.Message, int64, error)
	// MarkRead flips every SENT message addressed to the recipient in the
	// dialog to READ.
	MarkRead(dialogID, recipientID uuid.UUID) error
}
