// domain/service/dialog_service.go
package service

import (
	"context"

	"github.com/altsora/SocialNetwork-sub000/domain/dto"
	"github.com/altsora/SocialNetwork-sub000/domain/models"
	"github.com/google/uuid"
)

type DialogService interface {
	CreateDialog(ownerID uuid.UUID, memberIDs []uuid.UUID) (*models.Dialog, error)
	FindByID(id uuid.UUID) (*models.Dialog, error)
	Exists(id uuid.UUID) (bool, error)
	PersonInDialog(personID, dialogID uuid.UUID) (bool, error)
	GetDialogs(personID uuid.UUID, offset, limit int) ([]dto.DialogData, int64, error)

	SendMessage(dialogID, authorID uuid.UUID, text string) (*dto.MessageFullResponse, error)
	ListMessages(dialogID uuid.UUID, offset, limit int) ([]dto.MessageFullResponse, int64, error)
	// RemoveMessage soft-marks the message deleted and echoes its id.
	RemoveMessage(messageID uuid.UUID) (uuid.UUID, error)
	EditMessage(messageID uuid.UUID, text string) (*dto.MessageFullResponse, error)

	// MarkDialogRead flips the person's unread messages to READ and resets
	// the dialog counter accordingly.
	MarkDialogRead(dialogID, personID uuid.UUID) error
	// DecreaseUnreadCount decrements the dialog counter, floored at zero.
	DecreaseUnreadCount(dialogID uuid.UUID) error
	UnreadTotal(personID uuid.UUID) (int64, error)

	// GetActivity reports presence of the other dialog participant.
	GetActivity(ctx context.Context, personID, dialogID uuid.UUID) (*dto.ActivityData, error)
}
