// domain/repository/dialog_repository.go
package repository

import (
	"github.com/altsora/SocialNetwork-sub000/domain/models"
	"github.com/google/uuid"
)

type DialogRepository interface {
	Create(dialog *models.Dialog) error
	FindByID(id uuid.UUID) (*models.Dialog, error)
	Update(dialog *models.Dialog) error
	Exists(id uuid.UUID) (bool, error)

	FindByPerson(personID uuid.UUID, offset, limit int) ([]*models.Dialog, int64, error)

	AddMember(member *models.Person2Dialog) error
	MemberExists(personID, dialogID uuid.UUID) (bool, error)
	MemberIDs(dialogID uuid.UUID) ([]uuid.UUID, error)

	IncrementUnread(dialogID uuid.UUID) error
	// DecrementUnread floors the counter at zero.
	DecrementUnread(dialogID uuid.UUID) error
	ResetUnread(dialogID uuid.UUID) error
	TotalUnreadByPerson(personID uuid.UUID) (int64, error)
}
