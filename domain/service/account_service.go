// domain/service/account_service.go
package service

import (
	"github.com/altsora/SocialNetwork-sub000/domain/dto"
	"github.com/altsora/SocialNetwork-sub000/domain/models"
	"github.com/google/uuid"
)

type AccountService interface {
	// Register creates a new person. It returns false without touching the
	// store when the passwords mismatch or the email is already registered.
	Register(req dto.RegisterRequest) (bool, error)
	// RecoverPassword generates a random password, persists its hash and
	// mails it to the person. False when no person matches the email.
	RecoverPassword(email string) (bool, error)
	// SetNewPassword and ChangeEmail act on the authenticated person and
	// return false when it cannot be resolved.
	SetNewPassword(personID uuid.UUID, newPassword string) (bool, error)
	ChangeEmail(personID uuid.UUID, newEmail string) (bool, error)

	// FindCurrentUser returns nil for anonymous sessions.
	FindCurrentUser(personID uuid.UUID) (*models.Person, error)
	UpdateProfile(personID uuid.UUID, req dto.UpdateProfileRequest) (*models.Person, error)
	DeleteAccount(personID uuid.UUID) error

	// ChangeUserLockStatus toggles the blocked flag and returns the new
	// state.
	ChangeUserLockStatus(personID uuid.UUID) (bool, error)
	SearchPersons(req dto.SearchPersonsRequest) ([]*models.Person, int64, error)
}
