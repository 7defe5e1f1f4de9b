// application/serviceimpl/auth_service.go
package serviceimpl

import (
	"context"
	"errors"
	"time"

	"github.com/altsora/SocialNetwork-sub000/domain/models"
	"github.com/altsora/SocialNetwork-sub000/domain/repository"
	"github.com/altsora/SocialNetwork-sub000/domain/service"
	"github.com/altsora/SocialNetwork-sub000/pkg/utils"
	"github.com/google/uuid"
)

type authService struct {
	personRepo      repository.PersonRepository
	presenceService service.PresenceService
}

func NewAuthService(
	personRepo repository.PersonRepository,
	presenceService service.PresenceService,
) service.AuthService {
	return &authService{
		personRepo:      personRepo,
		presenceService: presenceService,
	}
}

// Login verifies credentials; the same error covers an unknown email and a
// wrong password so the response does not leak which one failed.
func (s *authService) Login(ctx context.Context, email, password string) (*models.Person, string, error) {
	person, err := s.personRepo.FindByEmail(email)
	if err != nil {
		return nil, "", errors.New("invalid email or password")
	}

	if !utils.CheckPassword(person.PasswordHash, password) {
		return nil, "", errors.New("invalid email or password")
	}

	if person.IsDeleted {
		return nil, "", errors.New("invalid email or password")
	}
	if person.IsBlocked {
		return nil, "", errors.New("user is blocked")
	}

	token, err := utils.GenerateToken(person.ID)
	if err != nil {
		return nil, "", err
	}

	now := time.Now()
	if err := s.personRepo.UpdateLastOnline(person.ID, now, true); err != nil {
		return nil, "", err
	}
	person.IsOnline = true
	person.LastOnlineTime = &now

	// Presence is best effort; a cache hiccup must not fail the login.
	_ = s.presenceService.MarkOnline(ctx, person.ID)

	return person, token, nil
}

func (s *authService) Logout(ctx context.Context, personID uuid.UUID) error {
	if personID == uuid.Nil {
		return errors.New("person not found")
	}

	if err := s.personRepo.UpdateLastOnline(personID, time.Now(), false); err != nil {
		return err
	}

	_ = s.presenceService.MarkOffline(ctx, personID)
	return nil
}
