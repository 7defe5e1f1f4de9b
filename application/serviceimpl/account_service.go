// application/serviceimpl/account_service.go
package serviceimpl

import (
	"errors"
	"fmt"
	"time"

	"github.com/altsora/SocialNetwork-sub000/domain/dto"
	"github.com/altsora/SocialNetwork-sub000/domain/models"
	"github.com/altsora/SocialNetwork-sub000/domain/repository"
	"github.com/altsora/SocialNetwork-sub000/domain/service"
	"github.com/altsora/SocialNetwork-sub000/pkg/logger"
	"github.com/altsora/SocialNetwork-sub000/pkg/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type accountService struct {
	personRepo repository.PersonRepository
	mailSender service.MailSender
}

func NewAccountService(
	personRepo repository.PersonRepository,
	mailSender service.MailSender,
) service.AccountService {
	return &accountService{
		personRepo: personRepo,
		mailSender: mailSender,
	}
}

func (s *accountService) Register(req dto.RegisterRequest) (bool, error) {
	if req.Password != req.PasswordRepeat {
		return false, errors.New("passwords do not match")
	}

	exists, err := s.personRepo.ExistsByEmail(req.Email)
	if err != nil {
		return false, err
	}
	if exists {
		return false, errors.New("user with this email already exists")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return false, err
	}

	person := &models.Person{
		ID:           uuid.New(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: hash,
		RegDate:      time.Now(),
		IsApproved:   true,
	}

	if err := s.personRepo.Create(person); err != nil {
		return false, err
	}

	return true, nil
}

// RecoverPassword stores the hash of a freshly generated password, then
// mails the plaintext without waiting for delivery.
func (s *accountService) RecoverPassword(email string) (bool, error) {
	person, err := s.personRepo.FindByEmail(email)
	if err != nil {
		return false, errors.New("person not found")
	}

	newPassword, err := utils.GenerateRandomPassword(utils.GeneratedPasswordLength)
	if err != nil {
		return false, err
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return false, err
	}

	if _, err := s.personRepo.Mutate(person.ID, func(p *models.Person) error {
		p.PasswordHash = hash
		return nil
	}); err != nil {
		return false, err
	}

	go func() {
		body := fmt.Sprintf("Hello %s,\n\nYour new password: %s\n\nPlease change it after logging in.",
			person.FirstName, newPassword)
		if err := s.mailSender.Send(person.Email, "Password recovery", body); err != nil {
			logger.Log.Error("failed to send recovery mail",
				zap.Error(err), zap.String("email", person.Email))
		}
	}()

	return true, nil
}

func (s *accountService) SetNewPassword(personID uuid.UUID, newPassword string) (bool, error) {
	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return false, err
	}

	if _, err := s.mutateAuthenticated(personID, func(p *models.Person) error {
		p.PasswordHash = hash
		return nil
	}); err != nil {
		return false, err
	}
	return true, nil
}

func (s *accountService) ChangeEmail(personID uuid.UUID, newEmail string) (bool, error) {
	_, err := s.mutateAuthenticated(personID, func(p *models.Person) error {
		if p.Email != newEmail {
			exists, err := s.personRepo.ExistsByEmail(newEmail)
			if err != nil {
				return err
			}
			if exists {
				return errors.New("user with this email already exists")
			}
		}
		p.Email = newEmail
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// FindCurrentUser returns nil, nil for anonymous sessions.
func (s *accountService) FindCurrentUser(personID uuid.UUID) (*models.Person, error) {
	if personID == uuid.Nil {
		return nil, nil
	}
	person, err := s.personRepo.FindByID(personID)
	if err != nil {
		return nil, nil
	}
	return person, nil
}

func (s *accountService) UpdateProfile(personID uuid.UUID, req dto.UpdateProfileRequest) (*models.Person, error) {
	return s.mutateAuthenticated(personID, func(person *models.Person) error {
		if req.FirstName != nil {
			person.FirstName = *req.FirstName
		}
		if req.LastName != nil {
			person.LastName = *req.LastName
		}
		if req.Phone != nil {
			person.Phone = *req.Phone
		}
		if req.Photo != nil {
			person.Photo = *req.Photo
		}
		if req.About != nil {
			person.About = *req.About
		}
		if req.City != nil {
			person.City = *req.City
		}
		if req.Country != nil {
			person.Country = *req.Country
		}
		if req.BirthDate != nil {
			person.BirthDate = req.BirthDate
		}
		return nil
	})
}

func (s *accountService) DeleteAccount(personID uuid.UUID) error {
	_, err := s.mutateAuthenticated(personID, func(person *models.Person) error {
		person.IsDeleted = true
		return nil
	})
	return err
}

func (s *accountService) ChangeUserLockStatus(personID uuid.UUID) (bool, error) {
	if _, err := s.personRepo.FindByID(personID); err != nil {
		return false, errors.New("person not found")
	}

	blocked, err := s.personRepo.ToggleBlocked(personID)
	if err != nil {
		return false, err
	}
	return blocked, nil
}

func (s *accountService) SearchPersons(req dto.SearchPersonsRequest) ([]*models.Person, int64, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := req.Offset
	if offset < 0 {
		offset = 0
	}
	// Pagination is page-based underneath: page = offset / limit.
	page := offset / limit

	filter := repository.PersonSearchFilter{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		AgeFrom:   req.AgeFrom,
		AgeTo:     req.AgeTo,
	}
	return s.personRepo.Search(filter, page*limit, limit)
}

// mutateAuthenticated applies the callback to the authenticated person's row
// inside the repository transaction. Callback errors pass through unchanged.
func (s *accountService) mutateAuthenticated(personID uuid.UUID, apply func(*models.Person) error) (*models.Person, error) {
	if personID == uuid.Nil {
		return nil, errors.New("person not found")
	}
	person, err := s.personRepo.Mutate(personID, apply)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("person not found")
		}
		return nil, err
	}
	return person, nil
}
