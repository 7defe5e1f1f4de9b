// application/serviceimpl/account_service_test.go
package serviceimpl

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/altsora/SocialNetwork-sub000/domain/dto"
	"github.com/altsora/SocialNetwork-sub000/domain/models"
	"github.com/altsora/SocialNetwork-sub000/pkg/utils"
)

func TestRegisterPasswordMismatch(t *testing.T) {
	personRepo := new(MockPersonRepository)
	mailSender := new(MockMailSender)
	service := NewAccountService(personRepo, mailSender)

	ok, err := service.Register(dto.RegisterRequest{
		Email:          "new@example.com",
		Password:       "password123",
		PasswordRepeat: "different456",
		FirstName:      "Ada",
		LastName:       "Lovelace",
	})

	assert.False(t, ok)
	assert.EqualError(t, err, "passwords do not match")
	// Nothing may have touched the store.
	personRepo.AssertNotCalled(t, "Create", mock.Anything)
	personRepo.AssertNotCalled(t, "ExistsByEmail", mock.Anything)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	personRepo := new(MockPersonRepository)
	mailSender := new(MockMailSender)
	service := NewAccountService(personRepo, mailSender)

	personRepo.On("ExistsByEmail", "taken@example.com").Return(true, nil)

	ok, err := service.Register(dto.RegisterRequest{
		Email:          "taken@example.com",
		Password:       "password123",
		PasswordRepeat: "password123",
		FirstName:      "Ada",
		LastName:       "Lovelace",
	})

	assert.False(t, ok)
	assert.EqualError(t, err, "user with this email already exists")
	personRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestRegisterSuccess(t *testing.T) {
	personRepo := new(MockPersonRepository)
	mailSender := new(MockMailSender)
	service := NewAccountService(personRepo, mailSender)

	personRepo.On("ExistsByEmail", "new@example.com").Return(false, nil)
	personRepo.On("Create", mock.AnythingOfType("*models.Person")).Run(func(args mock.Arguments) {
		person := args.Get(0).(*models.Person)
		assert.Equal(t, "new@example.com", person.Email)
		assert.NotEqual(t, uuid.Nil, person.ID)
		// The plaintext password must never be stored.
		assert.NotEqual(t, "password123", person.PasswordHash)
		assert.True(t, utils.CheckPassword(person.PasswordHash, "password123"))
	}).Return(nil)

	ok, err := service.Register(dto.RegisterRequest{
		Email:          "new@example.com",
		Password:       "password123",
		PasswordRepeat: "password123",
		FirstName:      "Ada",
		LastName:       "Lovelace",
	})

	assert.True(t, ok)
	assert.NoError(t, err)
	personRepo.AssertExpectations(t)
}

func TestRecoverPasswordUnknownEmail(t *testing.T) {
	personRepo := new(MockPersonRepository)
	mailSender := new(MockMailSender)
	service := NewAccountService(personRepo, mailSender)

	personRepo.On("FindByEmail", "ghost@example.com").Return(nil, errors.New("record not found"))

	ok, err := service.RecoverPassword("ghost@example.com")
	assert.False(t, ok)
	assert.EqualError(t, err, "person not found")
	personRepo.AssertNotCalled(t, "Mutate", mock.Anything, mock.Anything)
}

func TestRecoverPasswordReplacesHash(t *testing.T) {
	personRepo := new(MockPersonRepository)
	mailSender := new(MockMailSender)
	service := NewAccountService(personRepo, mailSender)

	oldHash, _ := utils.HashPassword("old-password")
	person := &models.Person{
		ID:           uuid.New(),
		FirstName:    "Ada",
		Email:        "ada@example.com",
		PasswordHash: oldHash,
	}

	mailed := make(chan struct{})
	personRepo.On("FindByEmail", "ada@example.com").Return(person, nil)
	personRepo.On("Mutate", person.ID, mock.Anything).Return(person, nil)
	mailSender.On("Send", "ada@example.com", "Password recovery", mock.AnythingOfType("string")).
		Run(func(mock.Arguments) { close(mailed) }).Return(nil)

	ok, err := service.RecoverPassword("ada@example.com")
	assert.True(t, ok)
	assert.NoError(t, err)
	assert.NotEqual(t, oldHash, person.PasswordHash)

	select {
	case <-mailed:
	case <-time.After(2 * time.Second):
		t.Fatal("recovery mail was never sent")
	}
	mailSender.AssertExpectations(t)
}

func TestSetNewPasswordAnonymous(t *testing.T) {
	personRepo := new(MockPersonRepository)
	mailSender := new(MockMailSender)
	service := NewAccountService(personRepo, mailSender)

	ok, err := service.SetNewPassword(uuid.Nil, "whatever123")
	assert.False(t, ok)
	assert.EqualError(t, err, "person not found")
}

func TestChangeEmailTakenByAnother(t *testing.T) {
	personRepo := new(MockPersonRepository)
	mailSender := new(MockMailSender)
	service := NewAccountService(personRepo, mailSender)

	personID := uuid.New()
	person := &models.Person{ID: personID, Email: "me@example.com"}
	personRepo.On("Mutate", personID, mock.Anything).Return(person, nil)
	personRepo.On("ExistsByEmail", "taken@example.com").Return(true, nil)

	ok, err := service.ChangeEmail(personID, "taken@example.com")
	assert.False(t, ok)
	assert.EqualError(t, err, "user with this email already exists")
	// The rolled-back mutation must not leak into the loaded row's email.
	assert.Equal(t, "me@example.com", person.Email)
}

func TestSetNewPasswordReplacesOnlyTheHash(t *testing.T) {
	personRepo := new(MockPersonRepository)
	mailSender := new(MockMailSender)
	service := NewAccountService(personRepo, mailSender)

	oldHash, _ := utils.HashPassword("old-password")
	person := &models.Person{
		ID:           uuid.New(),
		Email:        "ada@example.com",
		PasswordHash: oldHash,
	}
	personRepo.On("Mutate", person.ID, mock.Anything).Return(person, nil)

	ok, err := service.SetNewPassword(person.ID, "fresh-password")
	assert.True(t, ok)
	assert.NoError(t, err)
	assert.True(t, utils.CheckPassword(person.PasswordHash, "fresh-password"))
	assert.Equal(t, "ada@example.com", person.Email)
}

func TestFindCurrentUserAnonymous(t *testing.T) {
	personRepo := new(MockPersonRepository)
	mailSender := new(MockMailSender)
	service := NewAccountService(personRepo, mailSender)

	person, err := service.FindCurrentUser(uuid.Nil)
	assert.NoError(t, err)
	assert.Nil(t, person)
}

func TestChangeUserLockStatusTogglesAndReports(t *testing.T) {
	personRepo := new(MockPersonRepository)
	mailSender := new(MockMailSender)
	service := NewAccountService(personRepo, mailSender)

	personID := uuid.New()
	personRepo.On("FindByID", personID).Return(&models.Person{ID: personID}, nil)
	personRepo.On("ToggleBlocked", personID).Return(true, nil)

	blocked, err := service.ChangeUserLockStatus(personID)
	assert.NoError(t, err)
	assert.True(t, blocked)
	personRepo.AssertExpectations(t)
}

func TestSearchPersonsAlignsOffsetToPage(t *testing.T) {
	personRepo := new(MockPersonRepository)
	mailSender := new(MockMailSender)
	service := NewAccountService(personRepo, mailSender)

	// offset 25 with limit 10 lands on page 2, i.e. offset 20.
	personRepo.On("Search", mock.Anything, 20, 10).Return([]*models.Person{}, int64(0), nil)

	_, _, err := service.SearchPersons(dto.SearchPersonsRequest{Offset: 25, Limit: 10})
	assert.NoError(t, err)
	personRepo.AssertExpectations(t)
}
