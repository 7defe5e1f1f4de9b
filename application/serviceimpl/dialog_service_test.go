// application/serviceimpl/dialog_service_test.go
package serviceimpl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/altsora/SocialNetwork-sub000/domain/dto"
	"github.com/altsora/SocialNetwork-sub000/domain/models"
)

func newDialogFixture() (*MockDialogRepository, *MockMessageRepository, *MockPersonRepository, *MockNotificationService, *MockPresenceService, *dialogService) {
	dialogRepo := new(MockDialogRepository)
	messageRepo := new(MockMessageRepository)
	personRepo := new(MockPersonRepository)
	notifications := new(MockNotificationService)
	presence := new(MockPresenceService)
	service := NewDialogService(dialogRepo, messageRepo, personRepo, notifications, presence).(*dialogService)
	return dialogRepo, messageRepo, personRepo, notifications, presence, service
}

func TestCreateDialogDeduplicatesMembers(t *testing.T) {
	dialogRepo, _, personRepo, _, _, service := newDialogFixture()

	ownerID := uuid.New()
	otherID := uuid.New()

	personRepo.On("FindByID", otherID).Return(&models.Person{ID: otherID}, nil)
	dialogRepo.On("Create", mock.AnythingOfType("*models.Dialog")).Return(nil)
	dialogRepo.On("AddMember", mock.AnythingOfType("*models.Person2Dialog")).Return(nil)

	// The owner appears both implicitly and in the member list.
	dialog, err := service.CreateDialog(ownerID, []uuid.UUID{otherID, ownerID})
	assert.NoError(t, err)
	assert.NotEmpty(t, dialog.InviteCode)
	dialogRepo.AssertNumberOfCalls(t, "AddMember", 2)
}

func TestSendMessageRejectsNonMember(t *testing.T) {
	dialogRepo, messageRepo, _, _, _, service := newDialogFixture()

	dialogID := uuid.New()
	outsiderID := uuid.New()

	dialogRepo.On("FindByID", dialogID).Return(&models.Dialog{ID: dialogID}, nil)
	dialogRepo.On("MemberExists", outsiderID, dialogID).Return(false, nil)

	_, err := service.SendMessage(dialogID, outsiderID, "hello")
	assert.EqualError(t, err, "person is not a member of this dialog")
	messageRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestSendMessageIncrementsUnreadAndNotifies(t *testing.T) {
	dialogRepo, messageRepo, _, notifications, _, service := newDialogFixture()

	dialogID := uuid.New()
	authorID := uuid.New()
	recipientID := uuid.New()

	dialogRepo.On("FindByID", dialogID).Return(&models.Dialog{ID: dialogID}, nil)
	dialogRepo.On("MemberExists", authorID, dialogID).Return(true, nil)
	dialogRepo.On("MemberIDs", dialogID).Return([]uuid.UUID{authorID, recipientID}, nil)
	messageRepo.On("Create", mock.AnythingOfType("*models.Message")).Return(nil)
	dialogRepo.On("IncrementUnread", dialogID).Return(nil)
	notifications.On("Send", dto.NotificationTypeMessage, recipientID, mock.AnythingOfType("string")).Return(nil)

	msg, err := service.SendMessage(dialogID, authorID, "hello")
	assert.NoError(t, err)
	assert.Equal(t, dto.MessageStatusSent, msg.ReadStatus)
	assert.Equal(t, recipientID, *msg.RecipientID)
	dialogRepo.AssertExpectations(t)
	notifications.AssertExpectations(t)
}

func TestRemoveMessageIsSoftAndEchoesID(t *testing.T) {
	_, messageRepo, _, _, _, service := newDialogFixture()

	message := &models.Message{ID: uuid.New(), MessageText: "bye"}
	messageRepo.On("FindByID", message.ID).Return(message, nil)
	messageRepo.On("Update", message).Return(nil)

	id, err := service.RemoveMessage(message.ID)
	assert.NoError(t, err)
	assert.Equal(t, message.ID, id)
	assert.True(t, message.IsDeleted)
}

func TestEditMessageRejectsDeleted(t *testing.T) {
	_, messageRepo, _, _, _, service := newDialogFixture()

	message := &models.Message{ID: uuid.New(), IsDeleted: true}
	messageRepo.On("FindByID", message.ID).Return(message, nil)

	_, err := service.EditMessage(message.ID, "new text")
	assert.EqualError(t, err, "message not found")
	messageRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestMarkDialogReadResetsCounter(t *testing.T) {
	dialogRepo, messageRepo, _, _, _, service := newDialogFixture()

	dialogID := uuid.New()
	personID := uuid.New()

	dialogRepo.On("FindByID", dialogID).Return(&models.Dialog{ID: dialogID}, nil)
	messageRepo.On("MarkRead", dialogID, personID).Return(nil)
	dialogRepo.On("ResetUnread", dialogID).Return(nil)

	assert.NoError(t, service.MarkDialogRead(dialogID, personID))
	dialogRepo.AssertExpectations(t)
	messageRepo.AssertExpectations(t)
}

func TestDecreaseUnreadCountUnknownDialog(t *testing.T) {
	dialogRepo, _, _, _, _, service := newDialogFixture()

	dialogID := uuid.New()
	dialogRepo.On("Exists", dialogID).Return(false, nil)

	err := service.DecreaseUnreadCount(dialogID)
	assert.EqualError(t, err, "dialog not found")
	dialogRepo.AssertNotCalled(t, "DecrementUnread", mock.Anything)
}

func TestGetActivityFallsBackToPersistedFlag(t *testing.T) {
	dialogRepo, _, personRepo, _, presence, service := newDialogFixture()

	dialogID := uuid.New()
	personID := uuid.New()
	otherID := uuid.New()
	lastSeen := time.Now().Add(-time.Hour)

	dialogRepo.On("MemberExists", personID, dialogID).Return(true, nil)
	dialogRepo.On("MemberIDs", dialogID).Return([]uuid.UUID{personID, otherID}, nil)
	personRepo.On("FindByID", otherID).Return(&models.Person{
		ID:             otherID,
		IsOnline:       true,
		LastOnlineTime: &lastSeen,
	}, nil)
	presence.On("IsOnline", mock.Anything, otherID).Return(false, errors.New("redis down"))

	activity, err := service.GetActivity(context.Background(), personID, dialogID)
	assert.NoError(t, err)
	assert.True(t, activity.Online)
	assert.Equal(t, &lastSeen, activity.LastActivity)
}
