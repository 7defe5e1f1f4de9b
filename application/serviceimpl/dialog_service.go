// application/serviceimpl/dialog_service.go
package serviceimpl

import (
	"context"
	"errors"
	"time"

	"github.com/altsora/SocialNetwork-sub000/domain/dto"
	"github.com/altsora/SocialNetwork-sub000/domain/models"
	"github.com/altsora/SocialNetwork-sub000/domain/repository"
	"github.com/altsora/SocialNetwork-sub000/domain/service"
	"github.com/google/uuid"
)

type dialogService struct {
	dialogRepo          repository.DialogRepository
	messageRepo         repository.MessageRepository
	personRepo          repository.PersonRepository
	notificationService service.NotificationService
	presenceService     service.PresenceService
}

func NewDialogService(
	dialogRepo repository.DialogRepository,
	messageRepo repository.MessageRepository,
	personRepo repository.PersonRepository,
	notificationService service.NotificationService,
	presenceService service.PresenceService,
) service.DialogService {
	return &dialogService{
		dialogRepo:          dialogRepo,
		messageRepo:         messageRepo,
		personRepo:          personRepo,
		notificationService: notificationService,
		presenceService:     presenceService,
	}
}

func (s *dialogService) CreateDialog(ownerID uuid.UUID, memberIDs []uuid.UUID) (*models.Dialog, error) {
	for _, id := range memberIDs {
		if _, err := s.personRepo.FindByID(id); err != nil {
			return nil, errors.New("person not found")
		}
	}

	dialog := &models.Dialog{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		InviteCode: uuid.New().String(),
		CreatedAt:  time.Now(),
	}
	if err := s.dialogRepo.Create(dialog); err != nil {
		return nil, err
	}

	members := append([]uuid.UUID{ownerID}, memberIDs...)
	seen := map[uuid.UUID]bool{}
	for _, id := range members {
		if seen[id] {
			continue
		}
		seen[id] = true
		err := s.dialogRepo.AddMember(&models.Person2Dialog{
			ID:       uuid.New(),
			DialogID: dialog.ID,
			PersonID: id,
		})
		if err != nil {
			return nil, err
		}
	}

	return dialog, nil
}

func (s *dialogService) FindByID(id uuid.UUID) (*models.Dialog, error) {
	dialog, err := s.dialogRepo.FindByID(id)
	if err != nil {
		return nil, errors.New("dialog not found")
	}
	return dialog, nil
}

func (s *dialogService) Exists(id uuid.UUID) (bool, error) {
	return s.dialogRepo.Exists(id)
}

func (s *dialogService) PersonInDialog(personID, dialogID uuid.UUID) (bool, error) {
	return s.dialogRepo.MemberExists(personID, dialogID)
}

func (s *dialogService) GetDialogs(personID uuid.UUID, offset, limit int) ([]dto.DialogData, int64, error) {
	dialogs, total, err := s.dialogRepo.FindByPerson(personID, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	out := make([]dto.DialogData, 0, len(dialogs))
	for _, d := range dialogs {
		memberIDs, err := s.dialogRepo.MemberIDs(d.ID)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, dto.DialogData{
			ID:          d.ID,
			OwnerID:     d.OwnerID,
			UnreadCount: d.UnreadCount,
			InviteCode:  d.InviteCode,
			UserIDs:     memberIDs,
		})
	}
	return out, total, nil
}

func (s *dialogService) SendMessage(dialogID, authorID uuid.UUID, text string) (*dto.MessageFullResponse, error) {
	if _, err := s.dialogRepo.FindByID(dialogID); err != nil {
		return nil, errors.New("dialog not found")
	}

	inDialog, err := s.dialogRepo.MemberExists(authorID, dialogID)
	if err != nil {
		return nil, err
	}
	if !inDialog {
		return nil, errors.New("person is not a member of this dialog")
	}

	recipientID, err := s.otherMember(dialogID, authorID)
	if err != nil {
		return nil, err
	}

	message := &models.Message{
		ID:          uuid.New(),
		DialogID:    dialogID,
		AuthorID:    authorID,
		RecipientID: recipientID,
		Time:        time.Now(),
		MessageText: text,
		ReadStatus:  string(dto.MessageStatusSent),
	}
	if err := s.messageRepo.Create(message); err != nil {
		return nil, err
	}

	if err := s.dialogRepo.IncrementUnread(dialogID); err != nil {
		return nil, err
	}

	if recipientID != nil {
		_ = s.notificationService.Send(dto.NotificationTypeMessage, *recipientID, "New message")
	}

	response := dto.NewMessageFullResponse(message)
	return &response, nil
}

func (s *dialogService) ListMessages(dialogID uuid.UUID, offset, limit int) ([]dto.MessageFullResponse, int64, error) {
	if _, err := s.dialogRepo.FindByID(dialogID); err != nil {
		return nil, 0, errors.New("dialog not found")
	}

	messages, total, err := s.messageRepo.FindByDialog(dialogID, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	out := make([]dto.MessageFullResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, dto.NewMessageFullResponse(m))
	}
	return out, total, nil
}

// RemoveMessage soft-marks the message deleted and echoes its id.
func (s *dialogService) RemoveMessage(messageID uuid.UUID) (uuid.UUID, error) {
	message, err := s.messageRepo.FindByID(messageID)
	if err != nil {
		return uuid.Nil, errors.New("message not found")
	}

	if message.IsDeleted {
		return message.ID, nil
	}

	message.IsDeleted = true
	if err := s.messageRepo.Update(message); err != nil {
		return uuid.Nil, err
	}
	return message.ID, nil
}

func (s *dialogService) EditMessage(messageID uuid.UUID, text string) (*dto.MessageFullResponse, error) {
	message, err := s.messageRepo.FindByID(messageID)
	if err != nil {
		return nil, errors.New("message not found")
	}
	if message.IsDeleted {
		return nil, errors.New("message not found")
	}

	message.MessageText = text
	if err := s.messageRepo.Update(message); err != nil {
		return nil, err
	}

	response := dto.NewMessageFullResponse(message)
	return &response, nil
}

func (s *dialogService) MarkDialogRead(dialogID, personID uuid.UUID) error {
	if _, err := s.dialogRepo.FindByID(dialogID); err != nil {
		return errors.New("dialog not found")
	}

	if err := s.messageRepo.MarkRead(dialogID, personID); err != nil {
		return err
	}
	return s.dialogRepo.ResetUnread(dialogID)
}

// DecreaseUnreadCount decrements the dialog counter; the repository floors
// it at zero.
func (s *dialogService) DecreaseUnreadCount(dialogID uuid.UUID) error {
	exists, err := s.dialogRepo.Exists(dialogID)
	if err != nil {
		return err
	}
	if !exists {
		return errors.New("dialog not found")
	}
	return s.dialogRepo.DecrementUnread(dialogID)
}

func (s *dialogService) UnreadTotal(personID uuid.UUID) (int64, error) {
	return s.dialogRepo.TotalUnreadByPerson(personID)
}

// GetActivity reports presence of the other dialog participant: the online
// flag comes from the presence store, last activity from the persons table.
func (s *dialogService) GetActivity(ctx context.Context, personID, dialogID uuid.UUID) (*dto.ActivityData, error) {
	inDialog, err := s.dialogRepo.MemberExists(personID, dialogID)
	if err != nil {
		return nil, err
	}
	if !inDialog {
		return nil, errors.New("person is not a member of this dialog")
	}

	otherID, err := s.otherMember(dialogID, personID)
	if err != nil {
		return nil, err
	}
	if otherID == nil {
		return &dto.ActivityData{}, nil
	}

	other, err := s.personRepo.FindByID(*otherID)
	if err != nil {
		return nil, errors.New("person not found")
	}

	online, err := s.presenceService.IsOnline(ctx, *otherID)
	if err != nil {
		// The presence store is advisory; fall back to the persisted flag.
		online = other.IsOnline
	}

	return &dto.ActivityData{
		Online:       online,
		LastActivity: other.LastOnlineTime,
	}, nil
}

func (s *dialogService) otherMember(dialogID, personID uuid.UUID) (*uuid.UUID, error) {
	memberIDs, err := s.dialogRepo.MemberIDs(dialogID)
	if err != nil {
		return nil, err
	}
	for _, id := range memberIDs {
		if id != personID {
			other := id
			return &other, nil
		}
	}
	return nil, nil
}
