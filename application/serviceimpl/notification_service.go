// application/serviceimpl/notification_service.go
package serviceimpl

import (
	"errors"
	"sync"
	"time"

	"github.com/altsora/SocialNetwork-sub000/domain/dto"
	"github.com/altsora/SocialNetwork-sub000/domain/models"
	"github.com/altsora/SocialNetwork-sub000/domain/repository"
	"github.com/altsora/SocialNetwork-sub000/domain/service"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// typeCache is a read-through cache over the notification_types reference
// table. Values are immutable once seeded, so concurrent last-write-wins
// population is harmless.
type typeCache struct {
	mu     sync.RWMutex
	byCode map[dto.NotificationTypeCode]*models.NotificationType
	byID   map[uuid.UUID]*models.NotificationType
}

func newTypeCache() *typeCache {
	return &typeCache{
		byCode: make(map[dto.NotificationTypeCode]*models.NotificationType),
		byID:   make(map[uuid.UUID]*models.NotificationType),
	}
}

func (c *typeCache) getByCode(code dto.NotificationTypeCode) (*models.NotificationType, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	nt, ok := c.byCode[code]
	return nt, ok
}

func (c *typeCache) getByID(id uuid.UUID) (*models.NotificationType, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	nt, ok := c.byID[id]
	return nt, ok
}

func (c *typeCache) put(nt *models.NotificationType) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byCode[dto.NotificationTypeCode(nt.Code)] = nt
	c.byID[nt.ID] = nt
}

type notificationService struct {
	notificationRepo repository.NotificationRepository
	typeRepo         repository.NotificationTypeRepository
	settingsRepo     repository.NotificationSettingsRepository
	cache            *typeCache
}

func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	typeRepo repository.NotificationTypeRepository,
	settingsRepo repository.NotificationSettingsRepository,
) service.NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		typeRepo:         typeRepo,
		settingsRepo:     settingsRepo,
		cache:            newTypeCache(),
	}
}

func (s *notificationService) GetNotifications(personID uuid.UUID, offset, perPage int) ([]dto.NotificationData, int64, error) {
	if perPage <= 0 {
		perPage = 10
	}
	if offset < 0 {
		offset = 0
	}

	notifications, total, err := s.notificationRepo.FindUnreadByPerson(personID, offset, perPage)
	if err != nil {
		return nil, 0, err
	}

	out := make([]dto.NotificationData, 0, len(notifications))
	for _, n := range notifications {
		code := dto.NotificationTypeCode("")
		if nt, err := s.typeByID(n.TypeID); err == nil {
			code = dto.NotificationTypeCode(nt.Code)
		}
		out = append(out, dto.NotificationData{
			ID:       n.ID,
			Type:     code,
			SentTime: n.SentTime,
			Info:     n.Info,
		})
	}
	return out, total, nil
}

func (s *notificationService) ReadAll(personID uuid.UUID) error {
	return s.notificationRepo.MarkAllRead(personID)
}

func (s *notificationService) ReadByID(personID, id uuid.UUID) error {
	_, err := s.notificationRepo.Mutate(id, func(n *models.Notification) error {
		if n.ToWhomID != personID {
			return errors.New("notification not found")
		}
		if n.IsRead {
			return errors.New("notification already read")
		}
		n.IsRead = true
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.New("notification not found")
	}
	return err
}

func (s *notificationService) SaveSettings(personID uuid.UUID, typeCode dto.NotificationTypeCode, enable bool) error {
	nt, err := s.typeByCode(typeCode)
	if err != nil {
		return errors.New("notification type not found")
	}

	return s.settingsRepo.Upsert(&models.NotificationSettings{
		ID:       uuid.New(),
		PersonID: personID,
		TypeID:   nt.ID,
		Enabled:  enable,
	})
}

func (s *notificationService) GetSettings(personID uuid.UUID) ([]dto.NotificationSettingsData, error) {
	stored, err := s.settingsRepo.FindByPerson(personID)
	if err != nil {
		return nil, err
	}

	enabled := make(map[uuid.UUID]bool, len(stored))
	for _, row := range stored {
		enabled[row.TypeID] = row.Enabled
	}

	// Types without a stored row report their default: enabled.
	out := make([]dto.NotificationSettingsData, 0, len(dto.KnownNotificationTypes))
	for code := range dto.KnownNotificationTypes {
		nt, err := s.typeByCode(code)
		if err != nil {
			continue
		}
		flag, ok := enabled[nt.ID]
		if !ok {
			flag = true
		}
		out = append(out, dto.NotificationSettingsData{Type: code, Enabled: flag})
	}
	return out, nil
}

// Send drops the notification silently when the recipient disabled the type.
func (s *notificationService) Send(typeCode dto.NotificationTypeCode, toWhomID uuid.UUID, info string) error {
	nt, err := s.typeByCode(typeCode)
	if err != nil {
		return errors.New("notification type not found")
	}

	settings, err := s.settingsRepo.FindByPersonAndType(toWhomID, nt.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if settings != nil && !settings.Enabled {
		return nil
	}

	return s.notificationRepo.Create(&models.Notification{
		ID:       uuid.New(),
		TypeID:   nt.ID,
		ToWhomID: toWhomID,
		SentTime: time.Now(),
		Info:     info,
	})
}

func (s *notificationService) typeByCode(code dto.NotificationTypeCode) (*models.NotificationType, error) {
	if nt, ok := s.cache.getByCode(code); ok {
		return nt, nil
	}

	nt, err := s.typeRepo.FindByCode(string(code))
	if err != nil {
		return nil, err
	}
	s.cache.put(nt)
	return nt, nil
}

func (s *notificationService) typeByID(id uuid.UUID) (*models.NotificationType, error) {
	if nt, ok := s.cache.getByID(id); ok {
		return nt, nil
	}

	types, err := s.typeRepo.FindAll()
	if err != nil {
		return nil, err
	}
	for _, nt := range types {
		s.cache.put(nt)
	}

	if nt, ok := s.cache.getByID(id); ok {
		return nt, nil
	}
	return nil, errors.New("notification type not found")
}
