// application/serviceimpl/mocks_test.go
package serviceimpl

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/altsora/SocialNetwork-sub000/domain/dto"
	"github.com/altsora/SocialNetwork-sub000/domain/models"
	"github.com/altsora/SocialNetwork-sub000/domain/repository"
)

// MockPersonRepository is a mock implementation of PersonRepository.
type MockPersonRepository struct {
	mock.Mock
}

func (m *MockPersonRepository) Create(person *models.Person) error {
	args := m.Called(person)
	return args.Error(0)
}

func (m *MockPersonRepository) FindByID(id uuid.UUID) (*models.Person, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Person), args.Error(1)
}

func (m *MockPersonRepository) FindByEmail(email string) (*models.Person, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Person), args.Error(1)
}

func (m *MockPersonRepository) ExistsByEmail(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

// Mutate mirrors the real load-apply-save sequence: the person configured
// via Return stands in for the loaded row and the callback mutates it.
func (m *MockPersonRepository) Mutate(id uuid.UUID, apply func(*models.Person) error) (*models.Person, error) {
	args := m.Called(id, apply)
	if args.Error(1) != nil {
		return nil, args.Error(1)
	}
	person := args.Get(0).(*models.Person)
	if err := apply(person); err != nil {
		return nil, err
	}
	return person, nil
}

func (m *MockPersonRepository) Search(filter repository.PersonSearchFilter, offset, limit int) ([]*models.Person, int64, error) {
	args := m.Called(filter, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.Person), args.Get(1).(int64), args.Error(2)
}

func (m *MockPersonRepository) FindNewest(limit int) ([]*models.Person, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Person), args.Error(1)
}

func (m *MockPersonRepository) FindByIDs(ids []uuid.UUID) ([]*models.Person, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Person), args.Error(1)
}

func (m *MockPersonRepository) UpdateLastOnline(id uuid.UUID, at time.Time, online bool) error {
	args := m.Called(id, at, online)
	return args.Error(0)
}

func (m *MockPersonRepository) FindOnlineIDs() ([]uuid.UUID, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockPersonRepository) MarkOffline(ids []uuid.UUID, at time.Time) error {
	args := m.Called(ids, at)
	return args.Error(0)
}

func (m *MockPersonRepository) ToggleBlocked(id uuid.UUID) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

// MockPostRepository is a mock implementation of PostRepository.
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(post *models.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostRepository) FindByID(id uuid.UUID) (*models.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) Mutate(id uuid.UUID, apply func(*models.Post) error) (*models.Post, error) {
	args := m.Called(id, apply)
	if args.Error(1) != nil {
		return nil, args.Error(1)
	}
	post := args.Get(0).(*models.Post)
	if err := apply(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (m *MockPostRepository) FindByAuthor(authorID uuid.UUID, offset, limit int) ([]*models.Post, int64, error) {
	args := m.Called(authorID, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.Post), args.Get(1).(int64), args.Error(2)
}

func (m *MockPostRepository) FindFeed(offset, limit int) ([]*models.Post, int64, error) {
	args := m.Called(offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.Post), args.Get(1).(int64), args.Error(2)
}

func (m *MockPostRepository) IncrementLikes(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPostRepository) DecrementLikes(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockCommentRepository is a mock implementation of CommentRepository.
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(comment *models.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) FindByID(id uuid.UUID) (*models.Comment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) Update(comment *models.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) SetBlocked(id uuid.UUID, blocked bool) error {
	args := m.Called(id, blocked)
	return args.Error(0)
}

func (m *MockCommentRepository) FindByPost(postID uuid.UUID) ([]*models.Comment, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Comment), args.Error(1)
}

// MockLikeRepository is a mock implementation of LikeRepository.
type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Create(like *models.Like) error {
	args := m.Called(like)
	return args.Error(0)
}

func (m *MockLikeRepository) Find(personID, itemID uuid.UUID, likeType dto.LikeType) (*models.Like, error) {
	args := m.Called(personID, itemID, likeType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Like), args.Error(1)
}

func (m *MockLikeRepository) Delete(personID, itemID uuid.UUID, likeType dto.LikeType) error {
	args := m.Called(personID, itemID, likeType)
	return args.Error(0)
}

func (m *MockLikeRepository) FindUserIDsByItem(itemID uuid.UUID, likeType dto.LikeType) ([]uuid.UUID, error) {
	args := m.Called(itemID, likeType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockLikeRepository) CountByItem(itemID uuid.UUID, likeType dto.LikeType) (int64, error) {
	args := m.Called(itemID, likeType)
	return args.Get(0).(int64), args.Error(1)
}

// MockFriendshipRepository is a mock implementation of FriendshipRepository.
type MockFriendshipRepository struct {
	mock.Mock
}

func (m *MockFriendshipRepository) Create(friendship *models.Friendship) error {
	args := m.Called(friendship)
	return args.Error(0)
}

func (m *MockFriendshipRepository) Update(friendship *models.Friendship) error {
	args := m.Called(friendship)
	return args.Error(0)
}

func (m *MockFriendshipRepository) Delete(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockFriendshipRepository) FindBySrcAndDst(srcID, dstID uuid.UUID) (*models.Friendship, error) {
	args := m.Called(srcID, dstID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Friendship), args.Error(1)
}

func (m *MockFriendshipRepository) DeletePair(aID, bID uuid.UUID) error {
	args := m.Called(aID, bID)
	return args.Error(0)
}

func (m *MockFriendshipRepository) FindPersonIDsBySrcAndStatus(srcID uuid.UUID, status dto.FriendshipStatus) ([]uuid.UUID, error) {
	args := m.Called(srcID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockFriendshipRepository) FindPersonIDsByDstAndStatus(dstID uuid.UUID, status dto.FriendshipStatus) ([]uuid.UUID, error) {
	args := m.Called(dstID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockFriendshipRepository) FindStatuses(srcID uuid.UUID, candidateIDs []uuid.UUID) ([]*models.Friendship, error) {
	args := m.Called(srcID, candidateIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Friendship), args.Error(1)
}

// MockDialogRepository is a mock implementation of DialogRepository.
type MockDialogRepository struct {
	mock.Mock
}

func (m *MockDialogRepository) Create(dialog *models.Dialog) error {
	args := m.Called(dialog)
	return args.Error(0)
}

func (m *MockDialogRepository) FindByID(id uuid.UUID) (*models.Dialog, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Dialog), args.Error(1)
}

func (m *MockDialogRepository) Update(dialog *models.Dialog) error {
	args := m.Called(dialog)
	return args.Error(0)
}

func (m *MockDialogRepository) Exists(id uuid.UUID) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockDialogRepository) FindByPerson(personID uuid.UUID, offset, limit int) ([]*models.Dialog, int64, error) {
	args := m.Called(personID, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.Dialog), args.Get(1).(int64), args.Error(2)
}

func (m *MockDialogRepository) AddMember(member *models.Person2Dialog) error {
	args := m.Called(member)
	return args.Error(0)
}

func (m *MockDialogRepository) MemberExists(personID, dialogID uuid.UUID) (bool, error) {
	args := m.Called(personID, dialogID)
	return args.Bool(0), args.Error(1)
}

func (m *MockDialogRepository) MemberIDs(dialogID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(dialogID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockDialogRepository) IncrementUnread(dialogID uuid.UUID) error {
	args := m.Called(dialogID)
	return args.Error(0)
}

func (m *MockDialogRepository) DecrementUnread(dialogID uuid.UUID) error {
	args := m.Called(dialogID)
	return args.Error(0)
}

func (m *MockDialogRepository) ResetUnread(dialogID uuid.UUID) error {
	args := m.Called(dialogID)
	return args.Error(0)
}

func (m *MockDialogRepository) TotalUnreadByPerson(personID uuid.UUID) (int64, error) {
	args := m.Called(personID)
	return args.Get(0).(int64), args.Error(1)
}

// MockMessageRepository is a mock implementation of MessageRepository.
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Create(message *models.Message) error {
	args := m.Called(message)
	return args.Error(0)
}

func (m *MockMessageRepository) FindByID(id uuid.UUID) (*models.Message, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Message), args.Error(1)
}

func (m *MockMessageRepository) Update(message *models.Message) error {
	args := m.Called(message)
	return args.Error(0)
}

func (m *MockMessageRepository) FindByDialog(dialogID uuid.UUID, offset, limit int) ([]*models.Message, int64, error) {
	args := m.Called(dialogID, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.Message), args.Get(1).(int64), args.Error(2)
}

func (m *MockMessageRepository) MarkRead(dialogID, recipientID uuid.UUID) error {
	args := m.Called(dialogID, recipientID)
	return args.Error(0)
}

// MockNotificationRepository is a mock implementation of NotificationRepository.
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(notification *models.Notification) error {
	args := m.Called(notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) Mutate(id uuid.UUID, apply func(*models.Notification) error) (*models.Notification, error) {
	args := m.Called(id, apply)
	if args.Error(1) != nil {
		return nil, args.Error(1)
	}
	notification := args.Get(0).(*models.Notification)
	if err := apply(notification); err != nil {
		return nil, err
	}
	return notification, nil
}

func (m *MockNotificationRepository) FindUnreadByPerson(personID uuid.UUID, offset, perPage int) ([]*models.Notification, int64, error) {
	args := m.Called(personID, offset, perPage)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.Notification), args.Get(1).(int64), args.Error(2)
}

func (m *MockNotificationRepository) MarkAllRead(personID uuid.UUID) error {
	args := m.Called(personID)
	return args.Error(0)
}

// MockNotificationTypeRepository is a mock implementation of NotificationTypeRepository.
type MockNotificationTypeRepository struct {
	mock.Mock
}

func (m *MockNotificationTypeRepository) Create(nt *models.NotificationType) error {
	args := m.Called(nt)
	return args.Error(0)
}

func (m *MockNotificationTypeRepository) FindByCode(code string) (*models.NotificationType, error) {
	args := m.Called(code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.NotificationType), args.Error(1)
}

func (m *MockNotificationTypeRepository) FindAll() ([]*models.NotificationType, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.NotificationType), args.Error(1)
}

// MockNotificationSettingsRepository is a mock implementation of NotificationSettingsRepository.
type MockNotificationSettingsRepository struct {
	mock.Mock
}

func (m *MockNotificationSettingsRepository) FindByPersonAndType(personID, typeID uuid.UUID) (*models.NotificationSettings, error) {
	args := m.Called(personID, typeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.NotificationSettings), args.Error(1)
}

func (m *MockNotificationSettingsRepository) FindByPerson(personID uuid.UUID) ([]*models.NotificationSettings, error) {
	args := m.Called(personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.NotificationSettings), args.Error(1)
}

func (m *MockNotificationSettingsRepository) Upsert(settings *models.NotificationSettings) error {
	args := m.Called(settings)
	return args.Error(0)
}

// MockTagRepository is a mock implementation of TagRepository.
type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) Create(tag *models.Tag) error {
	args := m.Called(tag)
	return args.Error(0)
}

func (m *MockTagRepository) FindByID(id uuid.UUID) (*models.Tag, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockTagRepository) FindByText(text string) (*models.Tag, error) {
	args := m.Called(text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockTagRepository) Delete(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockTagRepository) List(textFilter string, offset, limit int) ([]*models.Tag, int64, error) {
	args := m.Called(textFilter, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.Tag), args.Get(1).(int64), args.Error(2)
}

func (m *MockTagRepository) AttachToPost(postID, tagID uuid.UUID) error {
	args := m.Called(postID, tagID)
	return args.Error(0)
}

func (m *MockTagRepository) DetachAllFromPost(postID uuid.UUID) error {
	args := m.Called(postID)
	return args.Error(0)
}

func (m *MockTagRepository) FindByPost(postID uuid.UUID) ([]*models.Tag, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Tag), args.Error(1)
}

// MockNotificationService is a mock implementation of NotificationService.
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) GetNotifications(personID uuid.UUID, offset, perPage int) ([]dto.NotificationData, int64, error) {
	args := m.Called(personID, offset, perPage)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]dto.NotificationData), args.Get(1).(int64), args.Error(2)
}

func (m *MockNotificationService) ReadAll(personID uuid.UUID) error {
	args := m.Called(personID)
	return args.Error(0)
}

func (m *MockNotificationService) ReadByID(personID, id uuid.UUID) error {
	args := m.Called(personID, id)
	return args.Error(0)
}

func (m *MockNotificationService) SaveSettings(personID uuid.UUID, typeCode dto.NotificationTypeCode, enable bool) error {
	args := m.Called(personID, typeCode, enable)
	return args.Error(0)
}

func (m *MockNotificationService) GetSettings(personID uuid.UUID) ([]dto.NotificationSettingsData, error) {
	args := m.Called(personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.NotificationSettingsData), args.Error(1)
}

func (m *MockNotificationService) Send(typeCode dto.NotificationTypeCode, toWhomID uuid.UUID, info string) error {
	args := m.Called(typeCode, toWhomID, info)
	return args.Error(0)
}

// MockPresenceService is a mock implementation of PresenceService.
type MockPresenceService struct {
	mock.Mock
}

func (m *MockPresenceService) MarkOnline(ctx context.Context, personID uuid.UUID) error {
	args := m.Called(ctx, personID)
	return args.Error(0)
}

func (m *MockPresenceService) MarkOffline(ctx context.Context, personID uuid.UUID) error {
	args := m.Called(ctx, personID)
	return args.Error(0)
}

func (m *MockPresenceService) IsOnline(ctx context.Context, personID uuid.UUID) (bool, error) {
	args := m.Called(ctx, personID)
	return args.Bool(0), args.Error(1)
}

// MockMailSender is a mock implementation of MailSender.
type MockMailSender struct {
	mock.Mock
}

func (m *MockMailSender) Send(to, subject, body string) error {
	args := m.Called(to, subject, body)
	return args.Error(0)
}

// MockTagService is a mock implementation of TagService.
type MockTagService struct {
	mock.Mock
}

func (m *MockTagService) CreateTag(text string) (*models.Tag, error) {
	args := m.Called(text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockTagService) DeleteTag(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockTagService) ListTags(textFilter string, offset, limit int) ([]*models.Tag, int64, error) {
	args := m.Called(textFilter, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.Tag), args.Get(1).(int64), args.Error(2)
}

func (m *MockTagService) SyncPostTags(postID uuid.UUID, tags []string) error {
	args := m.Called(postID, tags)
	return args.Error(0)
}

func (m *MockTagService) GetPostTags(postID uuid.UUID) ([]string, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockCommentService is a mock implementation of CommentService.
type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) AddComment(postID, authorID uuid.UUID, req dto.AddCommentRequest) (*models.Comment, error) {
	args := m.Called(postID, authorID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentService) EditComment(id uuid.UUID, text string) (*models.Comment, error) {
	args := m.Called(id, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentService) DeleteComment(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockCommentService) GetByPost(postID uuid.UUID) ([]dto.CommentData, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.CommentData), args.Error(1)
}

func (m *MockCommentService) ComplaintComment(postID, commentID uuid.UUID) error {
	args := m.Called(postID, commentID)
	return args.Error(0)
}
