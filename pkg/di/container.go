// pkg/di/container.go
package di

import (
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/altsora/SocialNetwork-sub000/application/serviceimpl"
	"github.com/altsora/SocialNetwork-sub000/domain/repository"
	"github.com/altsora/SocialNetwork-sub000/domain/service"
	"github.com/altsora/SocialNetwork-sub000/infrastructure/persistence/postgres"
	"github.com/altsora/SocialNetwork-sub000/interfaces/api/handler"
	"github.com/altsora/SocialNetwork-sub000/pkg/scheduler"
)

// Container holds every dependency of the application.
type Container struct {
	// Repositories
	PersonRepo               repository.PersonRepository
	PostRepo                 repository.PostRepository
	CommentRepo              repository.CommentRepository
	LikeRepo                 repository.LikeRepository
	FriendshipRepo           repository.FriendshipRepository
	DialogRepo               repository.DialogRepository
	MessageRepo              repository.MessageRepository
	NotificationRepo         repository.NotificationRepository
	NotificationTypeRepo     repository.NotificationTypeRepository
	NotificationSettingsRepo repository.NotificationSettingsRepository
	TagRepo                  repository.TagRepository
	FileUploadRepo           repository.FileUploadRepository

	// Services
	FileStorageService  service.FileStorageService
	MailSender          service.MailSender
	PresenceService     service.PresenceService
	NotificationService service.NotificationService
	AuthService         service.AuthService
	AccountService      service.AccountService
	TagService          service.TagService
	CommentService      service.CommentService
	PostService         service.PostService
	LikeService         service.LikeService
	FriendshipService   service.FriendshipService
	DialogService       service.DialogService
	StorageService      service.StorageService

	// Handlers
	AuthHandler         *handler.AuthHandler
	AccountHandler      *handler.AccountHandler
	PostHandler         *handler.PostHandler
	CommentHandler      *handler.CommentHandler
	LikeHandler         *handler.LikeHandler
	FriendshipHandler   *handler.FriendshipHandler
	DialogHandler       *handler.DialogHandler
	NotificationHandler *handler.NotificationHandler
	StorageHandler      *handler.StorageHandler
	TagHandler          *handler.TagHandler

	// Background jobs
	RedisClient     *redis.Client
	PresenceSweeper *scheduler.PresenceSweeper
}

// NewContainer wires repositories, services and handlers together.
func NewContainer(
	db *gorm.DB,
	fileStorage service.FileStorageService,
	mailSender service.MailSender,
	redisClient *redis.Client,
) (*Container, error) {
	container := &Container{
		FileStorageService: fileStorage,
		MailSender:         mailSender,
		RedisClient:        redisClient,
	}

	// Repositories
	container.PersonRepo = postgres.NewPersonRepository(db)
	container.PostRepo = postgres.NewPostRepository(db)
	container.CommentRepo = postgres.NewCommentRepository(db)
	container.LikeRepo = postgres.NewLikeRepository(db)
	container.FriendshipRepo = postgres.NewFriendshipRepository(db)
	container.DialogRepo = postgres.NewDialogRepository(db)
	container.MessageRepo = postgres.NewMessageRepository(db)
	container.NotificationRepo = postgres.NewNotificationRepository(db)
	container.NotificationTypeRepo = postgres.NewNotificationTypeRepository(db)
	container.NotificationSettingsRepo = postgres.NewNotificationSettingsRepository(db)
	container.TagRepo = postgres.NewTagRepository(db)
	container.FileUploadRepo = postgres.NewFileUploadRepository(db)

	// Services
	container.PresenceService = serviceimpl.NewPresenceService(redisClient)
	container.NotificationService = serviceimpl.NewNotificationService(
		container.NotificationRepo,
		container.NotificationTypeRepo,
		container.NotificationSettingsRepo,
	)

	container.AuthService = serviceimpl.NewAuthService(
		container.PersonRepo,
		container.PresenceService,
	)
	container.AccountService = serviceimpl.NewAccountService(
		container.PersonRepo,
		container.MailSender,
	)

	container.TagService = serviceimpl.NewTagService(container.TagRepo)
	container.CommentService = serviceimpl.NewCommentService(
		container.CommentRepo,
		container.PostRepo,
		container.NotificationService,
	)
	container.PostService = serviceimpl.NewPostService(
		container.PostRepo,
		container.PersonRepo,
		container.CommentService,
		container.TagService,
	)
	container.LikeService = serviceimpl.NewLikeService(
		container.LikeRepo,
		container.PostRepo,
		container.NotificationService,
	)

	container.FriendshipService = serviceimpl.NewFriendshipService(
		container.FriendshipRepo,
		container.PersonRepo,
		container.NotificationService,
	)
	container.DialogService = serviceimpl.NewDialogService(
		container.DialogRepo,
		container.MessageRepo,
		container.PersonRepo,
		container.NotificationService,
		container.PresenceService,
	)
	container.StorageService = serviceimpl.NewStorageService(
		container.FileStorageService,
		container.FileUploadRepo,
	)

	// Handlers
	container.AuthHandler = handler.NewAuthHandler(container.AuthService)
	container.AccountHandler = handler.NewAccountHandler(container.AccountService)
	container.PostHandler = handler.NewPostHandler(container.PostService)
	container.CommentHandler = handler.NewCommentHandler(container.CommentService)
	container.LikeHandler = handler.NewLikeHandler(container.LikeService)
	container.FriendshipHandler = handler.NewFriendshipHandler(container.FriendshipService)
	container.DialogHandler = handler.NewDialogHandler(container.DialogService)
	container.NotificationHandler = handler.NewNotificationHandler(container.NotificationService)
	container.StorageHandler = handler.NewStorageHandler(container.StorageService)
	container.TagHandler = handler.NewTagHandler(container.TagService)

	// Background jobs
	container.PresenceSweeper = scheduler.NewPresenceSweeper(
		container.PersonRepo,
		container.PresenceService,
	)

	return container, nil
}
