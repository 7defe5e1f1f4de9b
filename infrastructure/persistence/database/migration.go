// database/migration.go
package database

import (
	"github.com/altsora/SocialNetwork-sub000/domain/dto"
	"github.com/altsora/SocialNetwork-sub000/domain/models"
	"github.com/altsora/SocialNetwork-sub000/pkg/logger"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RunMigration migrates every model. Order matters: base tables first, then
// tables carrying foreign keys into them.
func RunMigration(db *gorm.DB) error {
	logger.Log.Info("running auto migration")

	err := db.AutoMigrate(
		// Base tables
		&models.Person{},
		&models.NotificationType{},
		&models.Tag{},

		// FK into base tables
		&models.Post{},
		&models.Friendship{},
		&models.Dialog{},
		&models.Notification{},
		&models.NotificationSettings{},
		&models.FileUpload{},

		// FK into dependent tables
		&models.Comment{},
		&models.Message{},
		&models.Person2Dialog{},
		&models.Post2Tag{},
	)
	if err != nil {
		return err
	}

	return nil
}

// CreateIndices adds the lookup indices the repositories rely on.
func CreateIndices(db *gorm.DB) error {
	statements := []string{
		"CREATE INDEX IF NOT EXISTS idx_posts_author_time ON posts(author_id, time DESC)",
		"CREATE INDEX IF NOT EXISTS idx_post_comments_post_id ON post_comments(post_id)",
		"CREATE INDEX IF NOT EXISTS idx_post_comments_parent_id ON post_comments(parent_id)",
		"CREATE INDEX IF NOT EXISTS idx_likes_item ON likes(item_id, type)",
		"CREATE INDEX IF NOT EXISTS idx_friendships_src ON friendships(src_person_id, status)",
		"CREATE INDEX IF NOT EXISTS idx_friendships_dst ON friendships(dst_person_id, status)",
		"CREATE INDEX IF NOT EXISTS idx_messages_dialog_time ON messages(dialog_id, time)",
		"CREATE INDEX IF NOT EXISTS idx_messages_recipient_status ON messages(recipient_id, read_status)",
		"CREATE INDEX IF NOT EXISTS idx_notifications_to_whom ON notifications(to_whom_id, is_read, sent_time DESC)",
		"CREATE INDEX IF NOT EXISTS idx_persons_dialogs_person ON persons_dialogs(person_id)",
	}

	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}

	return nil
}

// SeedNotificationTypes inserts the reference rows for every known
// notification type code. Safe to run on every start.
func SeedNotificationTypes(db *gorm.DB) error {
	for code, name := range dto.KnownNotificationTypes {
		nt := &models.NotificationType{
			ID:   uuid.New(),
			Code: string(code),
			Name: name,
		}
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			DoNothing: true,
		}).Create(nt).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// SetupDatabase runs the full schema setup.
func SetupDatabase(db *gorm.DB) error {
	if err := RunMigration(db); err != nil {
		return err
	}
	if err := CreateIndices(db); err != nil {
		return err
	}
	return SeedNotificationTypes(db)
}
