// domain/dto/notification_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

// NotificationTypeCode is the stable code of a notification type.
type NotificationTypeCode string

const (
	NotificationTypePost           NotificationTypeCode = "POST"
	NotificationTypePostComment    NotificationTypeCode = "POST_COMMENT"
	NotificationTypeCommentComment NotificationTypeCode = "COMMENT_COMMENT"
	NotificationTypeFriendRequest  NotificationTypeCode = "FRIEND_REQUEST"
	NotificationTypeMessage        NotificationTypeCode = "MESSAGE"
	NotificationTypeLike           NotificationTypeCode = "LIKE"
)

// KnownNotificationTypes lists every seeded type code with its display name.
var KnownNotificationTypes = map[NotificationTypeCode]string{
	NotificationTypePost:           "New post",
	NotificationTypePostComment:    "Comment on your post",
	NotificationTypeCommentComment: "Reply to your comment",
	NotificationTypeFriendRequest:  "Friend request",
	NotificationTypeMessage:        "New message",
	NotificationTypeLike:           "New like",
}

// NotificationSettingsRequest toggles one notification type for the current
// person.
type NotificationSettingsRequest struct {
	Type   NotificationTypeCode `json:"notification_type" validate:"required"`
	Enable bool                 `json:"enable"`
}

// NotificationData is one unread notification row.
type NotificationData struct {
	ID       uuid.UUID            `json:"id"`
	Type     NotificationTypeCode `json:"event_type"`
	SentTime time.Time            `json:"sent_time"`
	Info     string               `json:"info"`
}

// NotificationSettingsData is one per-type enable flag of the current person.
type NotificationSettingsData struct {
	Type    NotificationTypeCode `json:"notification_type"`
	Enabled bool                 `json:"enable"`
}
