// domain/dto/dialog_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

// MessageStatus is the read state of a message.
type MessageStatus string

const (
	MessageStatusSent MessageStatus = "SENT"
	MessageStatusRead MessageStatus = "READ"
)

// ============ Request DTOs ============

// CreateDialogRequest opens a dialog with the listed members.
type CreateDialogRequest struct {
	UserIDs []uuid.UUID `json:"user_ids" validate:"required,min=1"`
}

// SendMessageRequest posts a message into a dialog.
type SendMessageRequest struct {
	MessageText string `json:"message_text" validate:"required"`
}

// EditMessageRequest replaces the text of a message.
type EditMessageRequest struct {
	MessageText string `json:"message_text" validate:"required"`
}

// ============ Response Data DTOs ============

// DialogData is a dialog row with its unread counter.
type DialogData struct {
	ID          uuid.UUID   `json:"id"`
	OwnerID     uuid.UUID   `json:"owner_id"`
	UnreadCount int         `json:"unread_count"`
	InviteCode  string      `json:"invite_code,omitempty"`
	UserIDs     []uuid.UUID `json:"user_ids"`
}

// MessageFullResponse is the full message projection returned by the message
// endpoints.
type MessageFullResponse struct {
	ID          uuid.UUID     `json:"id"`
	DialogID    uuid.UUID     `json:"dialog_id"`
	AuthorID    uuid.UUID     `json:"author_id"`
	RecipientID *uuid.UUID    `json:"recipient_id,omitempty"`
	Time        time.Time     `json:"time"`
	MessageText string        `json:"message_text"`
	ReadStatus  MessageStatus `json:"read_status"`
	IsDeleted   bool          `json:"is_deleted"`
}

// ActivityData reports the presence of a dialog partner.
type ActivityData struct {
	Online       bool       `json:"online"`
	LastActivity *time.Time `json:"last_activity,omitempty"`
}

// UnreadedData is the total unread message count of the current person.
type UnreadedData struct {
	Count int64 `json:"count"`
}
