// domain/dto/tag_dto.go
package dto

import "github.com/google/uuid"

// CreateTagRequest creates a free-standing tag.
type CreateTagRequest struct {
	Tag string `json:"tag" validate:"required"`
}

// TagData is one tag row.
type TagData struct {
	ID  uuid.UUID `json:"id"`
	Tag string    `json:"tag"`
}
