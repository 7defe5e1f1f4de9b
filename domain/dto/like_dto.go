// domain/dto/like_dto.go
package dto

import "github.com/google/uuid"

// LikeType discriminates a like on a post from a like on a comment.
type LikeType string

const (
	LikeTypePost    LikeType = "POST"
	LikeTypeComment LikeType = "COMMENT"
)

// Valid reports whether t is one of the known like types.
func (t LikeType) Valid() bool {
	return t == LikeTypePost || t == LikeTypeComment
}

// PutLikeRequest creates or removes a like on an item.
type PutLikeRequest struct {
	ItemID uuid.UUID `json:"item_id" validate:"required"`
	Type   LikeType  `json:"type" validate:"required"`
}

// LikeData is the likes summary for one item.
type LikeData struct {
	Likes int         `json:"likes"`
	Users []uuid.UUID `json:"users"`
}
