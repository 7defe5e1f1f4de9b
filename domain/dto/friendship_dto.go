// domain/dto/friendship_dto.go
package dto

import "github.com/google/uuid"

// FriendshipStatus is the relationship state carried on a friendship edge.
type FriendshipStatus string

const (
	FriendshipStatusFriend     FriendshipStatus = "FRIEND"
	FriendshipStatusRequest    FriendshipStatus = "REQUEST"
	FriendshipStatusBlocked    FriendshipStatus = "BLOCKED"
	FriendshipStatusDeclined   FriendshipStatus = "DECLINED"
	FriendshipStatusSubscribed FriendshipStatus = "SUBSCRIBED"
)

// IsFriendsRequest asks which of the candidate persons are friends of the
// current person.
type IsFriendsRequest struct {
	UserIDs []uuid.UUID `json:"user_ids" validate:"required"`
}

// FriendStatusData is one entry of the is/friends intersection result.
type FriendStatusData struct {
	ID     uuid.UUID        `json:"user_id"`
	Status FriendshipStatus `json:"status"`
}
