// domain/service/friendship_service.go
package service

import (
	"github.com/altsora/SocialNetwork-sub000/domain/dto"
	"github.com/altsora/SocialNetwork-sub000/domain/models"
	"github.com/google/uuid"
)

type FriendshipService interface {
	GetFriendList(personID uuid.UUID, nameFilter string, offset, limit int) ([]*models.Person, int64, error)
	GetFriendRequestList(personID uuid.UUID, nameFilter string, offset, limit int) ([]*models.Person, int64, error)
	GetFriendRecommendationList(personID uuid.UUID, offset, limit int) ([]*models.Person, int64, error)

	// AddFriend returns false when friendID does not exist. A reverse
	// pending request is promoted to a mutual FRIEND pair.
	AddFriend(personID, friendID uuid.UUID) (bool, error)
	// DeleteFriend returns false when no FRIEND edge exists. The edge source
	// drops both rows; the other side is downgraded to SUBSCRIBED.
	DeleteFriend(personID, friendID uuid.UUID) (bool, error)
	IsFriend(personID uuid.UUID, candidateIDs []uuid.UUID) ([]dto.FriendStatusData, error)

	BlockPerson(personID, targetID uuid.UUID) error
	UnblockPerson(personID, targetID uuid.UUID) error
}
