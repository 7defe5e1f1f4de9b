// domain/repository/friendship_repository.go
package repository

import (
	"github.com/altsora/SocialNetwork-sub000/domain/dto"
	"github.com/altsora/SocialNetwork-sub000/domain/models"
	"github.com/google/uuid"
)

type FriendshipRepository interface {
	Create(friendship *models.Friendship) error
	Update(friendship *models.Friendship) error
	Delete(id uuid.UUID) error

	// FindBySrcAndDst returns the edge pointing from src to dst, any status.
	FindBySrcAndDst(srcID, dstID uuid.UUID) (*models.Friendship, error)
	// DeletePair removes both directions of the edge between two persons.
	DeletePair(aID, bID uuid.UUID) error

	// FindPersonIDsBySrcAndStatus returns the dst ids of the src person's
	// edges carrying the given status.
	FindPersonIDsBySrcAndStatus(srcID uuid.UUID, status dto.FriendshipStatus) ([]uuid.UUID, error)
	// FindPersonIDsByDstAndStatus returns the src ids of edges targeting the
	// dst person with the given status (incoming requests).
	FindPersonIDsByDstAndStatus(dstID uuid.UUID, status dto.FriendshipStatus) ([]uuid.UUID, error)
	// FindStatuses returns the edges from srcID towards any of the candidates.
	FindStatuses(srcID uuid.UUID, candidateIDs []uuid.UUID) ([]*models.Friendship, error)
}
