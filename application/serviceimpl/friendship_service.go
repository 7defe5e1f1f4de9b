// application/serviceimpl/friendship_service.go
package serviceimpl

import (
	"errors"
	"strings"
	"time"

	"github.com/altsora/SocialNetwork-sub000/domain/dto"
	"github.com/altsora/SocialNetwork-sub000/domain/models"
	"github.com/altsora/SocialNetwork-sub000/domain/repository"
	"github.com/altsora/SocialNetwork-sub000/domain/service"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type friendshipService struct {
	friendshipRepo      repository.FriendshipRepository
	personRepo          repository.PersonRepository
	notificationService service.NotificationService
}

func NewFriendshipService(
	friendshipRepo repository.FriendshipRepository,
	personRepo repository.PersonRepository,
	notificationService service.NotificationService,
) service.FriendshipService {
	return &friendshipService{
		friendshipRepo:      friendshipRepo,
		personRepo:          personRepo,
		notificationService: notificationService,
	}
}

func (s *friendshipService) GetFriendList(personID uuid.UUID, nameFilter string, offset, limit int) ([]*models.Person, int64, error) {
	ids, err := s.friendshipRepo.FindPersonIDsBySrcAndStatus(personID, dto.FriendshipStatusFriend)
	if err != nil {
		return nil, 0, err
	}
	return s.loadFilteredPage(ids, nameFilter, offset, limit)
}

func (s *friendshipService) GetFriendRequestList(personID uuid.UUID, nameFilter string, offset, limit int) ([]*models.Person, int64, error) {
	ids, err := s.friendshipRepo.FindPersonIDsByDstAndStatus(personID, dto.FriendshipStatusRequest)
	if err != nil {
		return nil, 0, err
	}
	return s.loadFilteredPage(ids, nameFilter, offset, limit)
}

// GetFriendRecommendationList suggests friends of friends; when the circle
// is too small the newest registrations fill the page.
func (s *friendshipService) GetFriendRecommendationList(personID uuid.UUID, offset, limit int) ([]*models.Person, int64, error) {
	friendIDs, err := s.friendshipRepo.FindPersonIDsBySrcAndStatus(personID, dto.FriendshipStatusFriend)
	if err != nil {
		return nil, 0, err
	}

	known := map[uuid.UUID]bool{personID: true}
	for _, id := range friendIDs {
		known[id] = true
	}

	var candidateIDs []uuid.UUID
	seen := map[uuid.UUID]bool{}
	for _, friendID := range friendIDs {
		secondIDs, err := s.friendshipRepo.FindPersonIDsBySrcAndStatus(friendID, dto.FriendshipStatusFriend)
		if err != nil {
			return nil, 0, err
		}
		for _, id := range secondIDs {
			if !known[id] && !seen[id] {
				seen[id] = true
				candidateIDs = append(candidateIDs, id)
			}
		}
	}

	if len(candidateIDs) == 0 {
		newest, err := s.personRepo.FindNewest(limit + offset + 1)
		if err != nil {
			return nil, 0, err
		}
		for _, p := range newest {
			if !known[p.ID] {
				candidateIDs = append(candidateIDs, p.ID)
			}
		}
	}

	return s.loadFilteredPage(candidateIDs, "", offset, limit)
}

// AddFriend creates a REQUEST edge, or promotes both directions to FRIEND
// when the reverse request is already pending.
func (s *friendshipService) AddFriend(personID, friendID uuid.UUID) (bool, error) {
	if personID == friendID {
		return false, errors.New("cannot add yourself as a friend")
	}
	if _, err := s.personRepo.FindByID(friendID); err != nil {
		return false, errors.New("person not found")
	}

	reverse, err := s.friendshipRepo.FindBySrcAndDst(friendID, personID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	if reverse != nil && reverse.Status == string(dto.FriendshipStatusRequest) {
		// Reciprocal acceptance: both directions become FRIEND.
		reverse.Status = string(dto.FriendshipStatusFriend)
		if err := s.friendshipRepo.Update(reverse); err != nil {
			return false, err
		}
		if err := s.upsertEdge(personID, friendID, dto.FriendshipStatusFriend); err != nil {
			return false, err
		}
		_ = s.notificationService.Send(dto.NotificationTypeFriendRequest, friendID, "Your friend request was accepted")
		return true, nil
	}

	forward, err := s.friendshipRepo.FindBySrcAndDst(personID, friendID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	if forward != nil {
		switch forward.Status {
		case string(dto.FriendshipStatusFriend), string(dto.FriendshipStatusRequest):
			return false, errors.New("friend request already exists")
		default:
			// A declined or stale edge is reused for the new request.
			forward.Status = string(dto.FriendshipStatusRequest)
			forward.Time = time.Now()
			if err := s.friendshipRepo.Update(forward); err != nil {
				return false, err
			}
			_ = s.notificationService.Send(dto.NotificationTypeFriendRequest, friendID, "New friend request")
			return true, nil
		}
	}

	friendship := &models.Friendship{
		ID:          uuid.New(),
		SrcPersonID: personID,
		DstPersonID: friendID,
		Status:      string(dto.FriendshipStatusRequest),
		Time:        time.Now(),
	}
	if err := s.friendshipRepo.Create(friendship); err != nil {
		return false, err
	}

	_ = s.notificationService.Send(dto.NotificationTypeFriendRequest, friendID, "New friend request")
	return true, nil
}

// DeleteFriend removes the caller's own FRIEND edge; the other side keeps a
// SUBSCRIBED edge towards the caller instead of losing the relation outright.
func (s *friendshipService) DeleteFriend(personID, friendID uuid.UUID) (bool, error) {
	forward, err := s.friendshipRepo.FindBySrcAndDst(personID, friendID)
	if err != nil {
		return false, errors.New("friendship not found")
	}
	if forward.Status != string(dto.FriendshipStatusFriend) {
		return false, errors.New("friendship not found")
	}

	if err := s.friendshipRepo.Delete(forward.ID); err != nil {
		return false, err
	}

	reverse, err := s.friendshipRepo.FindBySrcAndDst(friendID, personID)
	if err == nil && reverse.Status == string(dto.FriendshipStatusFriend) {
		reverse.Status = string(dto.FriendshipStatusSubscribed)
		if err := s.friendshipRepo.Update(reverse); err != nil {
			return false, err
		}
	}

	return true, nil
}

func (s *friendshipService) IsFriend(personID uuid.UUID, candidateIDs []uuid.UUID) ([]dto.FriendStatusData, error) {
	friendships, err := s.friendshipRepo.FindStatuses(personID, candidateIDs)
	if err != nil {
		return nil, err
	}

	out := make([]dto.FriendStatusData, 0, len(friendships))
	for _, f := range friendships {
		out = append(out, dto.FriendStatusData{
			ID:     f.DstPersonID,
			Status: dto.FriendshipStatus(f.Status),
		})
	}
	return out, nil
}

// BlockPerson severs the relation in both directions and leaves a single
// BLOCKED edge pointing from the blocker to the target.
func (s *friendshipService) BlockPerson(personID, targetID uuid.UUID) error {
	if _, err := s.personRepo.FindByID(targetID); err != nil {
		return errors.New("person not found")
	}

	if err := s.friendshipRepo.DeletePair(personID, targetID); err != nil {
		return err
	}
	return s.friendshipRepo.Create(&models.Friendship{
		ID:          uuid.New(),
		SrcPersonID: personID,
		DstPersonID: targetID,
		Status:      string(dto.FriendshipStatusBlocked),
		Time:        time.Now(),
	})
}

func (s *friendshipService) UnblockPerson(personID, targetID uuid.UUID) error {
	edge, err := s.friendshipRepo.FindBySrcAndDst(personID, targetID)
	if err != nil {
		return errors.New("person is not blocked")
	}
	if edge.Status != string(dto.FriendshipStatusBlocked) {
		return errors.New("person is not blocked")
	}
	return s.friendshipRepo.Delete(edge.ID)
}

func (s *friendshipService) upsertEdge(srcID, dstID uuid.UUID, status dto.FriendshipStatus) error {
	edge, err := s.friendshipRepo.FindBySrcAndDst(srcID, dstID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return s.friendshipRepo.Create(&models.Friendship{
			ID:          uuid.New(),
			SrcPersonID: srcID,
			DstPersonID: dstID,
			Status:      string(status),
			Time:        time.Now(),
		})
	}

	edge.Status = string(status)
	edge.Time = time.Now()
	return s.friendshipRepo.Update(edge)
}

// loadFilteredPage resolves persons by id, applies the name filter and the
// offset/limit window in memory. Friend lists are small enough for that.
func (s *friendshipService) loadFilteredPage(ids []uuid.UUID, nameFilter string, offset, limit int) ([]*models.Person, int64, error) {
	persons, err := s.personRepo.FindByIDs(ids)
	if err != nil {
		return nil, 0, err
	}

	filtered := make([]*models.Person, 0, len(persons))
	needle := strings.ToLower(nameFilter)
	for _, p := range persons {
		if p.IsDeleted {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.FirstName), needle) &&
			!strings.Contains(strings.ToLower(p.LastName), needle) {
			continue
		}
		filtered = append(filtered, p)
	}

	total := int64(len(filtered))
	if offset >= len(filtered) {
		return []*models.Person{}, total, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(filtered) {
		end = len(filtered)
	}
	return filtered[offset:end], total, nil
}
