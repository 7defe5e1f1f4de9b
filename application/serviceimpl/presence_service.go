// application/serviceimpl/presence_service.go
package serviceimpl

import (
	"context"
	"time"

	"github.com/altsora/SocialNetwork-sub000/domain/service"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// presenceTTL is how long an online mark survives without a refresh.
const presenceTTL = 5 * time.Minute

type presenceService struct {
	client *redis.Client
}

func NewPresenceService(client *redis.Client) service.PresenceService {
	return &presenceService{client: client}
}

func presenceKey(personID uuid.UUID) string {
	return "presence:online:" + personID.String()
}

func (s *presenceService) MarkOnline(ctx context.Context, personID uuid.UUID) error {
	return s.client.Set(ctx, presenceKey(personID), "1", presenceTTL).Err()
}

func (s *presenceService) MarkOffline(ctx context.Context, personID uuid.UUID) error {
	return s.client.Del(ctx, presenceKey(personID)).Err()
}

func (s *presenceService) IsOnline(ctx context.Context, personID uuid.UUID) (bool, error) {
	count, err := s.client.Exists(ctx, presenceKey(personID)).Result()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
