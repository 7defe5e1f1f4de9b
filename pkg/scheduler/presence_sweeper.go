// pkg/scheduler/presence_sweeper.go
package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/altsora/SocialNetwork-sub000/domain/repository"
	"github.com/altsora/SocialNetwork-sub000/domain/service"
	"github.com/altsora/SocialNetwork-sub000/pkg/logger"
)

// PresenceSweeper reconciles the persisted online flag with the presence
// store. Presence marks expire on their own; the persisted flag of a person
// who stopped refreshing has to be cleared here.
type PresenceSweeper struct {
	personRepo      repository.PersonRepository
	presenceService service.PresenceService
	interval        time.Duration
}

func NewPresenceSweeper(
	personRepo repository.PersonRepository,
	presenceService service.PresenceService,
) *PresenceSweeper {
	return &PresenceSweeper{
		personRepo:      personRepo,
		presenceService: presenceService,
		interval:        1 * time.Minute,
	}
}

// Start runs the sweeper until ctx is cancelled.
func (s *PresenceSweeper) Start(ctx context.Context) {
	logger.Log.Info("presence sweeper started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			logger.Log.Info("presence sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *PresenceSweeper) sweep(ctx context.Context) {
	ids, err := s.personRepo.FindOnlineIDs()
	if err != nil {
		logger.Log.Error("presence sweep: load online persons", zap.Error(err))
		return
	}

	stale := ids[:0]
	for _, id := range ids {
		online, err := s.presenceService.IsOnline(ctx, id)
		if err != nil {
			logger.Log.Error("presence sweep: check presence",
				zap.String("person_id", id.String()), zap.Error(err))
			continue
		}
		if !online {
			stale = append(stale, id)
		}
	}

	if len(stale) == 0 {
		return
	}
	if err := s.personRepo.MarkOffline(stale, time.Now()); err != nil {
		logger.Log.Error("presence sweep: mark offline", zap.Error(err))
		return
	}
	logger.Log.Info("presence sweep: marked persons offline", zap.Int("count", len(stale)))
}
