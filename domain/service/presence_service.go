// domain/service/presence_service.go
package service

import (
	"context"

	"github.com/google/uuid"
)

// PresenceService tracks which persons are currently online. Entries expire
// on their own when a client stops refreshing them.
type PresenceService interface {
	MarkOnline(ctx context.Context, personID uuid.UUID) error
	MarkOffline(ctx context.Context, personID uuid.UUID) error
	IsOnline(ctx context.Context, personID uuid.UUID) (bool, error)
}
