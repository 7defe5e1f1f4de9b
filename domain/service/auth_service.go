// domain/service/auth_service.go
package service

import (
	"context"

	"github.com/altsora/SocialNetwork-sub000/domain/models"
	"github.com/google/uuid"
)

type AuthService interface {
	// Login verifies the credentials and returns the person together with a
	// signed bearer token. Blocked and deleted accounts cannot log in.
	Login(ctx context.Context, email, password string) (*models.Person, string, error)
	// Logout marks the person offline and stamps the last-online time.
	Logout(ctx context.Context, personID uuid.UUID) error
}
