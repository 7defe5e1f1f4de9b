// domain/repository/person_repository.go
package repository

import (
	"time"

	"github.com/altsora/SocialNetwork-sub000/domain/models"
	"github.com/google/uuid"
)

// PersonSearchFilter narrows SearchPersons. Zero values mean "no filter".
type PersonSearchFilter struct {
	FirstName string
	LastName  string
	AgeFrom   int
	AgeTo     int
}

type PersonRepository interface {
	Create(person *models.Person) error
	FindByID(id uuid.UUID) (*models.Person, error)
	FindByEmail(email string) (*models.Person, error)
	ExistsByEmail(email string) (bool, error)
	// Mutate loads the person, applies the callback and saves the result in
	// one transaction so concurrent edits of the same row cannot lose
	// updates. An error from the callback rolls the transaction back.
	Mutate(id uuid.UUID, apply func(*models.Person) error) (*models.Person, error)

	Search(filter PersonSearchFilter, offset, limit int) ([]*models.Person, int64, error)
	FindNewest(limit int) ([]*models.Person, error)
	FindByIDs(ids []uuid.UUID) ([]*models.Person, error)
	UpdateLastOnline(id uuid.UUID, at time.Time, online bool) error
	// FindOnlineIDs returns the ids of persons whose persisted online flag
	// is set.
	FindOnlineIDs() ([]uuid.UUID, error)
	MarkOffline(ids []uuid.UUID, at time.Time) error
	// ToggleBlocked flips the blocked flag atomically and returns the new
	// value.
	ToggleBlocked(id uuid.UUID) (bool, error)
}
