// infrastructure/persistence/postgres/person_repository.go
package postgres

import (
	"errors"
	"time"

	"github.com/altsora/SocialNetwork-sub000/domain/models"
	"github.com/altsora/SocialNetwork-sub000/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type personRepository struct {
	db *gorm.DB
}

func NewPersonRepository(db *gorm.DB) repository.PersonRepository {
	return &personRepository{db: db}
}

func (r *personRepository) Create(person *models.Person) error {
	if person.ID == uuid.Nil {
		person.ID = uuid.New()
	}
	if person.RegDate.IsZero() {
		person.RegDate = time.Now()
	}

	return r.db.Create(person).Error
}

func (r *personRepository) FindByID(id uuid.UUID) (*models.Person, error) {
	var person models.Person
	if err := r.db.Where("id = ?", id).First(&person).Error; err != nil {
		return nil, err
	}
	return &person, nil
}

func (r *personRepository) FindByEmail(email string) (*models.Person, error) {
	var person models.Person
	if err := r.db.Where("email = ?", email).First(&person).Error; err != nil {
		return nil, err
	}
	return &person, nil
}

func (r *personRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Person{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *personRepository) Mutate(id uuid.UUID, apply func(*models.Person) error) (*models.Person, error) {
	var person models.Person
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).First(&person).Error; err != nil {
			return err
		}
		if err := apply(&person); err != nil {
			return err
		}
		return tx.Save(&person).Error
	})
	if err != nil {
		return nil, err
	}
	return &person, nil
}

func (r *personRepository) Search(filter repository.PersonSearchFilter, offset, limit int) ([]*models.Person, int64, error) {
	query := r.db.Model(&models.Person{}).
		Where("is_deleted = ? AND is_blocked = ?", false, false)

	if filter.FirstName != "" {
		query = query.Where("first_name ILIKE ?", "%"+filter.FirstName+"%")
	}
	if filter.LastName != "" {
		query = query.Where("last_name ILIKE ?", "%"+filter.LastName+"%")
	}
	// Age bounds translate to birth-date bounds: older persons were born
	// earlier.
	now := time.Now()
	if filter.AgeFrom > 0 {
		query = query.Where("birth_date <= ?", now.AddDate(-filter.AgeFrom, 0, 0))
	}
	if filter.AgeTo > 0 {
		query = query.Where("birth_date >= ?", now.AddDate(-filter.AgeTo-1, 0, 0))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var persons []*models.Person
	if err := query.Order("reg_date DESC").Offset(offset).Limit(limit).Find(&persons).Error; err != nil {
		return nil, 0, err
	}
	return persons, total, nil
}

func (r *personRepository) FindNewest(limit int) ([]*models.Person, error) {
	var persons []*models.Person
	err := r.db.Where("is_deleted = ? AND is_blocked = ?", false, false).
		Order("reg_date DESC").Limit(limit).Find(&persons).Error
	if err != nil {
		return nil, err
	}
	return persons, nil
}

func (r *personRepository) FindByIDs(ids []uuid.UUID) ([]*models.Person, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var persons []*models.Person
	if err := r.db.Where("id IN ?", ids).Find(&persons).Error; err != nil {
		return nil, err
	}
	return persons, nil
}

func (r *personRepository) UpdateLastOnline(id uuid.UUID, at time.Time, online bool) error {
	result := r.db.Model(&models.Person{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"last_online_time": at,
			"is_online":        online,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("person not found")
	}
	return nil
}

func (r *personRepository) FindOnlineIDs() ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.Person{}).
		Where("is_online = ?", true).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *personRepository) MarkOffline(ids []uuid.UUID, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Model(&models.Person{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{
			"last_online_time": at,
			"is_online":        false,
		}).Error
}

func (r *personRepository) ToggleBlocked(id uuid.UUID) (bool, error) {
	var blocked bool
	err := r.db.Raw(
		"UPDATE persons SET is_blocked = NOT is_blocked WHERE id = ? RETURNING is_blocked", id,
	).Scan(&blocked).Error
	if err != nil {
		return false, err
	}
	return blocked, nil
}
