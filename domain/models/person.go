// domain/models/person.go

package models

import (
	"time"

	"github.com/google/uuid"
)

// Person is a registered account with its profile and moderation state.
type Person struct {
	ID             uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	FirstName      string     `json:"first_name" gorm:"type:varchar(100);not null"`
	LastName       string     `json:"last_name" gorm:"type:varchar(100);not null"`
	RegDate        time.Time  `json:"reg_date" gorm:"type:timestamp with time zone;default:now()"`
	BirthDate      *time.Time `json:"birth_date,omitempty" gorm:"type:date"`
	Email          string     `json:"email" gorm:"type:varchar(255);not null;unique"`
	Phone          string     `json:"phone,omitempty" gorm:"type:varchar(30)"`
	PasswordHash   string     `json:"-" gorm:"type:text"`
	Photo          string     `json:"photo,omitempty" gorm:"type:text"`
	About          string     `json:"about,omitempty" gorm:"type:text"`
	City           string     `json:"city,omitempty" gorm:"type:varchar(100)"`
	Country        string     `json:"country,omitempty" gorm:"type:varchar(100)"`
	ConfirmCode    string     `json:"-" gorm:"type:varchar(20)"`
	IsApproved     bool       `json:"is_approved" gorm:"default:true"`
	MessagesPerm   string     `json:"messages_permission" gorm:"type:varchar(20);default:'ALL'"`
	LastOnlineTime *time.Time `json:"last_online_time,omitempty" gorm:"type:timestamp with time zone"`
	IsOnline       bool       `json:"online" gorm:"default:false"`
	IsBlocked      bool       `json:"is_blocked" gorm:"default:false"`
	IsDeleted      bool       `json:"is_deleted" gorm:"default:false"`
}

func (Person) TableName() string {
	return "persons"
}
