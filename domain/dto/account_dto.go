// domain/dto/account_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

// ============ Request DTOs ============

// RegisterRequest carries a new account registration.
type RegisterRequest struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"passwd1" validate:"required,min=8"`
	PasswordRepeat string `json:"passwd2" validate:"required"`
	FirstName      string `json:"firstName" validate:"required"`
	LastName       string `json:"lastName" validate:"required"`
}

// RecoverPasswordRequest asks for a fresh generated password by email.
type RecoverPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// SetPasswordRequest replaces the current person's password.
type SetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}

// ChangeEmailRequest replaces the current person's email.
type ChangeEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// UpdateProfileRequest edits the current person's profile fields. Pointer
// fields distinguish "absent" from "set to empty".
type UpdateProfileRequest struct {
	FirstName *string    `json:"first_name,omitempty"`
	LastName  *string    `json:"last_name,omitempty"`
	Phone     *string    `json:"phone,omitempty"`
	Photo     *string    `json:"photo,omitempty"`
	About     *string    `json:"about,omitempty"`
	City      *string    `json:"city,omitempty"`
	Country   *string    `json:"country,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
}

// SearchPersonsRequest filters the person search endpoint.
type SearchPersonsRequest struct {
	FirstName string `query:"first_name"`
	LastName  string `query:"last_name"`
	AgeFrom   int    `query:"age_from"`
	AgeTo     int    `query:"age_to"`
	Offset    int    `query:"offset"`
	Limit     int    `query:"limit"`
}

// ============ Response Data DTOs ============

// PersonData is the profile projection embedded in wall, friend and search
// responses.
type PersonData struct {
	ID             uuid.UUID  `json:"id"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	RegDate        time.Time  `json:"reg_date"`
	BirthDate      *time.Time `json:"birth_date,omitempty"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone,omitempty"`
	Photo          string     `json:"photo,omitempty"`
	About          string     `json:"about,omitempty"`
	City           string     `json:"city,omitempty"`
	Country        string     `json:"country,omitempty"`
	LastOnlineTime *time.Time `json:"last_online_time,omitempty"`
	IsBlocked      bool       `json:"is_blocked"`
	Online         bool       `json:"online"`
}
