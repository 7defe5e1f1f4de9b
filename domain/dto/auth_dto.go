// domain/dto/auth_dto.go
package dto

// LoginRequest carries the login credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthData is returned on a successful login.
type AuthData struct {
	Person PersonData `json:"person"`
	Token  string     `json:"token"`
}
