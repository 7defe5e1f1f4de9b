// interfaces/api/handler/auth_handler.go
package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/altsora/SocialNetwork-sub000/domain/dto"
	"github.com/altsora/SocialNetwork-sub000/domain/service"
	"github.com/altsora/SocialNetwork-sub000/interfaces/api/middleware"
	"github.com/altsora/SocialNetwork-sub000/pkg/utils"
)

// AuthHandler - login and logout endpoints
type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login - exchange credentials for a bearer token
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	if err := utils.ValidateStruct(req); err != nil {
		return badRequest(c, err)
	}

	person, token, err := h.authService.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return badRequest(c, err)
	}

	return ok(c, dto.AuthData{
		Person: dto.NewPersonData(person),
		Token:  token,
	})
}

// Logout - mark the person offline
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	personID := middleware.GetUserUUID(c)
	if err := h.authService.Logout(c.Context(), personID); err != nil {
		return badRequest(c, err)
	}
	return okMessage(c, "logged out")
}
