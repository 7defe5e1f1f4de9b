// interfaces/api/middleware/auth.go
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/altsora/SocialNetwork-sub000/domain/dto"
	"github.com/altsora/SocialNetwork-sub000/pkg/utils"
)

const userIDKey = "user_id"

// Protected rejects requests without a valid Bearer token.
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := tokenFromRequest(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.NewErrorResponse("unauthorized", "missing or invalid token"))
		}
		c.Locals(userIDKey, id)
		return c.Next()
	}
}

// Optional extracts the person id when a token is present but lets
// anonymous requests through. Handlers see uuid.Nil for anonymous users.
func Optional() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if id, ok := tokenFromRequest(c); ok {
			c.Locals(userIDKey, id)
		}
		return c.Next()
	}
}

// GetUserUUID returns the authenticated person id, or uuid.Nil.
func GetUserUUID(c *fiber.Ctx) uuid.UUID {
	if id, ok := c.Locals(userIDKey).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}

func tokenFromRequest(c *fiber.Ctx) (uuid.UUID, bool) {
	auth := c.Get(fiber.HeaderAuthorization)
	if auth == "" {
		return uuid.Nil, false
	}
	token := strings.TrimPrefix(auth, "Bearer ")
	if token == auth {
		return uuid.Nil, false
	}
	id, err := utils.ValidateToken(token)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
