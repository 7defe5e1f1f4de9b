// interfaces/api/handler/account_handler.go
package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/altsora/SocialNetwork-sub000/domain/dto"
	"github.com/altsora/SocialNetwork-sub000/domain/service"
	"github.com/altsora/SocialNetwork-sub000/interfaces/api/middleware"
	"github.com/altsora/SocialNetwork-sub000/pkg/utils"
)

// AccountHandler - registration, credentials and profile endpoints
type AccountHandler struct {
	accountService service.AccountService
}

func NewAccountHandler(accountService service.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// Register - create a new account
func (h *AccountHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	if err := utils.ValidateStruct(req); err != nil {
		return badRequest(c, err)
	}

	created, err := h.accountService.Register(req)
	if err != nil {
		return badRequest(c, err)
	}
	if !created {
		return okMessage(c, "registration rejected")
	}
	return okMessage(c, "registration successful")
}

// RecoverPassword - mail a freshly generated password
func (h *AccountHandler) RecoverPassword(c *fiber.Ctx) error {
	var req dto.RecoverPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	if err := utils.ValidateStruct(req); err != nil {
		return badRequest(c, err)
	}

	if _, err := h.accountService.RecoverPassword(req.Email); err != nil {
		return badRequest(c, err)
	}
	return okMessage(c, "a new password has been sent to your email")
}

// SetPassword - replace the current person's password
func (h *AccountHandler) SetPassword(c *fiber.Ctx) error {
	var req dto.SetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	if err := utils.ValidateStruct(req); err != nil {
		return badRequest(c, err)
	}

	done, err := h.accountService.SetNewPassword(middleware.GetUserUUID(c), req.Password)
	if err != nil {
		return badRequest(c, err)
	}
	if !done {
		return badRequest(c, errPersonNotFound)
	}
	return okMessage(c, "password changed")
}

// ChangeEmail - replace the current person's email
func (h *AccountHandler) ChangeEmail(c *fiber.Ctx) error {
	var req dto.ChangeEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	if err := utils.ValidateStruct(req); err != nil {
		return badRequest(c, err)
	}

	done, err := h.accountService.ChangeEmail(middleware.GetUserUUID(c), req.Email)
	if err != nil {
		return badRequest(c, err)
	}
	if !done {
		return badRequest(c, errPersonNotFound)
	}
	return okMessage(c, "email changed")
}

// Me - profile of the current person
func (h *AccountHandler) Me(c *fiber.Ctx) error {
	person, err := h.accountService.FindCurrentUser(middleware.GetUserUUID(c))
	if err != nil {
		return serverError(c, err)
	}
	if person == nil {
		return c.Status(fiber.StatusUnauthorized).
			JSON(dto.NewErrorResponse("unauthorized", "not authenticated"))
	}
	return ok(c, dto.NewPersonData(person))
}

// UpdateMe - edit the current person's profile
func (h *AccountHandler) UpdateMe(c *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	person, err := h.accountService.UpdateProfile(middleware.GetUserUUID(c), req)
	if err != nil {
		return badRequest(c, err)
	}
	return ok(c, dto.NewPersonData(person))
}

// DeleteMe - soft-delete the current account
func (h *AccountHandler) DeleteMe(c *fiber.Ctx) error {
	if err := h.accountService.DeleteAccount(middleware.GetUserUUID(c)); err != nil {
		return badRequest(c, err)
	}
	return okMessage(c, "account deleted")
}

// ChangeLockStatus - toggle the blocked flag of a person
func (h *AccountHandler) ChangeLockStatus(c *fiber.Ctx) error {
	personID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, errInvalidID)
	}

	blocked, err := h.accountService.ChangeUserLockStatus(personID)
	if err != nil {
		return badRequest(c, err)
	}
	if blocked {
		return okMessage(c, "user blocked")
	}
	return okMessage(c, "user unblocked")
}

// Search - filter persons by name and age
func (h *AccountHandler) Search(c *fiber.Ctx) error {
	var req dto.SearchPersonsRequest
	if err := c.QueryParser(&req); err != nil {
		return invalidBody(c)
	}
	if req.Limit <= 0 {
		req.Limit = defaultPerPage
	}
	if req.Offset < 0 {
		req.Offset = 0
	}

	persons, total, err := h.accountService.SearchPersons(req)
	if err != nil {
		return serverError(c, err)
	}
	return okPage(c, dto.NewPersonDataList(persons), total, req.Offset, req.Limit)
}
