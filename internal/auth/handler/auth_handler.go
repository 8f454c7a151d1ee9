package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/storelane/auth-service/internal/auth/dto"
	"github.com/storelane/auth-service/internal/auth/service"
	autherror "github.com/storelane/auth-service/internal/errors"
	"github.com/storelane/auth-service/pkg/constant"
)

type AuthHandler struct {
	userService *service.UserService
}

func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.AuthResult{
			Success: false,
			Message: constant.MsgFieldsRequired,
		})
	}

	result, err := h.userService.Register(c.UserContext(), input)
	if err != nil {
		return respondError(c, result, err)
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.AuthResult{
			Success: false,
			Message: constant.MsgFieldsRequired,
		})
	}

	result, err := h.userService.Login(c.UserContext(), input)
	if err != nil {
		return respondError(c, result, err)
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

// respondError maps service sentinels to status codes. The service owns the
// user-facing message; a missing result means an infrastructure fault, which
// is reported opaquely.
func respondError(c *fiber.Ctx, result *dto.AuthResult, err error) error {
	if result == nil {
		result = &dto.AuthResult{Success: false, Message: constant.MsgInternalError}
	}

	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, autherror.ErrValidation), errors.Is(err, autherror.ErrWeakPassword):
		status = fiber.StatusBadRequest
	case errors.Is(err, autherror.ErrInvalidCredentials):
		status = fiber.StatusUnauthorized
	case errors.Is(err, autherror.ErrAccountLocked):
		status = fiber.StatusTooManyRequests
	case errors.Is(err, autherror.ErrEmailAlreadyInUse):
		status = fiber.StatusConflict
	}

	return c.Status(status).JSON(result)
}
