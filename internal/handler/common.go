package handler

import (
	"errors"

	"github.com/festpix/festpix-backend/internal/models"
	"github.com/festpix/festpix-backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

// currentUser reads the identity the auth middleware stored on the context.
func currentUser(c *fiber.Ctx) (uint, string, bool) {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return 0, "", false
	}
	role, ok := c.Locals("userRole").(string)
	if !ok {
		return 0, "", false
	}
	return userID, role, true
}

// respondServiceError maps service sentinel errors onto HTTP statuses.
func respondServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse(err.Error()))
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrThemeInUse):
		return c.Status(fiber.StatusConflict).JSON(models.ErrorResponse(err.Error()))
	case errors.Is(err, service.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse(err.Error()))
	case errors.Is(err, service.ErrAccountInactive),
		errors.Is(err, service.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse(err.Error()))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}
}
