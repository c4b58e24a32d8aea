package handler

import (
	"strconv"

	"github.com/festpix/festpix-backend/internal/models"
	"github.com/festpix/festpix-backend/internal/service"
	"github.com/festpix/festpix-backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type ThemeHandler struct {
	themeService *service.ThemeService
	validator    *utils.Validator
}

func NewThemeHandler(themeService *service.ThemeService, validator *utils.Validator) *ThemeHandler {
	return &ThemeHandler{
		themeService: themeService,
		validator:    validator,
	}
}

func (h *ThemeHandler) CreateTheme(c *fiber.Ctx) error {
	var req models.CreateEventThemeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	theme, err := h.themeService.CreateTheme(req)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(models.SuccessResponse(theme, "Theme created successfully"))
}

func (h *ThemeHandler) GetAllThemes(c *fiber.Ctx) error {
	themes, err := h.themeService.GetAllThemes()
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(models.SuccessResponse(themes, "Themes retrieved successfully"))
}

func (h *ThemeHandler) GetStandardThemes(c *fiber.Ctx) error {
	themes, err := h.themeService.GetStandardThemes()
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(models.SuccessResponse(themes, "Standard themes retrieved successfully"))
}

func (h *ThemeHandler) UpdateTheme(c *fiber.Ctx) error {
	themeID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid theme ID"))
	}

	var req models.UpdateEventThemeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	theme, err := h.themeService.UpdateTheme(uint(themeID), req)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(models.SuccessResponse(theme, "Theme updated successfully"))
}

func (h *ThemeHandler) DeleteTheme(c *fiber.Ctx) error {
	themeID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid theme ID"))
	}

	if err := h.themeService.DeleteTheme(uint(themeID)); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Theme successfully deleted"))
}
