package handler

import (
	"strconv"

	"github.com/festpix/festpix-backend/internal/models"
	"github.com/festpix/festpix-backend/internal/service"
	"github.com/festpix/festpix-backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type ContactHandler struct {
	contactService *service.ContactService
	validator      *utils.Validator
}

func NewContactHandler(contactService *service.ContactService, validator *utils.Validator) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		validator:      validator,
	}
}

func (h *ContactHandler) CreateContact(c *fiber.Ctx) error {
	var req models.CreateContactPersonRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	userID, role, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	contact, err := h.contactService.CreateContact(userID, role, req)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(models.SuccessResponse(contact, "Contact person created successfully"))
}

func (h *ContactHandler) GetContactsByEvent(c *fiber.Ctx) error {
	eventID, err := strconv.ParseUint(c.Params("eventId"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event ID"))
	}

	contacts, err := h.contactService.GetContactsByEvent(uint(eventID))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(models.SuccessResponse(contacts, "Contact persons retrieved successfully"))
}

func (h *ContactHandler) UpdateContact(c *fiber.Ctx) error {
	contactID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid contact ID"))
	}

	var req models.UpdateContactPersonRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	userID, role, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	contact, err := h.contactService.UpdateContact(uint(contactID), userID, role, req)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(models.SuccessResponse(contact, "Contact person updated successfully"))
}

func (h *ContactHandler) DeleteContact(c *fiber.Ctx) error {
	contactID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid contact ID"))
	}

	userID, role, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	if err := h.contactService.DeleteContact(uint(contactID), userID, role); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Contact person successfully deleted"))
}
