package handler

import (
	"strconv"

	"github.com/festpix/festpix-backend/internal/models"
	"github.com/festpix/festpix-backend/internal/service"
	"github.com/festpix/festpix-backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type EventHandler struct {
	eventService *service.EventService
	validator    *utils.Validator
}

func NewEventHandler(eventService *service.EventService, validator *utils.Validator) *EventHandler {
	return &EventHandler{
		eventService: eventService,
		validator:    validator,
	}
}

func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	var req models.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	userID, _, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	event, err := h.eventService.CreateEvent(userID, req)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(models.SuccessResponse(event, "Event created successfully"))
}

func (h *EventHandler) GetMyEvents(c *fiber.Ctx) error {
	userID, _, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	events, err := h.eventService.GetEventsByOrganizer(userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(models.SuccessResponse(events, "Events retrieved successfully"))
}

func (h *EventHandler) GetAllEvents(c *fiber.Ctx) error {
	events, err := h.eventService.GetAllEvents()
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(models.SuccessResponse(events, "Events retrieved successfully"))
}

func (h *EventHandler) GetEvent(c *fiber.Ctx) error {
	eventID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event ID"))
	}

	userID, role, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	event, err := h.eventService.GetEvent(uint(eventID))
	if err != nil {
		return respondServiceError(c, err)
	}

	if event.OrganizerID != userID && role != models.RoleAdministrator {
		return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse("You don't have permission to view this event"))
	}

	return c.JSON(models.SuccessResponse(event, "Event retrieved successfully"))
}

// GetEventByToken serves guests following a QR link. No credential: the
// token is the capability.
func (h *EventHandler) GetEventByToken(c *fiber.Ctx) error {
	token := c.Params("token")

	event, err := h.eventService.GetEventByToken(token)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(models.SuccessResponse(event, "Event retrieved successfully"))
}

func (h *EventHandler) UpdateEvent(c *fiber.Ctx) error {
	eventID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event ID"))
	}

	var req models.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	userID, role, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	event, err := h.eventService.UpdateEvent(uint(eventID), userID, role, req)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(models.SuccessResponse(event, "Event updated successfully"))
}

func (h *EventHandler) DeleteEvent(c *fiber.Ctx) error {
	eventID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event ID"))
	}

	userID, role, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	if err := h.eventService.DeleteEvent(uint(eventID), userID, role); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Event successfully deleted"))
}

func (h *EventHandler) GetEventQRCode(c *fiber.Ctx) error {
	eventID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event ID"))
	}

	size := c.QueryInt("size", 256)
	if size < 64 || size > 2048 {
		size = 256
	}

	userID, role, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	png, err := h.eventService.EventQRCode(uint(eventID), userID, role, size)
	if err != nil {
		return respondServiceError(c, err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
