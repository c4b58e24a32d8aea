package handler

import (
	"strconv"

	"github.com/festpix/festpix-backend/internal/models"
	"github.com/festpix/festpix-backend/internal/service"
	"github.com/festpix/festpix-backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type ProgramHandler struct {
	programService *service.ProgramService
	validator      *utils.Validator
}

func NewProgramHandler(programService *service.ProgramService, validator *utils.Validator) *ProgramHandler {
	return &ProgramHandler{
		programService: programService,
		validator:      validator,
	}
}

func (h *ProgramHandler) CreateProgram(c *fiber.Ctx) error {
	var req models.CreateEventProgramRequest
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

	program, err := h.programService.CreateProgram(userID, role, req)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(models.SuccessResponse(program, "Program entry created successfully"))
}

func (h *ProgramHandler) GetProgramsByEvent(c *fiber.Ctx) error {
	eventID, err := strconv.ParseUint(c.Params("eventId"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event ID"))
	}

	programs, err := h.programService.GetProgramsByEvent(uint(eventID))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(models.SuccessResponse(programs, "Programs retrieved successfully"))
}

func (h *ProgramHandler) UpdateProgram(c *fiber.Ctx) error {
	programID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid program ID"))
	}

	var req models.UpdateEventProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	userID, role, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	program, err := h.programService.UpdateProgram(uint(programID), userID, role, req)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(models.SuccessResponse(program, "Program entry updated successfully"))
}

func (h *ProgramHandler) DeleteProgram(c *fiber.Ctx) error {
	programID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid program ID"))
	}

	userID, role, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	if err := h.programService.DeleteProgram(uint(programID), userID, role); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Program entry successfully deleted"))
}

func (h *ProgramHandler) ReorderPrograms(c *fiber.Ctx) error {
	eventID, err := strconv.ParseUint(c.Params("eventId"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event ID"))
	}

	var req models.ReorderProgramsRequest
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

	programs, err := h.programService.ReorderPrograms(uint(eventID), userID, role, req.ProgramIDs)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(models.SuccessResponse(programs, "Programs reordered successfully"))
}
