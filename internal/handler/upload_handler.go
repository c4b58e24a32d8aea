package handler

import (
	"strconv"

	"github.com/festpix/festpix-backend/internal/models"
	"github.com/festpix/festpix-backend/internal/service"
	"github.com/festpix/festpix-backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type UploadHandler struct {
	uploadService *service.UploadService
	eventService  *service.EventService
	validator     *utils.Validator
}

func NewUploadHandler(uploadService *service.UploadService, eventService *service.EventService, validator *utils.Validator) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
		eventService:  eventService,
		validator:     validator,
	}
}

// CreateGuestUpload is the public guest flow: resolve the event by its QR
// token, run the admission check against the caller's IP, then record the
// upload. Check and insert are separate statements; see
// UploadService.CheckRateLimit.
func (h *UploadHandler) CreateGuestUpload(c *fiber.Ctx) error {
	event, err := h.eventService.GetEventByToken(c.Params("token"))
	if err != nil {
		return respondServiceError(c, err)
	}

	var req models.GuestUploadRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	req.EventID = event.ID
	uploadIP := c.IP()
	req.UploadIP = &uploadIP

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	result, err := h.uploadService.CheckRateLimit(event.ID, uploadIP)
	if err != nil {
		return respondServiceError(c, err)
	}
	if !result.Allowed {
		return c.Status(fiber.StatusTooManyRequests).JSON(models.ErrorResponse("Upload limit reached, please try again later"))
	}

	upload, err := h.uploadService.CreateGuestUpload(req)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(models.SuccessResponse(upload, "Upload recorded successfully"))
}

// CreateUpload records an upload directly, without the admission check.
// Organizer/administrator use only.
func (h *UploadHandler) CreateUpload(c *fiber.Ctx) error {
	var req models.GuestUploadRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	upload, err := h.uploadService.CreateGuestUpload(req)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(models.SuccessResponse(upload, "Upload recorded successfully"))
}

func (h *UploadHandler) CheckRateLimit(c *fiber.Ctx) error {
	event, err := h.eventService.GetEventByToken(c.Params("token"))
	if err != nil {
		return respondServiceError(c, err)
	}

	result, err := h.uploadService.CheckRateLimit(event.ID, c.IP())
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(models.SuccessResponse(result, "Rate limit checked successfully"))
}

func (h *UploadHandler) GetUploadsByEvent(c *fiber.Ctx) error {
	eventID, err := strconv.ParseUint(c.Params("eventId"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event ID"))
	}

	userID, role, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	uploads, err := h.uploadService.GetUploadsByEvent(uint(eventID), userID, role)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(models.SuccessResponse(uploads, "Uploads retrieved successfully"))
}

func (h *UploadHandler) GetAllUploads(c *fiber.Ctx) error {
	uploads, err := h.uploadService.GetAllUploads()
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(models.SuccessResponse(uploads, "Uploads retrieved successfully"))
}

func (h *UploadHandler) UpdateUpload(c *fiber.Ctx) error {
	uploadID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid upload ID"))
	}

	var req models.UpdateGuestUploadRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	userID, role, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	upload, err := h.uploadService.UpdateUpload(uint(uploadID), userID, role, req)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(models.SuccessResponse(upload, "Upload updated successfully"))
}

func (h *UploadHandler) DeleteUpload(c *fiber.Ctx) error {
	uploadID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid upload ID"))
	}

	userID, role, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	if err := h.uploadService.DeleteUpload(uint(uploadID), userID, role); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Upload successfully deleted"))
}

func (h *UploadHandler) DownloadUpload(c *fiber.Ctx) error {
	uploadID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid upload ID"))
	}

	download, err := h.uploadService.Download(uint(uploadID))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(models.SuccessResponse(download, "Download link generated successfully"))
}
