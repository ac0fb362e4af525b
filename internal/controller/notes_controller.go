package controller

import (
	"student-notes-ai/internal/dto"
	"student-notes-ai/internal/pkg/logger"
	"student-notes-ai/internal/pkg/serverutils"
	"student-notes-ai/internal/service"

	"github.com/gofiber/fiber/v2"
)

type INotesController interface {
	RegisterRoutes(r fiber.Router)
	CompleteNotes(ctx *fiber.Ctx) error
	UploadText(ctx *fiber.Ctx) error
}

type notesController struct {
	completionService service.ICompletionService
	uploadService     service.IUploadService
	logger            logger.ILogger
}

func NewNotesController(
	completionService service.ICompletionService,
	uploadService service.IUploadService,
	log logger.ILogger,
) INotesController {
	return &notesController{
		completionService: completionService,
		uploadService:     uploadService,
		logger:            log,
	}
}

func (c *notesController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/api")
	h.Post("complete-notes", c.CompleteNotes)
	h.Post("upload-text", c.UploadText)
}

func (c *notesController) CompleteNotes(ctx *fiber.Ctx) error {
	var req dto.CompletionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "No extracted text provided",
		})
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "No extracted text provided",
		})
	}

	res, err := c.completionService.Complete(ctx.Context(), &req)
	if err != nil {
		c.logger.Error("notes", "completion failed", map[string]interface{}{"error": err.Error()})
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to complete notes",
			"details": err.Error(),
		})
	}

	return ctx.JSON(res)
}

func (c *notesController) UploadText(ctx *fiber.Ctx) error {
	var req dto.TextUploadRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "No text provided",
		})
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "No text provided",
		})
	}

	res, err := c.uploadService.UploadText(ctx.Context(), &req)
	if err != nil {
		c.logger.Error("notes", "text upload failed", map[string]interface{}{"error": err.Error()})
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to upload text",
		})
	}

	return ctx.JSON(res)
}
