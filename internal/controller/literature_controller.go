package controller

import (
	"student-notes-ai/internal/dto"
	"student-notes-ai/internal/pkg/logger"
	"student-notes-ai/internal/pkg/serverutils"
	"student-notes-ai/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ILiteratureController interface {
	RegisterRoutes(r fiber.Router)
	AddLiterature(ctx *fiber.Ctx) error
	SearchLiterature(ctx *fiber.Ctx) error
}

type literatureController struct {
	literatureService service.ILiteratureService
	logger            logger.ILogger
}

func NewLiteratureController(literatureService service.ILiteratureService, log logger.ILogger) ILiteratureController {
	return &literatureController{
		literatureService: literatureService,
		logger:            log,
	}
}

func (c *literatureController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/api")
	h.Post("add-literature", c.AddLiterature)
	h.Post("search-literature", c.SearchLiterature)
}

func (c *literatureController) AddLiterature(ctx *fiber.Ctx) error {
	var req dto.AddLiteratureRequest
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

	res, err := c.literatureService.Add(ctx.Context(), &req)
	if err != nil {
		c.logger.Error("literature", "add failed", map[string]interface{}{"error": err.Error()})
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to add literature",
			"error":   err.Error(),
		})
	}

	return ctx.JSON(res)
}

func (c *literatureController) SearchLiterature(ctx *fiber.Ctx) error {
	var req dto.SearchLiteratureRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "No search query provided",
		})
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "No search query provided",
		})
	}

	res, err := c.literatureService.Search(ctx.Context(), &req)
	if err != nil {
		c.logger.Error("literature", "search failed", map[string]interface{}{"error": err.Error()})
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to search literature",
			"error":   err.Error(),
		})
	}

	return ctx.JSON(res)
}
