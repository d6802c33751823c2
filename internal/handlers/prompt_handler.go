package handlers

import (
	"errors"

	"github.com/discvault/api/internal/dto"
	"github.com/discvault/api/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// PromptHandler manages the AI prompt library. Routes are mounted behind
// the admin middleware.
type PromptHandler struct {
	promptService *services.PromptService
}

func NewPromptHandler(promptService *services.PromptService) *PromptHandler {
	return &PromptHandler{promptService: promptService}
}

func (h *PromptHandler) List(c *fiber.Ctx) error {
	prompts, err := h.promptService.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list prompts",
		})
	}

	return c.JSON(fiber.Map{"prompts": prompts, "count": len(prompts)})
}

func (h *PromptHandler) Update(c *fiber.Ctx) error {
	promptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid prompt ID",
		})
	}

	var req dto.UpdatePromptRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	prompt, err := h.promptService.Update(promptID, &req)
	if err != nil {
		if errors.Is(err, services.ErrPromptNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Prompt not found",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.JSON(prompt)
}
