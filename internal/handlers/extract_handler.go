package handlers

import (
	"errors"
	"strings"

	"github.com/discvault/api/internal/dto"
	"github.com/discvault/api/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ExtractHandler struct {
	extractService *services.ExtractService
}

func NewExtractHandler(extractService *services.ExtractService) *ExtractHandler {
	return &ExtractHandler{extractService: extractService}
}

func (h *ExtractHandler) ExtractDisc(c *fiber.Ctx) error {
	var req dto.ExtractRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if strings.TrimSpace(req.Transcript) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Transcript is required",
		})
	}

	fields, err := h.extractService.ExtractDisc(c.UserContext(), req.Transcript)
	if err != nil {
		if errors.Is(err, services.ErrExtractionDisabled) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Error: true, Message: "AI extraction is not available",
			})
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to extract disc information",
		})
	}

	return c.JSON(fields)
}
