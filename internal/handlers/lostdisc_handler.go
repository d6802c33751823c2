package handlers

import (
	"errors"

	"github.com/discvault/api/internal/dto"
	"github.com/discvault/api/internal/middleware"
	"github.com/discvault/api/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type LostDiscHandler struct {
	lostDiscService *services.LostDiscService
}

func NewLostDiscHandler(lostDiscService *services.LostDiscService) *LostDiscHandler {
	return &LostDiscHandler{lostDiscService: lostDiscService}
}

func (h *LostDiscHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.LostDiscRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	report, err := h.lostDiscService.Create(userID, &req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(report)
}

func (h *LostDiscHandler) List(c *fiber.Ctx) error {
	filter := dto.LostDiscFilter{
		Brand:  c.Query("brand"),
		State:  c.Query("state"),
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}

	reports, total, err := h.lostDiscService.List(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list lost discs",
		})
	}

	return c.JSON(fiber.Map{"lost_discs": reports, "total": total})
}

func (h *LostDiscHandler) Get(c *fiber.Ctx) error {
	discID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid lost disc ID",
		})
	}

	report, images, err := h.lostDiscService.Get(discID)
	if err != nil {
		if errors.Is(err, services.ErrLostDiscNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Lost disc not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load lost disc",
		})
	}

	return c.JSON(fiber.Map{"lost_disc": report, "images": images})
}

func (h *LostDiscHandler) Update(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	discID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid lost disc ID",
		})
	}

	var req dto.LostDiscRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	report, err := h.lostDiscService.Update(discID, userID, &req)
	if err != nil {
		return lostDiscError(c, err)
	}

	return c.JSON(report)
}

func (h *LostDiscHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	discID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid lost disc ID",
		})
	}

	if err := h.lostDiscService.Delete(discID, userID); err != nil {
		return lostDiscError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Lost disc report deleted successfully"})
}

func lostDiscError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrLostDiscNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Lost disc not found",
		})
	case errors.Is(err, services.ErrNotFinder):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Only the finder can modify this report",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
}
