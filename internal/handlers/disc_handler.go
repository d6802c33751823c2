package handlers

import (
	"errors"

	"github.com/discvault/api/internal/dto"
	"github.com/discvault/api/internal/middleware"
	"github.com/discvault/api/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type DiscHandler struct {
	discService *services.DiscService
}

func NewDiscHandler(discService *services.DiscService) *DiscHandler {
	return &DiscHandler{discService: discService}
}

func (h *DiscHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.DiscRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	disc, err := h.discService.Create(userID, &req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(disc)
}

func (h *DiscHandler) List(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	discs, err := h.discService.List(userID, c.QueryBool("for_sale"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list discs",
		})
	}

	return c.JSON(fiber.Map{"discs": discs, "count": len(discs)})
}

// ListForSale is the public marketplace feed. No auth required.
func (h *DiscHandler) ListForSale(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	discs, total, err := h.discService.ListForSale(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list discs",
		})
	}

	return c.JSON(fiber.Map{"discs": discs, "total": total})
}

func (h *DiscHandler) Get(c *fiber.Ctx) error {
	discID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid disc ID",
		})
	}

	disc, images, err := h.discService.Get(discID)
	if err != nil {
		if errors.Is(err, services.ErrDiscNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Disc not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load disc",
		})
	}

	return c.JSON(fiber.Map{"disc": disc, "images": images})
}

func (h *DiscHandler) Update(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	discID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid disc ID",
		})
	}

	var req dto.DiscRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	disc, err := h.discService.Update(discID, userID, &req)
	if err != nil {
		return discError(c, err)
	}

	return c.JSON(disc)
}

func (h *DiscHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	discID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid disc ID",
		})
	}

	if err := h.discService.Delete(discID, userID); err != nil {
		return discError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Disc deleted successfully"})
}

func (h *DiscHandler) Import(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.ImportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, err := h.discService.Import(userID, &req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.JSON(resp)
}

func discError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrDiscNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Disc not found",
		})
	case errors.Is(err, services.ErrNotOwner):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "You do not own this disc",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
}
