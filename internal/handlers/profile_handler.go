package handlers

import (
	"errors"

	"github.com/discvault/api/internal/dto"
	"github.com/discvault/api/internal/middleware"
	"github.com/discvault/api/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ProfileHandler struct {
	profileService *services.ProfileService
}

func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	profile, err := h.profileService.Get(userID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Profile not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load profile",
		})
	}

	return c.JSON(profile)
}

func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.ProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	profile, err := h.profileService.Update(userID, middleware.UserEmail(c), &req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update profile",
		})
	}

	return c.JSON(profile)
}

// Directory lists players who opted in to being discoverable.
func (h *ProfileHandler) Directory(c *fiber.Ctx) error {
	profiles, err := h.profileService.Directory()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load player directory",
		})
	}

	return c.JSON(fiber.Map{"players": profiles, "count": len(profiles)})
}
