package handlers

import (
	"time"

	"github.com/discvault/api/internal/database"
	"github.com/discvault/api/internal/dto"
	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "ok"
	status := "ok"
	if err := database.Ping(); err != nil {
		dbStatus = "unreachable"
		status = "degraded"
	}

	resp := dto.HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        dbStatus,
	}
	if status != "ok" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
	}
	return c.JSON(resp)
}
