package middleware

import (
	"strings"

	"github.com/discvault/api/internal/config"
	"github.com/discvault/api/internal/dto"
	"github.com/discvault/api/internal/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdminRequired gates admin routes. It checks, in order:
// 1. the X-Admin-Token header against the configured token
// 2. the JWT email against the configured admin email list
// 3. the profiles.is_admin flag, re-read from the DB on every request
// There is no process-wide admin cache; revoking admin takes effect on the
// next request.
func AdminRequired(db *gorm.DB, cfg *config.Config) fiber.Handler {
	adminEmails := parseCSV(cfg.AdminEmails)

	return func(c *fiber.Ctx) error {
		if cfg.AdminToken != "" && c.Get("X-Admin-Token") == cfg.AdminToken {
			return c.Next()
		}

		userID, err := UserID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		if contains(adminEmails, UserEmail(c)) {
			return c.Next()
		}

		var profile models.Profile
		if err := db.First(&profile, "user_id = ?", userID).Error; err == nil && profile.IsAdmin {
			return c.Next()
		}

		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Admin access required",
		})
	}
}

func parseCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func contains(list []string, val string) bool {
	if val == "" {
		return false
	}
	for _, item := range list {
		if item == val {
			return true
		}
	}
	return false
}
