package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
)

type HealthController struct {
	db *sqlx.DB
}

func NewHealthController(db *sqlx.DB) *HealthController {
	return &HealthController{db: db}
}

// Health handles GET /health
func (h *HealthController) Health(c *fiber.Ctx) error {
	if err := h.db.PingContext(c.UserContext()); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
