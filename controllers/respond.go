package controllers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"weighroom-backend/logger"
	"weighroom-backend/middleware"
)

func fail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// serverError logs err with the request context and answers 500.
func serverError(c *fiber.Ctx, msg string, err error) error {
	logger.FromCtx(c).Error(msg,
		zap.Error(err),
		zap.String("route", c.Route().Path),
		zap.Int64("school_id", middleware.SchoolID(c)),
	)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   msg,
		"message": err.Error(),
	})
}

func paramID(c *fiber.Ctx, name string) (int64, bool) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, false
	}
	return int64(id), true
}
