package controllers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"weighroom-backend/logger"
	"weighroom-backend/mail"
	"weighroom-backend/middleware"
	"weighroom-backend/models"
	"weighroom-backend/schools"
)

type ContactController struct {
	schools schools.Repository
	mailer  mail.Mailer
}

func NewContactController(repo schools.Repository, mailer mail.Mailer) *ContactController {
	return &ContactController{schools: repo, mailer: mailer}
}

// Send handles POST /api/contact
func (h *ContactController) Send(c *fiber.Ctx) error {
	var form models.ContactInput
	if err := c.BodyParser(&form); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid input")
	}

	if len(strings.TrimSpace(form.Message)) < 15 {
		return fail(c, fiber.StatusBadRequest, "Message is too short")
	}

	school, err := h.schools.GetByID(c.UserContext(), middleware.SchoolID(c))
	if errors.Is(err, schools.ErrNotFound) {
		return fail(c, fiber.StatusUnauthorized, "Invalid token")
	}
	if err != nil {
		return serverError(c, "Failed to send message", err)
	}

	err = h.mailer.SendContact(c.UserContext(), mail.ContactMessage{
		FromName:   strings.TrimSpace(form.Name),
		SchoolName: school.Name,
		SchoolCode: school.Code,
		Body:       strings.TrimSpace(form.Message),
	})
	if err != nil {
		logger.FromCtx(c).Error("contact mail failed", zap.Error(err), zap.Int64("school_id", school.ID))
		return fail(c, fiber.StatusInternalServerError, "Failed to send message")
	}

	return c.JSON(fiber.Map{"success": true})
}
