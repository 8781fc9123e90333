package controllers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"weighroom-backend/auth"
	"weighroom-backend/middleware"
	"weighroom-backend/models"
	"weighroom-backend/schools"
	"weighroom-backend/utils"
)

type SchoolController struct {
	schools schools.Repository
}

func NewSchoolController(repo schools.Repository) *SchoolController {
	return &SchoolController{schools: repo}
}

// UpdateSettings handles PATCH /api/school/settings
func (h *SchoolController) UpdateSettings(c *fiber.Ctx) error {
	var in models.SettingsInput
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	patch := schools.SettingsPatch{
		PrimaryColor:   utils.TrimPtr(in.PrimaryColor),
		SecondaryColor: utils.TrimPtr(in.SecondaryColor),
	}
	if name := utils.TrimPtr(in.Name); name != nil && *name != "" {
		patch.Name = name
	}
	if pw := utils.OrZero(in.Password); strings.TrimSpace(pw) != "" {
		hash, err := auth.HashPassword(pw)
		if err != nil {
			return serverError(c, "Failed to update settings", err)
		}
		patch.PasswordHash = &hash
	}
	if patch.Empty() {
		return fail(c, fiber.StatusBadRequest, "No updates provided")
	}

	settings, err := h.schools.UpdateSettings(c.UserContext(), middleware.SchoolID(c), patch)
	if errors.Is(err, schools.ErrNotFound) {
		return fail(c, fiber.StatusNotFound, "School not found")
	}
	if err != nil {
		return serverError(c, "Failed to update settings", err)
	}

	return c.JSON(fiber.Map{"success": true, "school": settings})
}
