package controllers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"weighroom-backend/middleware"
	"weighroom-backend/models"
	"weighroom-backend/weights"
)

type WeightController struct {
	weights weights.Repository
}

func NewWeightController(repo weights.Repository) *WeightController {
	return &WeightController{weights: repo}
}

// Add handles POST /api/weights. The wrestler is identified by name.
func (h *WeightController) Add(c *fiber.Ctx) error {
	var in models.WeightInput
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	first := strings.TrimSpace(in.FirstName)
	last := strings.TrimSpace(in.LastName)
	if first == "" || last == "" || in.Weight == 0 {
		return fail(c, fiber.StatusBadRequest, "Missing fields")
	}

	date, err := weights.ParseDate(in.Date)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid date")
	}

	_, err = h.weights.Add(c.UserContext(), middleware.SchoolID(c), weights.NewRecord{
		FirstName: first,
		LastName:  last,
		Date:      date,
		Weight:    float64(in.Weight),
		Type:      in.Type,
	})
	if errors.Is(err, weights.ErrWrestlerNotFound) {
		return fail(c, fiber.StatusBadRequest, "Wrestler not found")
	}
	if err != nil {
		return serverError(c, "Failed to record weight", err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// History handles GET /api/weights?wrestler=
func (h *WeightController) History(c *fiber.Ctx) error {
	records, err := h.weights.History(c.UserContext(), middleware.SchoolID(c), c.Query("wrestler"))
	if err != nil {
		return serverError(c, "Failed to load weights", err)
	}
	return c.JSON(fiber.Map{"weights": records})
}
