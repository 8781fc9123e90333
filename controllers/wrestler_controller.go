package controllers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"weighroom-backend/middleware"
	"weighroom-backend/models"
	"weighroom-backend/roster"
	"weighroom-backend/utils"
)

type WrestlerController struct {
	wrestlers roster.Repository
}

func NewWrestlerController(repo roster.Repository) *WrestlerController {
	return &WrestlerController{wrestlers: repo}
}

type wrestlerView struct {
	ID          int64   `json:"id"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Name        string  `json:"name"`
	WeightClass int     `json:"weightClass"`
	Sex         *string `json:"sex"`
}

func viewOf(w roster.Wrestler) wrestlerView {
	return wrestlerView{
		ID:          w.ID,
		FirstName:   w.FirstName,
		LastName:    w.LastName,
		Name:        w.FullName(),
		WeightClass: w.WeightClass,
		Sex:         w.Sex,
	}
}

// List handles GET /api/wrestlers?sex=&q=&sort=
func (h *WrestlerController) List(c *fiber.Ctx) error {
	list, err := h.wrestlers.List(c.UserContext(), middleware.SchoolID(c))
	if err != nil {
		return serverError(c, "Failed to load wrestlers", err)
	}

	opts := roster.ListOptions{Sex: c.Query("sex"), Query: c.Query("q"), Sort: c.Query("sort")}
	list = opts.Apply(list)

	out := make([]wrestlerView, 0, len(list))
	for _, w := range list {
		out = append(out, viewOf(w))
	}
	return c.JSON(fiber.Map{"wrestlers": out})
}

// Create handles POST /api/wrestlers
func (h *WrestlerController) Create(c *fiber.Ctx) error {
	var in models.WrestlerInput
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	first := strings.TrimSpace(utils.OrZero(in.FirstName))
	last := strings.TrimSpace(utils.OrZero(in.LastName))
	if first == "" || last == "" {
		return fail(c, fiber.StatusBadRequest, "Missing fields")
	}
	if in.WeightClass != nil && !roster.ValidWeightClass(int64(*in.WeightClass)) {
		return fail(c, fiber.StatusBadRequest, "Invalid weight class")
	}

	w, err := h.wrestlers.Create(c.UserContext(), middleware.SchoolID(c), roster.NewWrestler{
		FirstName:   first,
		LastName:    last,
		WeightClass: int(utils.OrZero(in.WeightClass)),
		Sex:         in.Sex,
	})
	if err != nil {
		return serverError(c, "Failed to add wrestler", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"wrestler": fiber.Map{
			"id":        w.ID,
			"firstName": w.FirstName,
			"lastName":  w.LastName,
		},
	})
}

// Import handles POST /api/wrestlers/import with a block pasted from a
// spreadsheet.
func (h *WrestlerController) Import(c *fiber.Ctx) error {
	var in models.ImportInput
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	parsed, errs := roster.ParsePaste(in.RawText)
	if len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Could not parse roster",
			"details": errs,
		})
	}
	if len(parsed) == 0 {
		return fail(c, fiber.StatusBadRequest, "No wrestlers found")
	}

	n, err := h.wrestlers.CreateMany(c.UserContext(), middleware.SchoolID(c), parsed)
	if err != nil {
		return serverError(c, "Failed to import wrestlers", err)
	}
	return c.JSON(fiber.Map{"success": true, "imported": n})
}

// Update handles PATCH /api/wrestlers/:id
func (h *WrestlerController) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return fail(c, fiber.StatusBadRequest, "Invalid wrestler id")
	}

	var in models.WrestlerInput
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	patch := roster.WrestlerPatch{
		FirstName: utils.TrimPtr(in.FirstName),
		LastName:  utils.TrimPtr(in.LastName),
		Sex:       in.Sex,
	}
	if in.WeightClass != nil {
		if !roster.ValidWeightClass(int64(*in.WeightClass)) {
			return fail(c, fiber.StatusBadRequest, "Invalid weight class")
		}
		patch.WeightClass = utils.Ptr(int(*in.WeightClass))
	}
	if patch.Empty() {
		return fail(c, fiber.StatusBadRequest, "No fields to update")
	}
	if (patch.FirstName != nil && *patch.FirstName == "") || (patch.LastName != nil && *patch.LastName == "") {
		return fail(c, fiber.StatusBadRequest, "Missing fields")
	}

	w, err := h.wrestlers.Update(c.UserContext(), middleware.SchoolID(c), id, patch)
	if errors.Is(err, roster.ErrNotFound) {
		return fail(c, fiber.StatusNotFound, "Wrestler not found")
	}
	if err != nil {
		return serverError(c, "Failed to update wrestler", err)
	}

	return c.JSON(fiber.Map{"success": true, "wrestler": viewOf(w)})
}

// Delete handles DELETE /api/wrestlers/:id
func (h *WrestlerController) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return fail(c, fiber.StatusBadRequest, "Invalid wrestler id")
	}

	err := h.wrestlers.Delete(c.UserContext(), middleware.SchoolID(c), id)
	if errors.Is(err, roster.ErrNotFound) {
		return fail(c, fiber.StatusNotFound, "Wrestler not found")
	}
	if err != nil {
		return serverError(c, "Failed to delete wrestler", err)
	}
	return c.JSON(fiber.Map{"success": true})
}
