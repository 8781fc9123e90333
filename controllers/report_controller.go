package controllers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"weighroom-backend/middleware"
	"weighroom-backend/reports"
	"weighroom-backend/roster"
	"weighroom-backend/weights"
)

type ReportController struct {
	wrestlers roster.Repository
	weights   weights.Repository
}

func NewReportController(wrestlers roster.Repository, weightRepo weights.Repository) *ReportController {
	return &ReportController{wrestlers: wrestlers, weights: weightRepo}
}

// Report handles GET /api/reports/:kind?sex=&ids=1,2,3
func (h *ReportController) Report(c *fiber.Ctx) error {
	kind := c.Params("kind")
	switch kind {
	case reports.KindGraphs, reports.KindAverage, reports.KindMissing:
	default:
		return fail(c, fiber.StatusBadRequest, "Unknown report kind")
	}

	ids, err := parseIDList(c.Query("ids"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid ids")
	}

	schoolID := middleware.SchoolID(c)
	list, err := h.wrestlers.List(c.UserContext(), schoolID)
	if err != nil {
		return serverError(c, "Failed to build report", err)
	}
	records, err := h.weights.History(c.UserContext(), schoolID, "")
	if err != nil {
		return serverError(c, "Failed to build report", err)
	}

	out, err := reports.Build(kind, list, records, reports.Options{Sex: c.Query("sex"), IDs: ids})
	if errors.Is(err, reports.ErrUnknownKind) {
		return fail(c, fiber.StatusBadRequest, "Unknown report kind")
	}
	if err != nil {
		return serverError(c, "Failed to build report", err)
	}

	return c.JSON(fiber.Map{"kind": kind, "results": out})
}

func parseIDList(raw string) ([]int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	out := make([]int64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}
