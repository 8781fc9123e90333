package controllers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"weighroom-backend/auth"
	"weighroom-backend/logger"
	"weighroom-backend/middleware"
	"weighroom-backend/models"
	"weighroom-backend/schools"
)

type AdminCredentials struct {
	Username string
	Password string
	Token    string
}

type AdminController struct {
	schools schools.Repository
	creds   AdminCredentials
}

func NewAdminController(repo schools.Repository, creds AdminCredentials) *AdminController {
	return &AdminController{schools: repo, creds: creds}
}

// Login handles POST /api/admin/login. Unset admin credentials reject every
// attempt.
func (h *AdminController) Login(c *fiber.Ctx) error {
	var in models.AdminLoginInput
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if h.creds.Username == "" || h.creds.Password == "" {
		return fail(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	userOK := middleware.SecretEqual(in.Username, h.creds.Username)
	passOK := middleware.SecretEqual(in.Password, h.creds.Password)
	if !userOK || !passOK {
		return fail(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	return c.JSON(fiber.Map{"token": h.creds.Token})
}

// ListSchools handles POST /api/admin/schools/list
func (h *AdminController) ListSchools(c *fiber.Ctx) error {
	list, err := h.schools.List(c.UserContext())
	if err != nil {
		return serverError(c, "Failed to load schools", err)
	}
	return c.JSON(list)
}

// CreateSchool handles POST /api/admin/schools/create
func (h *AdminController) CreateSchool(c *fiber.Ctx) error {
	var in models.AdminInput
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	name := strings.TrimSpace(in.Name)
	code := strings.TrimSpace(in.LoginCode)
	if name == "" || code == "" || in.Password == "" {
		return fail(c, fiber.StatusBadRequest, "Missing fields")
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return serverError(c, "Failed to create school", err)
	}

	created, err := h.schools.Create(c.UserContext(), schools.NewSchool{Name: name, Code: code, PasswordHash: hash})
	if errors.Is(err, schools.ErrDuplicateCode) {
		return fail(c, fiber.StatusConflict, "School code already exists")
	}
	if err != nil {
		return serverError(c, "Failed to create school", err)
	}

	logger.FromCtx(c).Info("school created", zap.Int64("new_school_id", created.ID), zap.String("code", created.Code))
	return c.JSON(fiber.Map{"success": true, "message": "School created"})
}

// DeleteSchool handles POST /api/admin/schools/delete
func (h *AdminController) DeleteSchool(c *fiber.Ctx) error {
	var in models.AdminInput
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if in.SchoolID <= 0 {
		return fail(c, fiber.StatusBadRequest, "Missing school_id")
	}

	err := h.schools.Delete(c.UserContext(), int64(in.SchoolID))
	if errors.Is(err, schools.ErrNotFound) {
		return fail(c, fiber.StatusNotFound, "School not found")
	}
	if err != nil {
		return serverError(c, "Failed to delete school", err)
	}

	logger.FromCtx(c).Info("school deleted", zap.Int64("deleted_school_id", int64(in.SchoolID)))
	return c.JSON(fiber.Map{"success": true, "message": "School deleted"})
}
