package controllers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"weighroom-backend/auth"
	"weighroom-backend/logger"
	"weighroom-backend/metrics"
	"weighroom-backend/middleware"
	"weighroom-backend/models"
	"weighroom-backend/schools"
)

type AuthController struct {
	schools schools.Repository
	issuer  *auth.TokenIssuer
	grace   time.Duration
	metrics *metrics.Metrics
}

func NewAuthController(repo schools.Repository, issuer *auth.TokenIssuer, refreshGrace time.Duration, m *metrics.Metrics) *AuthController {
	return &AuthController{schools: repo, issuer: issuer, grace: refreshGrace, metrics: m}
}

// Login handles POST /api/auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	code, password := req.Credentials()
	if code == "" || password == "" {
		return fail(c, fiber.StatusBadRequest, "Missing code or password")
	}

	var school schools.School
	lookup := func(ctx context.Context, code string) (auth.Credential, bool, error) {
		s, err := h.schools.GetByCode(ctx, code)
		if errors.Is(err, schools.ErrNotFound) {
			return auth.Credential{}, false, nil
		}
		if err != nil {
			return auth.Credential{}, false, err
		}
		school = s
		return auth.Credential{SchoolID: s.ID, Code: s.Code, PasswordHash: s.PasswordHash}, true, nil
	}

	if _, err := auth.Authenticate(c.UserContext(), lookup, code, password); err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			h.metrics.LoginAttempt("invalid")
			return fail(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		h.metrics.LoginAttempt("error")
		return serverError(c, "Login failed", err)
	}

	token, err := h.issuer.Issue(school.ID, school.Code)
	if err != nil {
		h.metrics.LoginAttempt("error")
		return serverError(c, "Login failed", err)
	}

	h.metrics.LoginAttempt("success")
	logger.FromCtx(c).Info("school logged in", zap.Int64("school_id", school.ID))

	return c.JSON(fiber.Map{
		"token":  token,
		"school": school.Profile(),
	})
}

// Verify handles GET /api/auth/verify
func (h *AuthController) Verify(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"valid":   true,
		"payload": middleware.Claims(c),
	})
}

// Refresh handles POST /api/auth/refresh. Recently expired tokens are accepted
// within the refresh grace period.
func (h *AuthController) Refresh(c *fiber.Ctx) error {
	raw, err := auth.BearerToken(c.Get(fiber.HeaderAuthorization))
	if errors.Is(err, auth.ErrNoToken) {
		return fail(c, fiber.StatusUnauthorized, "No token")
	}
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Invalid token")
	}

	claims, err := h.issuer.ParseForRefresh(raw, h.grace)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Invalid token")
	}

	school, err := h.schools.GetByID(c.UserContext(), claims.SchoolID)
	if errors.Is(err, schools.ErrNotFound) {
		return fail(c, fiber.StatusUnauthorized, "Invalid token")
	}
	if err != nil {
		return serverError(c, "Refresh failed", err)
	}

	token, err := h.issuer.Issue(school.ID, school.Code)
	if err != nil {
		return serverError(c, "Refresh failed", err)
	}

	return c.JSON(fiber.Map{
		"token":  token,
		"school": school.Profile(),
	})
}
