package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"weighroom-backend/auth"
)

const (
	claimsKey   = "claims"
	schoolIDKey = "school_id"
)

// RequireAuth verifies the bearer token and stores its claims and school id in
// the request locals.
func RequireAuth(issuer *auth.TokenIssuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, err := auth.BearerToken(c.Get(fiber.HeaderAuthorization))
		if errors.Is(err, auth.ErrNoToken) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "No token"})
		}
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
		}

		claims, err := issuer.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
		}

		c.Locals(claimsKey, claims)
		c.Locals(schoolIDKey, claims.SchoolID)
		return c.Next()
	}
}

// SchoolID returns the tenant set by RequireAuth, or 0 outside it.
func SchoolID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(schoolIDKey).(int64)
	return id
}

func Claims(c *fiber.Ctx) *auth.Claims {
	claims, _ := c.Locals(claimsKey).(*auth.Claims)
	return claims
}
