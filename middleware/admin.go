package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const AdminTokenHeader = "X-Admin-Token"

// RequireAdmin gates the admin routes behind the shared secret, read from the
// JSON body field "token" or the X-Admin-Token header.
func RequireAdmin(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		presented := strings.TrimSpace(c.Get(AdminTokenHeader))
		if presented == "" {
			var body struct {
				Token string `json:"token"`
			}
			if len(c.Body()) > 0 {
				_ = c.BodyParser(&body)
			}
			presented = body.Token
		}

		if secret == "" || !SecretEqual(presented, secret) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		}
		return c.Next()
	}
}

func SecretEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
