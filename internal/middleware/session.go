package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// EnsureSession gives every visitor a session id cookie. The id keys the
// like/review once-per-session markers; it says nothing about who the
// visitor is.
func EnsureSession(maxAgeSec int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("gw_session")
		if sid == "" {
			sid = uuid.NewString()
			c.Cookie(&fiber.Cookie{
				Name:     "gw_session",
				Value:    sid,
				Path:     "/",
				HTTPOnly: true,
				Secure:   false,
				SameSite: "Lax",
				MaxAge:   maxAgeSec,
			})
		}
		c.Locals("sessionId", sid)
		return c.Next()
	}
}
