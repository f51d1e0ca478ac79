package handlers

import (
	applog "artesania/internal/log"
	"artesania/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RequireSeller enforces a signed-in seller; otherwise redirect to login.
func RequireSeller(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			applog.Security(c, "access.denied.seller", nil)
			return c.Redirect("/login")
		}
		u, err := auth.CurrentSeller(sid)
		if err != nil || u == nil {
			applog.Security(c, "access.denied.seller", map[string]any{"sid": sid})
			return c.Redirect("/login")
		}
		c.Locals("seller", u)
		c.Locals("seller_id", u.ID)
		return c.Next()
	}
}
