package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
)

// The admin surface is operational tooling, it sits behind a shared
// token rather than a user session. With no token configured it stays
// closed entirely.
func ensureAdmin(c *fiber.Ctx) error {
	token := viper.GetString("security.admin_token")
	if len(token) == 0 || c.Get("X-Admin-Token") != token {
		return fiber.NewError(fiber.StatusForbidden, "admin access denied")
	}

	return c.Next()
}

func MapControllers(app *fiber.App, baseURL string) {
	admin := app.Group(baseURL, ensureAdmin)
	{
		admin.Post("/cache/flush", adminFlushFeedCache)
		admin.Post("/groups", adminCreateGroup)
		admin.Post("/accounts", adminCreateAccount)
	}
}
