package exts

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inkwellhq/inkwell/pkg/internal/models"
)

const CookieSessionToken = "inkwell_session"

func EnsureAuthenticated(c *fiber.Ctx) error {
	if _, ok := c.Locals("user").(models.Account); !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "you need to login first")
	}

	return nil
}
