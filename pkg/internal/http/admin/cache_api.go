package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inkwellhq/inkwell/pkg/internal/services"
)

func adminFlushFeedCache(c *fiber.Ctx) error {
	services.InvalidateFeedCache()
	return c.SendStatus(fiber.StatusNoContent)
}
