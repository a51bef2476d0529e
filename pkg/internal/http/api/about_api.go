package api

import (
	pkg "github.com/inkwellhq/inkwell/pkg/internal"

	"github.com/gofiber/fiber/v2"
)

func getAboutAuthor(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"title": "About the author",
		"body":  "Inkwell is maintained by a small crew of people who still believe in personal blogs.",
	})
}

func getAboutTech(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"title":   "About the technology",
		"body":    "Served by Fiber, stored with GORM, cached in process.",
		"version": pkg.AppVersion,
	})
}
