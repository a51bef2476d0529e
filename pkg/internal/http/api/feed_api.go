package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inkwellhq/inkwell/pkg/internal/database"
	"github.com/inkwellhq/inkwell/pkg/internal/http/exts"
	"github.com/inkwellhq/inkwell/pkg/internal/models"
	"github.com/inkwellhq/inkwell/pkg/internal/services"
	jsoniter "github.com/json-iterator/go"
)

func getHomeFeed(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)

	// Anything inside the cache window is served as previously rendered,
	// byte for byte.
	if cached, ok := services.GetCachedFeedPage(page); ok {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(cached)
	}

	posts, pagination, err := services.GetFeed(database.C, page)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	payload, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(fiber.Map{
		"data":       posts,
		"pagination": pagination,
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	services.SetCachedFeedPage(page, payload)

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(payload)
}

func getGroupFeed(c *fiber.Ctx) error {
	group, err := services.GetGroup(c.Params("slug"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	tx := services.FilterPostWithGroup(database.C, group)
	posts, pagination, err := services.GetFeed(tx, c.QueryInt("page", 1))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"group":      group,
		"data":       posts,
		"pagination": pagination,
	})
}

func getFollowedFeed(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	tx := services.FilterPostWithFollowed(database.C, user)
	posts, pagination, err := services.GetFeed(tx, c.QueryInt("page", 1))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"data":       posts,
		"pagination": pagination,
	})
}
