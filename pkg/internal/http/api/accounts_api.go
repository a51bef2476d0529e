package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/inkwellhq/inkwell/pkg/internal/database"
	"github.com/inkwellhq/inkwell/pkg/internal/http/exts"
	"github.com/inkwellhq/inkwell/pkg/internal/models"
	"github.com/inkwellhq/inkwell/pkg/internal/services"
)

func getProfile(c *fiber.Ctx) error {
	author, err := services.GetAccountWithName(c.Params("username"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	tx := services.FilterPostWithAuthor(database.C, author)
	posts, pagination, err := services.GetFeed(tx, c.QueryInt("page", 1))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	isFollowing := false
	if user, authenticated := c.Locals("user").(models.Account); authenticated {
		isFollowing = services.IsFollowing(user, author)
	}

	return c.JSON(fiber.Map{
		"profile":         author,
		"data":            posts,
		"pagination":      pagination,
		"is_following":    isFollowing,
		"followers_count": services.CountAccountFollowers(author),
		"following_count": services.CountAccountFollowing(author),
	})
}

func followAccount(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	author, err := services.GetAccountWithName(c.Params("username"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if _, err := services.FollowAccount(user, author); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"is_following": services.IsFollowing(user, author),
	})
}

func unfollowAccount(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	author, err := services.GetAccountWithName(c.Params("username"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := services.UnfollowAccount(user, author); err != nil {
		if errors.Is(err, services.ErrFollowNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"is_following": false,
	})
}
