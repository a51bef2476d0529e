package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/inkwellhq/inkwell/pkg/internal/database"
	"github.com/inkwellhq/inkwell/pkg/internal/http/exts"
	"github.com/inkwellhq/inkwell/pkg/internal/models"
	"github.com/inkwellhq/inkwell/pkg/internal/services"
)

type postForm struct {
	Body  string  `json:"body" form:"body" validate:"required"`
	Group string  `json:"group" form:"group"`
	Image *string `json:"image" form:"image"`
}

func resolvePostGroup(alias string) (*models.Group, error) {
	if len(alias) == 0 {
		return nil, nil
	}
	group, err := services.GetGroup(alias)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("unable to find group: %v", err))
	}
	return &group, nil
}

func getPost(c *fiber.Ctx) error {
	id, err := c.ParamsInt("postId", 0)
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid post id")
	}

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	comments, err := services.ListPostComments(item, c.QueryInt("take", 100), c.QueryInt("offset", 0))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"post":     item,
		"comments": comments,
	})
}

func createPost(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	var data postForm
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	group, err := resolvePostGroup(data.Group)
	if err != nil {
		return err
	}

	item, err := services.NewPost(user, data.Body, group, data.Image)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

func editPost(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	id, err := c.ParamsInt("postId", 0)
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid post id")
	}

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	// Only the author edits, everyone else lands on the read view.
	if item.AuthorID != user.ID {
		return c.Redirect(fmt.Sprintf("/posts/%d", item.ID), fiber.StatusFound)
	}

	var data postForm
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	group, err := resolvePostGroup(data.Group)
	if err != nil {
		return err
	}

	item, err = services.EditPost(item, data.Body, group, data.Image)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(item)
}
