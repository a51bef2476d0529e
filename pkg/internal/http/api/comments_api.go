package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inkwellhq/inkwell/pkg/internal/database"
	"github.com/inkwellhq/inkwell/pkg/internal/http/exts"
	"github.com/inkwellhq/inkwell/pkg/internal/models"
	"github.com/inkwellhq/inkwell/pkg/internal/services"
)

func createComment(c *fiber.Ctx) error {
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

	var data struct {
		Body string `json:"body" form:"body" validate:"required"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	comment, err := services.NewComment(item, user, data.Body)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}
