package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inkwellhq/inkwell/pkg/internal/http/exts"
	"github.com/inkwellhq/inkwell/pkg/internal/services"
)

func adminCreateGroup(c *fiber.Ctx) error {
	var data struct {
		Alias       string `json:"alias" form:"alias" validate:"required,lowercase"`
		Name        string `json:"name" form:"name" validate:"required"`
		Description string `json:"description" form:"description"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	group, err := services.NewGroup(data.Alias, data.Name, data.Description)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(group)
}

func adminCreateAccount(c *fiber.Ctx) error {
	var data struct {
		Name     string `json:"name" form:"name" validate:"required"`
		Nick     string `json:"nick" form:"nick"`
		Password string `json:"password" form:"password" validate:"required"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	account, err := services.NewAccount(data.Name, data.Nick, data.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(account)
}
