package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/inkwellhq/inkwell/pkg/internal/http/exts"
	"github.com/inkwellhq/inkwell/pkg/internal/security"
	"github.com/inkwellhq/inkwell/pkg/internal/services"
)

func getLogin(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "post your credentials here to login",
		"next":    c.Query("next", "/"),
	})
}

func doLogin(c *fiber.Ctx) error {
	var data struct {
		Name     string `json:"name" form:"name" validate:"required"`
		Password string `json:"password" form:"password" validate:"required"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	account, err := services.AuthenticateAccount(data.Name, data.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	token, err := security.IssueToken(account.ID, account.Name)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	c.Cookie(&fiber.Cookie{
		Name:     exts.CookieSessionToken,
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(fiber.Map{
		"token": token,
		"next":  c.Query("next", "/"),
	})
}
