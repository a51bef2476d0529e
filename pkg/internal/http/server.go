package http

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/inkwellhq/inkwell/pkg/internal/http/admin"
	"github.com/inkwellhq/inkwell/pkg/internal/http/api"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type App struct {
	app *fiber.App
}

func NewServer() *App {
	app := fiber.New(fiber.Config{
		AppName:               "Inkwell",
		ServerHeader:          "Inkwell",
		DisableStartupMessage: true,
		JSONEncoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Marshal,
		JSONDecoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}

			// A gated route without a session sends the visitor to the
			// login page, carrying where they were headed.
			if code == fiber.StatusUnauthorized {
				next := url.QueryEscape(c.OriginalURL())
				return c.Redirect("/auth/login?next="+next, fiber.StatusFound)
			}

			return c.Status(code).JSON(fiber.Map{
				"message": err.Error(),
			})
		},
	})

	app.Use(ContextMiddleware)

	admin.MapControllers(app, "/admin")
	api.MapAPIs(app)

	return &App{app}
}

func (v *App) Listen() {
	if err := v.app.Listen(viper.GetString("bind")); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when starting the http server.")
	}
}
