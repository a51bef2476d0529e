package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/inkwellhq/inkwell/pkg/internal/http/exts"
	"github.com/inkwellhq/inkwell/pkg/internal/security"
	"github.com/inkwellhq/inkwell/pkg/internal/services"
)

// ContextMiddleware resolves the session token into an account and makes
// it available to handlers via locals. Anonymous requests pass through.
func ContextMiddleware(c *fiber.Ctx) error {
	var tokenString string
	if raw := c.Get(fiber.HeaderAuthorization); strings.HasPrefix(raw, "Bearer ") {
		tokenString = strings.TrimPrefix(raw, "Bearer ")
	} else if cookie := c.Cookies(exts.CookieSessionToken); len(cookie) > 0 {
		tokenString = cookie
	}

	if len(tokenString) > 0 {
		if claims, err := security.ReadToken(tokenString); err == nil {
			if account, err := services.GetAccountWithID(claims.AccountID); err == nil {
				c.Locals("user", account)
			}
		}
	}

	return c.Next()
}
