package handlers

import (
	"bizhub/internal/domain"
	"bizhub/internal/services"

	"github.com/gofiber/fiber/v2"
)

// WithSettings puts the current shell settings into Locals for templates.
func WithSettings(svc *services.SettingsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("settings", svc.Get())
		return c.Next()
	}
}

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	if s, ok := c.Locals("settings").(domain.Settings); ok {
		data["Settings"] = s
		data["Nav"] = s.EnabledNavigation()
	}
	// Pick up the token the CSRF middleware put into Locals
	if tok, _ := c.Locals("csrf").(string); tok != "" {
		data["CSRFToken"] = tok
	} else if tok := c.Cookies("csrf_"); tok != "" {
		data["CSRFToken"] = tok
	}
	return c.Render(tmpl, data)
}

// NotFound is the catch-all for unknown routes.
func NotFound(c *fiber.Ctx) error {
	if isAPI(c) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	}
	c.Status(fiber.StatusNotFound)
	return render(c, "notfound", fiber.Map{"Message": "Page not found"})
}
