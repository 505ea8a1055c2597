package handlers

import (
	"errors"
	"strings"

	applog "bizhub/internal/log"
	"bizhub/internal/pos"
	"bizhub/internal/repos"
	"bizhub/internal/services"
	"bizhub/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const sidCookie = "sid"

// session returns the checkout session id, issuing one on first visit.
func session(c *fiber.Ctx) string {
	sid := c.Cookies(sidCookie)
	if _, err := uuid.Parse(sid); err != nil {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{Name: sidCookie, Value: sid, Path: "/", HTTPOnly: true, SameSite: "Lax"})
	}
	c.Locals("sid", sid)
	return sid
}

func isAPI(c *fiber.Ctx) bool { return strings.HasPrefix(c.Path(), "/api/") }

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func idParam(c *fiber.Ctx) (int64, bool) { return validate.ID(c.Params("id")) }

// fail maps service errors to status codes. Internal details never reach
// the client. The status is set before logging so entries carry it.
func fail(c *fiber.Ctx, action string, err error) error {
	var (
		ve  *pos.ValidationError
		ite *pos.InsufficientTenderError
		re  *pos.RemoteError
	)
	switch {
	case errors.As(err, &ite):
		c.Status(fiber.StatusPaymentRequired)
		applog.Info(c, action+".short", map[string]any{"total": ite.Total.String(), "tendered": ite.Tendered.String()})
		return c.JSON(fiber.Map{
			"error":    ite.Error(),
			"total":    ite.Total,
			"tendered": ite.Tendered,
		})
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ve.Error(), "field": ve.Field})
	case errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, services.ErrPasswordMismatch),
		errors.Is(err, services.ErrWeakPassword):
		return badRequest(c, err.Error())
	case errors.Is(err, services.ErrBadCreds):
		c.Status(fiber.StatusForbidden)
		applog.Warn(c, action+".badcreds", nil)
		return c.JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound), errors.Is(err, services.ErrUnknownProduct):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	case errors.Is(err, repos.ErrInsufficientStock):
		c.Status(fiber.StatusConflict)
		applog.Warn(c, action+".stock", map[string]any{"reason": err.Error()})
		return c.JSON(fiber.Map{"error": "stock changed since the catalog was loaded; the order was updated, please review it and try again"})
	case errors.As(err, &re):
		c.Status(fiber.StatusBadGateway)
		applog.Error(c, action+".remote", err, nil)
		return c.JSON(fiber.Map{"error": "the store could not be reached, please try again"})
	default:
		c.Status(fiber.StatusInternalServerError)
		applog.Error(c, action+".fail", err, nil)
		return c.JSON(fiber.Map{"error": "something went wrong, please try again"})
	}
}
