package handlers

import (
	"errors"

	"bizhub/internal/domain"
	applog "bizhub/internal/log"
	"bizhub/internal/services"

	"github.com/gofiber/fiber/v2"
)

// SettingsHandler serves shell settings and the owner account actions.
type SettingsHandler struct {
	Settings *services.SettingsService
	Account  *services.AccountService
}

// GET /settings
func (h *SettingsHandler) Page(c *fiber.Ctx) error {
	return render(c, "settings", fiber.Map{"Current": h.Settings.Get(), "Colors": domain.Colors})
}

// POST /settings (form)
func (h *SettingsHandler) Save(c *fiber.Ctx) error {
	in := services.SettingsInput{
		AppName:  c.FormValue("appName"),
		Currency: c.FormValue("currency"),
		Theme:    c.FormValue("theme"),
		Color:    c.FormValue("color"),
	}
	s, err := h.Settings.Update(in)
	if err != nil {
		msg := "Could not save settings. Please try again."
		if errors.Is(err, services.ErrInvalidInput) {
			msg = err.Error()
		} else {
			applog.Error(c, "settings.save.fail", err, nil)
		}
		c.Status(fiber.StatusBadRequest)
		return render(c, "settings", fiber.Map{"Current": in, "Colors": domain.Colors, "Err": msg})
	}
	applog.Audit(c, "settings.save", map[string]any{"theme": s.Theme, "color": s.Color})
	return c.Redirect("/settings")
}

// GET /api/v1/settings
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.Settings.Get())
}

// PUT /api/v1/settings
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var in services.SettingsInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid settings")
	}
	s, err := h.Settings.Update(in)
	if err != nil {
		return fail(c, "settings.update", err)
	}
	applog.Audit(c, "settings.update", map[string]any{"theme": s.Theme, "color": s.Color})
	return c.JSON(s)
}

// PUT /api/v1/settings/navigation/:id
func (h *SettingsHandler) SetNav(c *fiber.Ctx) error {
	var req struct {
		Enabled *bool `json:"enabled" form:"enabled"`
	}
	if err := c.BodyParser(&req); err != nil || req.Enabled == nil {
		return badRequest(c, "enabled is required")
	}
	s, err := h.Settings.SetNavEnabled(c.Params("id"), *req.Enabled)
	if err != nil {
		return fail(c, "settings.nav", err)
	}
	applog.Audit(c, "settings.nav", map[string]any{"nav_id": c.Params("id"), "enabled": *req.Enabled})
	return c.JSON(s)
}

// POST /api/v1/account/password
func (h *SettingsHandler) ChangePassword(c *fiber.Ctx) error {
	var req struct {
		Current string `json:"currentPassword" form:"currentPassword"`
		New     string `json:"newPassword" form:"newPassword"`
		Confirm string `json:"confirmPassword" form:"confirmPassword"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request")
	}
	if err := h.Account.ChangePassword(req.Current, req.New, req.Confirm); err != nil {
		return fail(c, "account.password", err)
	}
	applog.Audit(c, "account.password.change", nil)
	return c.SendStatus(fiber.StatusNoContent)
}

// DELETE /api/v1/account
func (h *SettingsHandler) DeleteAccount(c *fiber.Ctx) error {
	var req struct {
		Password string `json:"password" form:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request")
	}
	if err := h.Account.DeleteAccount(req.Password); err != nil {
		return fail(c, "account.delete", err)
	}
	applog.Audit(c, "account.delete", nil)
	return c.SendStatus(fiber.StatusNoContent)
}
