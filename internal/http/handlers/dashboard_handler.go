package handlers

import (
	applog "bizhub/internal/log"
	"bizhub/internal/services"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	Dash *services.DashboardService
}

// GET /
func (h *DashboardHandler) Home(c *fiber.Ctx) error {
	widgets, err := h.Dash.List()
	if err != nil {
		applog.Error(c, "dashboard.widgets.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load the dashboard"})
	}
	sales, err := h.Dash.Recent(c.UserContext(), 10)
	if err != nil {
		applog.Error(c, "dashboard.sales.fail", err, nil)
	}
	return render(c, "dashboard", fiber.Map{"Widgets": widgets, "Sales": sales})
}

// GET /api/v1/widgets
func (h *DashboardHandler) List(c *fiber.Ctx) error {
	ws, err := h.Dash.List()
	if err != nil {
		return fail(c, "widgets.list", err)
	}
	return c.JSON(ws)
}

// POST /api/v1/widgets
func (h *DashboardHandler) Add(c *fiber.Ctx) error {
	var req struct {
		Type   string `json:"type" form:"type"`
		Column int    `json:"column" form:"column"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid widget")
	}
	w, err := h.Dash.Add(req.Type, req.Column)
	if err != nil {
		return fail(c, "widgets.add", err)
	}
	return c.Status(fiber.StatusCreated).JSON(w)
}

// PUT /api/v1/widgets/:id/move
func (h *DashboardHandler) Move(c *fiber.Ctx) error {
	id, ok := idParam(c)
	if !ok {
		return badRequest(c, "invalid widget id")
	}
	var req struct {
		Delta int `json:"delta" form:"delta"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid move")
	}
	w, err := h.Dash.Move(id, req.Delta)
	if err != nil {
		return fail(c, "widgets.move", err)
	}
	return c.JSON(w)
}

// DELETE /api/v1/widgets/:id
func (h *DashboardHandler) Remove(c *fiber.Ctx) error {
	id, ok := idParam(c)
	if !ok {
		return badRequest(c, "invalid widget id")
	}
	if err := h.Dash.Remove(id); err != nil {
		return fail(c, "widgets.remove", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GET /api/v1/sales
func (h *DashboardHandler) Sales(c *fiber.Ctx) error {
	sales, err := h.Dash.Recent(c.UserContext(), 25)
	if err != nil {
		return fail(c, "sales.list", err)
	}
	return c.JSON(sales)
}
