package handlers

import (
	"errors"
	"strings"

	applog "bizhub/internal/log"
	"bizhub/internal/services"

	"github.com/gofiber/fiber/v2"
)

type RestaurantHandler struct {
	Restaurant *services.RestaurantService
}

// GET /api/v1/restaurant/menu?category=
func (h *RestaurantHandler) Menu(c *fiber.Ctx) error {
	mv, err := h.Restaurant.MenuItems(strings.TrimSpace(c.Query("category")))
	if err != nil {
		return fail(c, "restaurant.menu", err)
	}
	applog.Debug(c, "restaurant.menu", map[string]any{"category": mv.Selected, "items": len(mv.Items)})
	return c.JSON(mv)
}

// GET /api/v1/restaurant/tables
func (h *RestaurantHandler) Tables(c *fiber.Ctx) error {
	ts, err := h.Restaurant.Tables()
	if err != nil {
		return fail(c, "restaurant.tables", err)
	}
	return c.JSON(ts)
}

// PUT /api/v1/restaurant/tables/:id
func (h *RestaurantHandler) SetTableStatus(c *fiber.Ctx) error {
	id, ok := idParam(c)
	if !ok {
		return badRequest(c, "invalid table id")
	}
	var req struct {
		Status string `json:"status" form:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "status is required")
	}
	if err := h.Restaurant.SetTableStatus(id, req.Status); err != nil {
		return fail(c, "restaurant.table.status", err)
	}
	applog.Audit(c, "restaurant.table.status", map[string]any{"table_id": id, "status": req.Status})
	return c.SendStatus(fiber.StatusNoContent)
}

// GET /api/v1/restaurant/order
func (h *RestaurantHandler) Order(c *fiber.Ctx) error {
	return c.JSON(h.Restaurant.Order(session(c)))
}

// POST /api/v1/restaurant/order/items
func (h *RestaurantHandler) AddItem(c *fiber.Ctx) error {
	sid := session(c)
	var req itemReq
	if err := c.BodyParser(&req); err != nil || req.ProductID <= 0 {
		return badRequest(c, "productId is required")
	}
	v, err := h.Restaurant.Add(sid, req.ProductID)
	if err != nil {
		return fail(c, "restaurant.item.add", err)
	}
	return c.JSON(v)
}

// PUT /api/v1/restaurant/order/items/:id
func (h *RestaurantHandler) UpdateItem(c *fiber.Ctx) error {
	sid := session(c)
	id, ok := idParam(c)
	if !ok {
		return badRequest(c, "invalid item id")
	}
	var req itemReq
	if err := c.BodyParser(&req); err != nil || req.Quantity == nil {
		return badRequest(c, "quantity is required")
	}
	return c.JSON(h.Restaurant.Update(sid, id, *req.Quantity))
}

// DELETE /api/v1/restaurant/order/items/:id
func (h *RestaurantHandler) RemoveItem(c *fiber.Ctx) error {
	sid := session(c)
	id, ok := idParam(c)
	if !ok {
		return badRequest(c, "invalid item id")
	}
	return c.JSON(h.Restaurant.Remove(sid, id))
}

// POST /api/v1/restaurant/checkout
func (h *RestaurantHandler) Checkout(c *fiber.Ctx) error {
	sid := session(c)
	var req checkoutReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "tendered must be an amount")
	}
	rc, err := h.Restaurant.Checkout(c.UserContext(), sid, req.Tendered.String(), req.Table)
	if err != nil && !errors.Is(err, services.ErrTableNotFreed) {
		return fail(c, "restaurant.checkout", err)
	}
	c.Status(fiber.StatusCreated)
	if err != nil {
		// paid and stored; only the table board is stale
		applog.Error(c, "restaurant.table.free.fail", err, map[string]any{"order_id": rc.OrderID, "table": req.Table})
	}
	applog.Audit(c, "restaurant.checkout", map[string]any{
		"order_id": rc.OrderID, "table": req.Table, "total": rc.Total.String(),
	})
	return c.JSON(rc)
}

// DELETE /api/v1/restaurant/session
func (h *RestaurantHandler) EndSession(c *fiber.Ctx) error {
	h.Restaurant.End(session(c))
	return c.SendStatus(fiber.StatusNoContent)
}
