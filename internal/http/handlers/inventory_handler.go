package handlers

import (
	applog "bizhub/internal/log"
	"bizhub/internal/services"
	"bizhub/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type InventoryHandler struct {
	Inv *services.InventoryService
}

// GET /api/v1/inventory?q=&page=
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	page, err := h.Inv.List(c.UserContext(), validate.Term(c.Query("q")), validate.Page(c.Query("page")))
	if err != nil {
		return fail(c, "inventory.list", err)
	}
	return c.JSON(page)
}

// GET /api/v1/inventory/:id
func (h *InventoryHandler) Get(c *fiber.Ctx) error {
	id, ok := idParam(c)
	if !ok {
		return badRequest(c, "invalid product id")
	}
	p, err := h.Inv.Get(c.UserContext(), id)
	if err != nil {
		return fail(c, "inventory.get", err)
	}
	return c.JSON(p)
}

// POST /api/v1/inventory
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in services.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid product")
	}
	p, err := h.Inv.Create(c.UserContext(), in)
	if err != nil {
		return fail(c, "inventory.create", err)
	}
	applog.Audit(c, "inventory.create", map[string]any{"product_id": p.ID, "qty": p.Quantity})
	return c.Status(fiber.StatusCreated).JSON(p)
}

// PUT /api/v1/inventory/:id
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	id, ok := idParam(c)
	if !ok {
		return badRequest(c, "invalid product id")
	}
	var in services.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid product")
	}
	p, err := h.Inv.Update(c.UserContext(), id, in)
	if err != nil {
		return fail(c, "inventory.update", err)
	}
	applog.Audit(c, "inventory.update", map[string]any{"product_id": id, "qty": p.Quantity})
	return c.JSON(p)
}

// DELETE /api/v1/inventory/:id
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	id, ok := idParam(c)
	if !ok {
		return badRequest(c, "invalid product id")
	}
	if err := h.Inv.Delete(c.UserContext(), id); err != nil {
		return fail(c, "inventory.delete", err)
	}
	applog.Audit(c, "inventory.delete", map[string]any{"product_id": id})
	return c.SendStatus(fiber.StatusNoContent)
}
