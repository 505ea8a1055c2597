package handlers

import (
	"strings"

	applog "bizhub/internal/log"
	"bizhub/internal/services"

	"github.com/gofiber/fiber/v2"
)

type WarehouseHandler struct {
	Warehouse *services.WarehouseService
}

// GET /api/v1/warehouse/stock
func (h *WarehouseHandler) List(c *fiber.Ctx) error {
	list, err := h.Warehouse.Stock()
	if err != nil {
		return fail(c, "warehouse.list", err)
	}
	return c.JSON(list)
}

// looseText takes a JSON string or number as typed text.
type looseText string

func (t *looseText) UnmarshalJSON(b []byte) error {
	*t = looseText(strings.Trim(string(b), `"`))
	return nil
}

// POST /api/v1/warehouse/stock
func (h *WarehouseHandler) Add(c *fiber.Ctx) error {
	var req struct {
		Name     string    `json:"name" form:"name"`
		Quantity looseText `json:"quantity" form:"quantity"`
		Location string    `json:"location" form:"location"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid stock entry")
	}
	e, err := h.Warehouse.Add(req.Name, string(req.Quantity), req.Location)
	if err != nil {
		return fail(c, "warehouse.add", err)
	}
	applog.Audit(c, "warehouse.add", map[string]any{"entry_id": e.ID, "qty": e.Quantity, "location": e.Location})
	return c.Status(fiber.StatusCreated).JSON(e)
}
