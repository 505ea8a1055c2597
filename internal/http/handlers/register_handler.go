package handlers

import (
	"encoding/json"

	applog "bizhub/internal/log"
	"bizhub/internal/services"
	"bizhub/internal/validate"

	"github.com/gofiber/fiber/v2"
)

// RegisterHandler serves the retail point of sale.
type RegisterHandler struct {
	Register *services.RegisterService
}

type itemReq struct {
	ProductID int64 `json:"productId" form:"productId"`
	Quantity  *int  `json:"quantity" form:"quantity"`
}

type checkoutReq struct {
	Tendered json.Number `json:"tendered" form:"tendered"`
	Table    string      `json:"table" form:"table"`
}

// GET /pos
func (h *RegisterHandler) Page(c *fiber.Ctx) error {
	sid := session(c)
	term := validate.Term(c.Query("q"))
	page, err := h.Register.Catalog(c.UserContext(), sid, term, validate.Page(c.Query("page")))
	if err != nil {
		applog.Error(c, "pos.page.fail", err, nil)
		return c.Status(fiber.StatusBadGateway).Render("notfound", fiber.Map{"Message": "Could not load products. Please try again."})
	}
	return render(c, "pos", fiber.Map{"Products": page, "Query": term, "Order": h.Register.Order(sid)})
}

// GET /api/v1/pos/products?q=&page=
func (h *RegisterHandler) Products(c *fiber.Ctx) error {
	sid := session(c)
	term := validate.Term(c.Query("q"))
	page, err := h.Register.Catalog(c.UserContext(), sid, term, validate.Page(c.Query("page")))
	if err != nil {
		return fail(c, "pos.products", err)
	}
	applog.Debug(c, "pos.products", map[string]any{"q": term, "page": page.Page, "matches": page.Matches})
	return c.JSON(page)
}

// POST /api/v1/pos/catalog/refresh
func (h *RegisterHandler) Refresh(c *fiber.Ctx) error {
	n, err := h.Register.Refresh(c.UserContext(), session(c))
	if err != nil {
		return fail(c, "pos.refresh", err)
	}
	applog.Info(c, "pos.refresh", map[string]any{"products": n})
	return c.JSON(fiber.Map{"products": n})
}

// GET /api/v1/pos/order
func (h *RegisterHandler) Order(c *fiber.Ctx) error {
	return c.JSON(h.Register.Order(session(c)))
}

// POST /api/v1/pos/order/items
func (h *RegisterHandler) AddItem(c *fiber.Ctx) error {
	sid := session(c)
	var req itemReq
	if err := c.BodyParser(&req); err != nil || req.ProductID <= 0 {
		return badRequest(c, "productId is required")
	}
	v, err := h.Register.Add(c.UserContext(), sid, req.ProductID)
	if err != nil {
		return fail(c, "pos.item.add", err)
	}
	return c.JSON(v)
}

// PUT /api/v1/pos/order/items/:id
func (h *RegisterHandler) UpdateItem(c *fiber.Ctx) error {
	sid := session(c)
	id, ok := idParam(c)
	if !ok {
		return badRequest(c, "invalid product id")
	}
	var req itemReq
	if err := c.BodyParser(&req); err != nil || req.Quantity == nil {
		return badRequest(c, "quantity is required")
	}
	return c.JSON(h.Register.Update(sid, id, *req.Quantity))
}

// DELETE /api/v1/pos/order/items/:id
func (h *RegisterHandler) RemoveItem(c *fiber.Ctx) error {
	sid := session(c)
	id, ok := idParam(c)
	if !ok {
		return badRequest(c, "invalid product id")
	}
	return c.JSON(h.Register.Remove(sid, id))
}

// POST /api/v1/pos/checkout
func (h *RegisterHandler) Checkout(c *fiber.Ctx) error {
	sid := session(c)
	var req checkoutReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "tendered must be an amount")
	}
	rc, err := h.Register.Checkout(c.UserContext(), sid, req.Tendered.String())
	if err != nil {
		return fail(c, "pos.checkout", err)
	}
	c.Status(fiber.StatusCreated)
	applog.Audit(c, "pos.checkout", map[string]any{
		"order_id": rc.OrderID, "total": rc.Total.String(), "change_due": rc.ChangeDue.String(),
	})
	return c.JSON(rc)
}

// DELETE /api/v1/pos/session
func (h *RegisterHandler) EndSession(c *fiber.Ctx) error {
	h.Register.End(session(c))
	return c.SendStatus(fiber.StatusNoContent)
}
