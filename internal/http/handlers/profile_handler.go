package handlers

import (
	"bizhub/internal/domain"
	applog "bizhub/internal/log"
	"bizhub/internal/services"

	"github.com/gofiber/fiber/v2"
)

type ProfileHandler struct {
	Profile *services.ProfileService
}

// GET /api/v1/profile
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	p, err := h.Profile.Get()
	if err != nil {
		return fail(c, "profile.get", err)
	}
	return c.JSON(p)
}

// PUT /api/v1/profile
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	var in services.ContactInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid profile")
	}
	p, err := h.Profile.Update(in)
	if err != nil {
		return fail(c, "profile.update", err)
	}
	applog.Audit(c, "profile.update", nil)
	return c.JSON(p)
}

// POST /api/v1/profile/addresses
func (h *ProfileHandler) AddAddress(c *fiber.Ctx) error {
	var a domain.Address
	if err := c.BodyParser(&a); err != nil {
		return badRequest(c, "invalid address")
	}
	a, err := h.Profile.AddAddress(a)
	if err != nil {
		return fail(c, "profile.address.add", err)
	}
	return c.Status(fiber.StatusCreated).JSON(a)
}

// PUT /api/v1/profile/addresses/:id
func (h *ProfileHandler) UpdateAddress(c *fiber.Ctx) error {
	id, ok := idParam(c)
	if !ok {
		return badRequest(c, "invalid address id")
	}
	var a domain.Address
	if err := c.BodyParser(&a); err != nil {
		return badRequest(c, "invalid address")
	}
	a, err := h.Profile.UpdateAddress(id, a)
	if err != nil {
		return fail(c, "profile.address.update", err)
	}
	return c.JSON(a)
}

// DELETE /api/v1/profile/addresses/:id
func (h *ProfileHandler) RemoveAddress(c *fiber.Ctx) error {
	id, ok := idParam(c)
	if !ok {
		return badRequest(c, "invalid address id")
	}
	if err := h.Profile.RemoveAddress(id); err != nil {
		return fail(c, "profile.address.remove", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
