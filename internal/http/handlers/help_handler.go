package handlers

import (
	"bizhub/internal/services"
	"bizhub/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type HelpHandler struct {
	Help *services.HelpService
}

// GET /api/v1/help/faqs?q=
func (h *HelpHandler) FAQs(c *fiber.Ctx) error {
	faqs, err := h.Help.FAQs(validate.Term(c.Query("q")))
	if err != nil {
		return fail(c, "help.faqs", err)
	}
	return c.JSON(faqs)
}
