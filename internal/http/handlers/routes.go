package handlers

import (
	"time"

	applog "bizhub/internal/log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// Routes mounts the pages and the JSON API.
func Routes(app *fiber.App, d *Deps) {
	app.Use(WithSettings(d.Settings))

	// Pages
	app.Get("/", d.DashboardHandler.Home)
	app.Get("/pos", d.RegisterHandler.Page)
	app.Get("/settings", d.SettingsHandler.Page)
	app.Post("/settings", d.SettingsHandler.Save)
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })

	api := app.Group("/api/v1")
	checkoutLimiter := limiter.New(limiter.Config{
		Max:        20,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + "|checkout"
		},
		LimitReached: func(c *fiber.Ctx) error {
			applog.Warn(c, "rate.checkout.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded, retry soon"})
		},
	})

	// Retail point of sale
	retail := api.Group("/pos")
	retail.Get("/products", d.RegisterHandler.Products)
	retail.Post("/catalog/refresh", d.RegisterHandler.Refresh)
	retail.Get("/order", d.RegisterHandler.Order)
	retail.Post("/order/items", d.RegisterHandler.AddItem)
	retail.Put("/order/items/:id", d.RegisterHandler.UpdateItem)
	retail.Delete("/order/items/:id", d.RegisterHandler.RemoveItem)
	retail.Post("/checkout", checkoutLimiter, d.RegisterHandler.Checkout)
	retail.Delete("/session", d.RegisterHandler.EndSession)

	// Restaurant
	rest := api.Group("/restaurant")
	rest.Get("/menu", d.RestaurantHandler.Menu)
	rest.Get("/tables", d.RestaurantHandler.Tables)
	rest.Put("/tables/:id", d.RestaurantHandler.SetTableStatus)
	rest.Get("/order", d.RestaurantHandler.Order)
	rest.Post("/order/items", d.RestaurantHandler.AddItem)
	rest.Put("/order/items/:id", d.RestaurantHandler.UpdateItem)
	rest.Delete("/order/items/:id", d.RestaurantHandler.RemoveItem)
	rest.Post("/checkout", checkoutLimiter, d.RestaurantHandler.Checkout)
	rest.Delete("/session", d.RestaurantHandler.EndSession)

	// Inventory
	api.Get("/inventory", d.InventoryHandler.List)
	api.Get("/inventory/:id", d.InventoryHandler.Get)
	api.Post("/inventory", d.InventoryHandler.Create)
	api.Put("/inventory/:id", d.InventoryHandler.Update)
	api.Delete("/inventory/:id", d.InventoryHandler.Delete)

	// Settings & account
	api.Get("/settings", d.SettingsHandler.Get)
	api.Put("/settings", d.SettingsHandler.Update)
	api.Put("/settings/navigation/:id", d.SettingsHandler.SetNav)
	api.Post("/account/password", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Warn(c, "rate.password.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too many attempts, please try again later"})
		},
	}), d.SettingsHandler.ChangePassword)
	api.Delete("/account", d.SettingsHandler.DeleteAccount)

	// Profile
	api.Get("/profile", d.ProfileHandler.Get)
	api.Put("/profile", d.ProfileHandler.Update)
	api.Post("/profile/addresses", d.ProfileHandler.AddAddress)
	api.Put("/profile/addresses/:id", d.ProfileHandler.UpdateAddress)
	api.Delete("/profile/addresses/:id", d.ProfileHandler.RemoveAddress)

	// Warehouse, help, dashboard
	api.Get("/warehouse/stock", d.WarehouseHandler.List)
	api.Post("/warehouse/stock", d.WarehouseHandler.Add)
	api.Get("/help/faqs", d.HelpHandler.FAQs)
	api.Get("/widgets", d.DashboardHandler.List)
	api.Post("/widgets", d.DashboardHandler.Add)
	api.Put("/widgets/:id/move", d.DashboardHandler.Move)
	api.Delete("/widgets/:id", d.DashboardHandler.Remove)
	api.Get("/sales", d.DashboardHandler.Sales)

	app.Use(NotFound)
}
