package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

func RegisterRoutes(app *fiber.App, handler *Handler) {
	registerPageRoutes(app, handler)
	registerAPIRoutes(app, handler)
}

func registerPageRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)
	if handler.metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(handler.metrics))
	}

	app.Get("/", handler.ShowDashboard)
	app.Get("/plan", handler.ShowPlan)
	app.Get("/watch/:day/:meal", handler.Watch)
	app.Get("/lang/:lang", handler.SetLanguage)
	app.Post("/settings/theme", handler.SetTheme)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")
	api.Get("/now", handler.GetNow)
	api.Get("/preferences", handler.GetPreferences)

	days := api.Group("/days")
	days.Get("", handler.GetDays)
	days.Get("/:index", handler.GetDay)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
