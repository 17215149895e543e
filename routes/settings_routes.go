package routes

import (
	"github.com/Vinish1987/2pcinvestorbook/handlers"
	"github.com/Vinish1987/2pcinvestorbook/middleware"
	"github.com/gofiber/fiber/v2"
)

func SettingsRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	settings := api.Group("/settings", middleware.Protected(), middleware.AdminRequired())
	settings.Get("", handlers.GetSettings)
	settings.Put("", handlers.UpdateSettings)
}
