package routes

import (
	"github.com/Vinish1987/2pcinvestorbook/handlers"
	"github.com/Vinish1987/2pcinvestorbook/middleware"
	"github.com/gofiber/fiber/v2"
)

func DashboardRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	dashboard := api.Group("/dashboard", middleware.Protected(), middleware.AdminRequired())
	dashboard.Get("/stats", handlers.GetDashboardStats)
	dashboard.Get("/chart", handlers.GetChartData)

	earnings := api.Group("/earnings", middleware.Protected(), middleware.AdminRequired())
	earnings.Get("", handlers.ListEarnings)
	earnings.Put("/:month", handlers.UpsertEarning)
}
