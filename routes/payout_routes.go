package routes

import (
	"github.com/Vinish1987/2pcinvestorbook/handlers"
	"github.com/Vinish1987/2pcinvestorbook/middleware"
	"github.com/gofiber/fiber/v2"
)

func PayoutRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	payouts := api.Group("/payouts", middleware.Protected(), middleware.AdminRequired())
	payouts.Get("", handlers.ListPayouts)
	payouts.Get("/summary", handlers.GetPayoutSummary)
	payouts.Get("/months", handlers.ListMonthOptions)
	payouts.Get("/export", handlers.ExportPayouts)
	payouts.Put("/:payoutId/status", handlers.UpdatePayoutStatus)
}
