package routes

import (
	"github.com/Vinish1987/2pcinvestorbook/handlers"
	"github.com/Vinish1987/2pcinvestorbook/middleware"
	"github.com/gofiber/fiber/v2"
)

func InvestorRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	investors := api.Group("/investors", middleware.Protected(), middleware.AdminRequired())
	investors.Get("", handlers.ListInvestors)
	investors.Post("", handlers.CreateInvestor)
	investors.Get("/export", handlers.ExportInvestors)
	investors.Put("/:investorId", handlers.UpdateInvestor)
	investors.Delete("/:investorId", handlers.DeleteInvestor)
}
