package handlers

import (
	"errors"
	"time"

	"github.com/Vinish1987/2pcinvestorbook/database"
	"github.com/Vinish1987/2pcinvestorbook/models"
	"github.com/Vinish1987/2pcinvestorbook/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DashboardStatsResponse struct {
	TotalInvestors          int64   `json:"totalInvestors"`
	TotalInvestmentReceived float64 `json:"totalInvestmentReceived"`
	TotalPayoutThisMonth    float64 `json:"totalPayoutThisMonth"`
	TotalProfitRetained     float64 `json:"totalProfitRetained"`
}

type ChartPoint struct {
	Month           string  `json:"month"`
	TotalInvestment float64 `json:"totalInvestment"`
	MonthlyEarnings float64 `json:"monthlyEarnings"`
}

func GetDashboardStats(c *fiber.Ctx) error {
	var response DashboardStatsResponse

	database.DB.Model(&models.Investment{}).Count(&response.TotalInvestors)
	database.DB.Model(&models.Investment{}).Select("COALESCE(SUM(invested_amount), 0)").Row().Scan(&response.TotalInvestmentReceived)
	database.DB.Model(&models.Investment{}).Select("COALESCE(SUM(monthly_payout), 0)").Row().Scan(&response.TotalPayoutThisMonth)

	var earning models.Earning
	monthlyEarnings := 0.0
	err := database.DB.Where("month_year = ?", utils.CurrentMonthKey()).First(&earning).Error
	if err == nil {
		monthlyEarnings = earning.TotalEarnings
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	response.TotalProfitRetained = monthlyEarnings - response.TotalPayoutThisMonth

	return c.JSON(response)
}

// GetChartData returns six months of cumulative investment against recorded
// earnings, oldest first.
func GetChartData(c *fiber.Ctx) error {
	var investments []models.Investment
	if err := database.DB.Select("invested_amount", "investment_date").Find(&investments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	var earnings []models.Earning
	if err := database.DB.Find(&earnings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	earningsByMonth := make(map[string]float64, len(earnings))
	for _, e := range earnings {
		earningsByMonth[e.MonthYear] = e.TotalEarnings
	}

	now := time.Now()
	points := make([]ChartPoint, 0, 6)
	for i := 5; i >= 0; i-- {
		month := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		monthKey := month.Format("2006-01")

		totalInvestment := 0.0
		for _, inv := range investments {
			if inv.InvestmentDate.Format("2006-01") <= monthKey {
				totalInvestment += inv.InvestedAmount
			}
		}

		points = append(points, ChartPoint{
			Month:           month.Format("Jan 2006"),
			TotalInvestment: totalInvestment,
			MonthlyEarnings: earningsByMonth[monthKey],
		})
	}
	return c.JSON(points)
}

func ListEarnings(c *fiber.Ctx) error {
	var earnings []models.Earning
	if err := database.DB.Order("month_year desc").Find(&earnings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(earnings)
}

type EarningRequest struct {
	TotalEarnings float64 `json:"total_earnings" validate:"gte=0"`
}

// UpsertEarning records total earnings for one month, keyed by YYYY-MM.
func UpsertEarning(c *fiber.Ctx) error {
	month := c.Params("month")
	if !utils.ValidMonthKey(month) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "month key must be in YYYY-MM format"})
	}

	var req EarningRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var earning models.Earning
	err := database.DB.Where("month_year = ?", month).First(&earning).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		earning = models.Earning{MonthYear: month, TotalEarnings: req.TotalEarnings}
		if err := database.DB.Create(&earning).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record earnings"})
		}
		return c.Status(fiber.StatusCreated).JSON(earning)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	earning.TotalEarnings = req.TotalEarnings
	if err := database.DB.Save(&earning).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record earnings"})
	}
	return c.JSON(earning)
}
