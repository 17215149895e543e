package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/Vinish1987/2pcinvestorbook/database"
	"github.com/Vinish1987/2pcinvestorbook/models"
	"github.com/Vinish1987/2pcinvestorbook/services"
	"github.com/Vinish1987/2pcinvestorbook/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PayoutStatusRequest struct {
	Status   string  `json:"status" validate:"required,oneof=Paid 'Not Paid'"`
	DatePaid *string `json:"date_paid" validate:"omitempty,datetime=2006-01-02"`
	Notes    *string `json:"notes"`
}

// PayoutResponse decorates a payout row with the display-only overdue flag.
type PayoutResponse struct {
	models.Payout
	Overdue bool `json:"overdue"`
}

func monthParam(c *fiber.Ctx) (string, error) {
	month := c.Query("month", utils.CurrentMonthKey())
	if !utils.ValidMonthKey(month) {
		return "", services.ErrInvalidMonthKey
	}
	return month, nil
}

// ListPayouts materializes any missing payout rows for the month, then
// returns the month's payouts joined with their investors, newest first.
func ListPayouts(c *fiber.Ctx) error {
	month, err := monthParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := services.EnsurePayoutsForMonth(month); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate payouts for month"})
	}

	var payouts []models.Payout
	if err := database.DB.
		Preload("Investment").
		Where("month_year = ?", month).
		Order("created_at desc").
		Find(&payouts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	now := time.Now()
	response := make([]PayoutResponse, 0, len(payouts))
	for _, p := range payouts {
		response = append(response, PayoutResponse{
			Payout:  p,
			Overdue: utils.IsOverdue(p.Status, p.MonthYear, now),
		})
	}
	return c.JSON(response)
}

func UpdatePayoutStatus(c *fiber.Ctx) error {
	payoutID := c.Params("payoutId")

	var req PayoutStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var datePaid *time.Time
	if req.DatePaid != nil {
		parsed, err := time.Parse("2006-01-02", *req.DatePaid)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date_paid format. Use YYYY-MM-DD."})
		}
		datePaid = &parsed
	}

	payout, err := services.SetPayoutStatus(payoutID, req.Status, datePaid, req.Notes)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payout not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update payout status"})
	}
	return c.JSON(payout)
}

func GetPayoutSummary(c *fiber.Ctx) error {
	month, err := monthParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	summary, err := services.SummarizeMonth(month)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to summarize payouts"})
	}
	return c.JSON(summary)
}

func ListMonthOptions(c *fiber.Ctx) error {
	return c.JSON(utils.MonthOptions(time.Now()))
}

func ExportPayouts(c *fiber.Ctx) error {
	month, err := monthParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := services.EnsurePayoutsForMonth(month); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate payouts for month"})
	}

	var payouts []models.Payout
	if err := database.DB.
		Preload("Investment").
		Where("month_year = ?", month).
		Order("created_at desc").
		Find(&payouts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	headers := []string{
		"User Name", "Email", "Phone", "Invested Amount",
		"Monthly Payout", "Paid Month", "Status", "Date Paid", "Notes",
	}

	rows := make([][]string, 0, len(payouts))
	for _, p := range payouts {
		datePaid := ""
		if p.DatePaid != nil {
			datePaid = p.DatePaid.Format("2006-01-02")
		}
		notes := ""
		if p.Notes != nil {
			notes = *p.Notes
		}
		rows = append(rows, []string{
			p.Investment.Name,
			p.Investment.Email,
			p.Investment.PhoneNumber,
			fmt.Sprintf("%.2f", p.Investment.InvestedAmount),
			fmt.Sprintf("%.2f", p.PayoutAmount),
			month,
			p.Status,
			datePaid,
			notes,
		})
	}

	b, err := csvBytes(headers, rows)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to write CSV"})
	}

	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"payouts_%s.csv\"", month))
	return c.Send(b)
}
