package handlers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/Vinish1987/2pcinvestorbook/database"
	"github.com/Vinish1987/2pcinvestorbook/models"
	"github.com/Vinish1987/2pcinvestorbook/services"
	"github.com/Vinish1987/2pcinvestorbook/utils"
	"github.com/gofiber/fiber/v2"
)

type InvestorRequest struct {
	Name             string   `json:"name" validate:"required,min=2"`
	Email            string   `json:"email" validate:"required,email"`
	PhoneNumber      string   `json:"phone_number" validate:"omitempty,max=50"`
	InvestedAmount   float64  `json:"invested_amount" validate:"gte=0"`
	InvestmentDate   string   `json:"investment_date" validate:"required,datetime=2006-01-02"`
	InvestmentType   string   `json:"investment_type" validate:"required,oneof=Daily Monthly One-time"`
	ReturnPercentage *float64 `json:"return_percentage" validate:"omitempty,gte=0,lte=100"`
	UPITransactionID string   `json:"upi_transaction_id" validate:"omitempty,max=255"`
	TotalPaidOut     *float64 `json:"total_paid_out" validate:"omitempty,gte=0"`
	Notes            *string  `json:"notes"`
	Status           string   `json:"status" validate:"required,oneof=Active Inactive"`
}

func ListInvestors(c *fiber.Ctx) error {
	var investments []models.Investment
	if err := database.DB.Order("created_at desc").Find(&investments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(investments)
}

func CreateInvestor(c *fiber.Ctx) error {
	var req InvestorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	investmentDate, err := time.Parse("2006-01-02", req.InvestmentDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid investment_date format. Use YYYY-MM-DD."})
	}

	returnPercentage := 0.0
	if req.ReturnPercentage != nil {
		returnPercentage = *req.ReturnPercentage
	} else {
		returnPercentage, err = services.DefaultReturnPercentage()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to resolve default return percentage"})
		}
	}

	investment := models.Investment{
		Name:             req.Name,
		Email:            req.Email,
		PhoneNumber:      req.PhoneNumber,
		InvestedAmount:   req.InvestedAmount,
		InvestmentDate:   investmentDate,
		InvestmentType:   req.InvestmentType,
		ReturnPercentage: returnPercentage,
		MonthlyPayout:    utils.DerivePayout(req.InvestedAmount, returnPercentage),
		UPITransactionID: req.UPITransactionID,
		Notes:            req.Notes,
		Status:           req.Status,
	}
	if req.TotalPaidOut != nil {
		investment.TotalPaidOut = *req.TotalPaidOut
	}

	if err := database.DB.Create(&investment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create investor"})
	}
	return c.Status(fiber.StatusCreated).JSON(investment)
}

func UpdateInvestor(c *fiber.Ctx) error {
	investorID := c.Params("investorId")

	var investment models.Investment
	if err := database.DB.First(&investment, "id = ?", investorID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Investor not found"})
	}

	var req InvestorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	investmentDate, err := time.Parse("2006-01-02", req.InvestmentDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid investment_date format. Use YYYY-MM-DD."})
	}

	investment.Name = req.Name
	investment.Email = req.Email
	investment.PhoneNumber = req.PhoneNumber
	investment.InvestedAmount = req.InvestedAmount
	investment.InvestmentDate = investmentDate
	investment.InvestmentType = req.InvestmentType
	if req.ReturnPercentage != nil {
		investment.ReturnPercentage = *req.ReturnPercentage
	}
	// Re-saving recomputes the stored payout. Payout rows already generated
	// keep their snapshot amounts.
	investment.MonthlyPayout = utils.DerivePayout(investment.InvestedAmount, investment.ReturnPercentage)
	investment.UPITransactionID = req.UPITransactionID
	if req.TotalPaidOut != nil {
		investment.TotalPaidOut = *req.TotalPaidOut
	}
	if req.Notes != nil {
		investment.Notes = req.Notes
	}
	investment.Status = req.Status

	if err := database.DB.Save(&investment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update investor"})
	}
	return c.JSON(investment)
}

func DeleteInvestor(c *fiber.Ctx) error {
	investorID := c.Params("investorId")

	var investment models.Investment
	if err := database.DB.First(&investment, "id = ?", investorID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Investor not found"})
	}

	if err := database.DB.Delete(&investment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete investor"})
	}
	return c.JSON(fiber.Map{"message": "Investor deleted successfully"})
}

// csvBytes renders a header row plus data rows with standard CSV escaping.
// Rows are written in the order supplied.
func csvBytes(headers []string, rows [][]string) ([]byte, error) {
	b := new(bytes.Buffer)
	w := csv.NewWriter(b)

	if err := w.Write(headers); err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func ExportInvestors(c *fiber.Ctx) error {
	var investments []models.Investment
	if err := database.DB.Order("created_at desc").Find(&investments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	headers := []string{
		"Name", "Email", "Phone Number", "Invested Amount",
		"Investment Date", "Investment Type", "Return Percentage",
		"Monthly Payout", "UPI Transaction ID", "Total Paid Out",
		"Status", "Notes", "Created At", "Updated At",
	}

	rows := make([][]string, 0, len(investments))
	for _, inv := range investments {
		notes := ""
		if inv.Notes != nil {
			notes = *inv.Notes
		}
		rows = append(rows, []string{
			inv.Name,
			inv.Email,
			inv.PhoneNumber,
			fmt.Sprintf("%.2f", inv.InvestedAmount),
			inv.InvestmentDate.Format("2006-01-02"),
			inv.InvestmentType,
			fmt.Sprintf("%.2f", inv.ReturnPercentage),
			fmt.Sprintf("%.2f", inv.MonthlyPayout),
			inv.UPITransactionID,
			fmt.Sprintf("%.2f", inv.TotalPaidOut),
			inv.Status,
			notes,
			inv.CreatedAt.Format("2006-01-02 15:04"),
			inv.UpdatedAt.Format("2006-01-02 15:04"),
		})
	}

	b, err := csvBytes(headers, rows)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to write CSV"})
	}

	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"investors_%s.csv\"", time.Now().Format("2006-01-02")))
	return c.Send(b)
}
