package services

import (
	"errors"
	"time"

	"github.com/Vinish1987/2pcinvestorbook/database"
	"github.com/Vinish1987/2pcinvestorbook/models"
	"github.com/Vinish1987/2pcinvestorbook/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm/clause"
)

var ErrInvalidMonthKey = errors.New("month key must be in YYYY-MM format")

// PayoutSummary aggregates one month's payout rows.
type PayoutSummary struct {
	TotalRequired  float64 `json:"totalRequired"`
	TotalPaid      float64 `json:"totalPaid"`
	PendingPayouts float64 `json:"pendingPayouts"`
	PaidCount      int     `json:"paidCount"`
	UnpaidCount    int     `json:"unpaidCount"`
}

// BuildPayoutRows materializes the payout rows a month would need for the
// given investments: one unpaid row per Active investment, carrying a
// snapshot of its stored monthly payout. Inactive investments are skipped.
func BuildPayoutRows(investments []models.Investment, monthKey string) []models.Payout {
	rows := make([]models.Payout, 0, len(investments))
	for _, inv := range investments {
		if inv.Status != models.InvestmentStatusActive {
			continue
		}
		rows = append(rows, models.Payout{
			InvestmentID: inv.ID,
			MonthYear:    monthKey,
			PayoutAmount: inv.MonthlyPayout,
			Status:       models.PayoutStatusNotPaid,
		})
	}
	return rows
}

// EnsurePayoutsForMonth guarantees one payout row per Active investment for
// monthKey. Rows that already exist are left untouched; the unique index on
// (investment_id, month_year) plus ON CONFLICT DO NOTHING makes the call
// safe to repeat, including concurrently.
func EnsurePayoutsForMonth(monthKey string) error {
	if !utils.ValidMonthKey(monthKey) {
		return ErrInvalidMonthKey
	}

	var active []models.Investment
	if err := database.DB.
		Select("id", "monthly_payout", "status").
		Where("status = ?", models.InvestmentStatusActive).
		Find(&active).Error; err != nil {
		return err
	}

	rows := BuildPayoutRows(active, monthKey)
	if len(rows) == 0 {
		return nil
	}

	return database.DB.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "investment_id"}, {Name: "month_year"}},
			DoNothing: true,
		}).
		Create(&rows).Error
}

// ApplyStatusTransition mutates a payout in memory for a Paid / Not Paid
// flip. Marking paid stamps DatePaid with the supplied date, or now's date
// when omitted; undoing clears it. Notes are overwritten only when supplied.
func ApplyStatusTransition(payout *models.Payout, status string, datePaid *time.Time, notes *string, now time.Time) {
	payout.Status = status
	if status == models.PayoutStatusPaid {
		if datePaid != nil {
			payout.DatePaid = datePaid
		} else {
			today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
			payout.DatePaid = &today
		}
	} else {
		payout.DatePaid = nil
	}
	if notes != nil {
		payout.Notes = notes
	}
}

// SetPayoutStatus loads one payout and persists a status transition.
func SetPayoutStatus(payoutID string, status string, datePaid *time.Time, notes *string) (models.Payout, error) {
	var payout models.Payout
	if err := database.DB.First(&payout, "id = ?", payoutID).Error; err != nil {
		return models.Payout{}, err
	}

	ApplyStatusTransition(&payout, status, datePaid, notes, time.Now())

	updates := map[string]interface{}{
		"status":    payout.Status,
		"date_paid": payout.DatePaid,
	}
	if notes != nil {
		updates["notes"] = payout.Notes
	}
	if err := database.DB.Model(&payout).Updates(updates).Error; err != nil {
		return models.Payout{}, err
	}
	return payout, nil
}

// SummarizeRows folds payout rows into a summary using exact decimal sums,
// so totalPaid + pendingPayouts always equals totalRequired.
func SummarizeRows(rows []models.Payout) PayoutSummary {
	required := decimal.Zero
	paid := decimal.Zero
	summary := PayoutSummary{}

	for _, row := range rows {
		amount := decimal.NewFromFloat(row.PayoutAmount)
		required = required.Add(amount)
		if row.Status == models.PayoutStatusPaid {
			paid = paid.Add(amount)
			summary.PaidCount++
		} else {
			summary.UnpaidCount++
		}
	}

	summary.TotalRequired, _ = required.Float64()
	summary.TotalPaid, _ = paid.Float64()
	summary.PendingPayouts, _ = required.Sub(paid).Float64()
	return summary
}

// SummarizeMonth computes the payout summary for one month. A month with no
// payouts summarizes to all zeros.
func SummarizeMonth(monthKey string) (PayoutSummary, error) {
	if !utils.ValidMonthKey(monthKey) {
		return PayoutSummary{}, ErrInvalidMonthKey
	}

	var rows []models.Payout
	if err := database.DB.
		Select("payout_amount", "status").
		Where("month_year = ?", monthKey).
		Find(&rows).Error; err != nil {
		return PayoutSummary{}, err
	}
	return SummarizeRows(rows), nil
}
