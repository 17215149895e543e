package services

import (
	"testing"
	"time"

	"github.com/Vinish1987/2pcinvestorbook/models"
	"github.com/google/uuid"
)

func activeInvestment(payout float64) models.Investment {
	return models.Investment{
		ID:            uuid.New(),
		Status:        models.InvestmentStatusActive,
		MonthlyPayout: payout,
	}
}

func TestBuildPayoutRows(t *testing.T) {
	active := activeInvestment(2000.00)
	inactive := models.Investment{
		ID:            uuid.New(),
		Status:        models.InvestmentStatusInactive,
		MonthlyPayout: 500.00,
	}

	rows := BuildPayoutRows([]models.Investment{active, inactive}, "2026-03")

	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	row := rows[0]
	if row.InvestmentID != active.ID {
		t.Errorf("row belongs to %s; want %s", row.InvestmentID, active.ID)
	}
	if row.MonthYear != "2026-03" {
		t.Errorf("month year = %s; want 2026-03", row.MonthYear)
	}
	if row.PayoutAmount != 2000.00 {
		t.Errorf("payout amount = %v; want snapshot 2000.00", row.PayoutAmount)
	}
	if row.Status != models.PayoutStatusNotPaid {
		t.Errorf("status = %s; want Not Paid", row.Status)
	}
}

func TestBuildPayoutRowsEmpty(t *testing.T) {
	if rows := BuildPayoutRows(nil, "2026-03"); len(rows) != 0 {
		t.Errorf("expected no rows for no investments, got %d", len(rows))
	}
	inactiveOnly := []models.Investment{
		{ID: uuid.New(), Status: models.InvestmentStatusInactive, MonthlyPayout: 100},
	}
	if rows := BuildPayoutRows(inactiveOnly, "2026-03"); len(rows) != 0 {
		t.Errorf("expected no rows for inactive-only set, got %d", len(rows))
	}
}

func TestBuildPayoutRowsRepeatable(t *testing.T) {
	investments := []models.Investment{
		activeInvestment(1000.00),
		activeInvestment(2500.50),
	}

	first := BuildPayoutRows(investments, "2026-04")
	second := BuildPayoutRows(investments, "2026-04")

	if len(first) != len(second) {
		t.Fatalf("row counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].InvestmentID != second[i].InvestmentID ||
			first[i].MonthYear != second[i].MonthYear ||
			first[i].PayoutAmount != second[i].PayoutAmount ||
			first[i].Status != second[i].Status {
			t.Errorf("row %d differs between calls: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestApplyStatusTransitionRoundTrip(t *testing.T) {
	originalNotes := "carried over"
	payout := models.Payout{
		Status: models.PayoutStatusNotPaid,
		Notes:  &originalNotes,
	}
	now := time.Date(2026, time.March, 10, 14, 30, 0, 0, time.UTC)

	ApplyStatusTransition(&payout, models.PayoutStatusPaid, nil, nil, now)
	if payout.Status != models.PayoutStatusPaid {
		t.Fatalf("status = %s; want Paid", payout.Status)
	}
	if payout.DatePaid == nil {
		t.Fatal("date paid not stamped")
	}
	want := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	if !payout.DatePaid.Equal(want) {
		t.Errorf("date paid = %v; want %v", payout.DatePaid, want)
	}

	ApplyStatusTransition(&payout, models.PayoutStatusNotPaid, nil, nil, now)
	if payout.Status != models.PayoutStatusNotPaid {
		t.Errorf("status after undo = %s; want Not Paid", payout.Status)
	}
	if payout.DatePaid != nil {
		t.Errorf("date paid after undo = %v; want nil", payout.DatePaid)
	}
	if payout.Notes == nil || *payout.Notes != originalNotes {
		t.Errorf("notes did not survive round trip: %v", payout.Notes)
	}
}

func TestApplyStatusTransitionExplicitDateAndNotes(t *testing.T) {
	payout := models.Payout{Status: models.PayoutStatusNotPaid}
	now := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	paidOn := time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)
	notes := "paid via UPI"

	ApplyStatusTransition(&payout, models.PayoutStatusPaid, &paidOn, &notes, now)

	if payout.DatePaid == nil || !payout.DatePaid.Equal(paidOn) {
		t.Errorf("date paid = %v; want %v", payout.DatePaid, paidOn)
	}
	if payout.Notes == nil || *payout.Notes != notes {
		t.Errorf("notes = %v; want %q", payout.Notes, notes)
	}
}

func TestSummarizeRows(t *testing.T) {
	rows := []models.Payout{
		{PayoutAmount: 2000.00, Status: models.PayoutStatusPaid},
		{PayoutAmount: 1500.25, Status: models.PayoutStatusNotPaid},
		{PayoutAmount: 0.25, Status: models.PayoutStatusNotPaid},
		{PayoutAmount: 0.50, Status: models.PayoutStatusPaid},
	}

	summary := SummarizeRows(rows)

	if summary.TotalRequired != 3501.00 {
		t.Errorf("totalRequired = %v; want 3501.00", summary.TotalRequired)
	}
	if summary.TotalPaid != 2000.50 {
		t.Errorf("totalPaid = %v; want 2000.50", summary.TotalPaid)
	}
	if summary.PendingPayouts != 1500.50 {
		t.Errorf("pendingPayouts = %v; want 1500.50", summary.PendingPayouts)
	}
	if summary.PaidCount != 2 || summary.UnpaidCount != 2 {
		t.Errorf("counts = %d paid / %d unpaid; want 2 / 2", summary.PaidCount, summary.UnpaidCount)
	}
	if summary.PaidCount+summary.UnpaidCount != len(rows) {
		t.Errorf("counts do not cover all rows")
	}
	if summary.TotalPaid+summary.PendingPayouts != summary.TotalRequired {
		t.Errorf("paid %v + pending %v != required %v", summary.TotalPaid, summary.PendingPayouts, summary.TotalRequired)
	}
}

func TestSummarizeRowsEmpty(t *testing.T) {
	summary := SummarizeRows(nil)
	if summary != (PayoutSummary{}) {
		t.Errorf("empty month should summarize to zeros, got %+v", summary)
	}
}
