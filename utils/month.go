package utils

import (
	"time"

	"github.com/Vinish1987/2pcinvestorbook/models"
)

const monthKeyLayout = "2006-01"

// Payouts for the current month count as overdue once the day of month
// passes this cutoff.
const overdueCutoffDay = 5

// MonthOption is one entry of the month selector.
type MonthOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// CurrentMonthKey returns the YYYY-MM key for the server's local time. The
// server timezone is fixed per deployment so operator and reports agree.
func CurrentMonthKey() string {
	return time.Now().Format(monthKeyLayout)
}

// ValidMonthKey reports whether s is a well-formed YYYY-MM key.
func ValidMonthKey(s string) bool {
	if len(s) != len(monthKeyLayout) {
		return false
	}
	_, err := time.Parse(monthKeyLayout, s)
	return err == nil
}

// FormatMonthKey renders "2026-01" as "January 2026". Malformed keys are
// returned unchanged.
func FormatMonthKey(key string) string {
	t, err := time.Parse(monthKeyLayout, key)
	if err != nil {
		return key
	}
	return t.Format("January 2006")
}

// MonthOptions spans 12 months back through 3 months forward of now,
// chronologically ascending.
func MonthOptions(now time.Time) []MonthOption {
	options := make([]MonthOption, 0, 16)
	for i := -12; i <= 3; i++ {
		month := time.Date(now.Year(), now.Month()+time.Month(i), 1, 0, 0, 0, 0, now.Location())
		options = append(options, MonthOption{
			Value: month.Format(monthKeyLayout),
			Label: month.Format("January 2006"),
		})
	}
	return options
}

// IsOverdue reports whether an unpaid payout for monthKey should be flagged
// as overdue at time now. Only the current month can be overdue, and only
// after the cutoff day. Display-only; never persisted.
func IsOverdue(status, monthKey string, now time.Time) bool {
	if status != models.PayoutStatusNotPaid {
		return false
	}
	if monthKey != now.Format(monthKeyLayout) {
		return false
	}
	return now.Day() > overdueCutoffDay
}
