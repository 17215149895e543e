package utils

import (
	"testing"
	"time"

	"github.com/Vinish1987/2pcinvestorbook/models"
)

func TestValidMonthKey(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"2026-01", true},
		{"2026-12", true},
		{"2026-13", false},
		{"2026-00", false},
		{"2026-1", false},
		{"26-01", false},
		{"2026/01", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidMonthKey(tt.input); got != tt.valid {
			t.Errorf("ValidMonthKey(%q) = %v; want %v", tt.input, got, tt.valid)
		}
	}
}

func TestFormatMonthKey(t *testing.T) {
	if got := FormatMonthKey("2026-01"); got != "January 2026" {
		t.Errorf("FormatMonthKey(2026-01) = %q; want January 2026", got)
	}
	if got := FormatMonthKey("garbage"); got != "garbage" {
		t.Errorf("FormatMonthKey(garbage) = %q; want input back", got)
	}
}

func TestMonthOptionsWindow(t *testing.T) {
	now := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)
	options := MonthOptions(now)

	if len(options) != 16 {
		t.Fatalf("expected 16 options, got %d", len(options))
	}
	if options[0].Value != "2025-03" {
		t.Errorf("first option = %s; want 2025-03", options[0].Value)
	}
	if options[12].Value != "2026-03" {
		t.Errorf("current-month option = %s; want 2026-03", options[12].Value)
	}
	if options[15].Value != "2026-06" {
		t.Errorf("last option = %s; want 2026-06", options[15].Value)
	}
	for i := 1; i < len(options); i++ {
		if options[i].Value <= options[i-1].Value {
			t.Errorf("options not ascending at %d: %s then %s", i, options[i-1].Value, options[i].Value)
		}
	}
}

func TestMonthOptionsYearBoundary(t *testing.T) {
	now := time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC)
	options := MonthOptions(now)

	if options[0].Value != "2025-01" {
		t.Errorf("first option = %s; want 2025-01", options[0].Value)
	}
	if options[0].Label != "January 2025" {
		t.Errorf("first label = %s; want January 2025", options[0].Label)
	}
	if options[15].Value != "2026-04" {
		t.Errorf("last option = %s; want 2026-04", options[15].Value)
	}
}

func TestIsOverdue(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		monthKey string
		now      time.Time
		overdue  bool
	}{
		{
			name:     "unpaid past cutoff",
			status:   models.PayoutStatusNotPaid,
			monthKey: "2026-03",
			now:      time.Date(2026, time.March, 6, 0, 0, 0, 0, time.UTC),
			overdue:  true,
		},
		{
			name:     "unpaid on cutoff day",
			status:   models.PayoutStatusNotPaid,
			monthKey: "2026-03",
			now:      time.Date(2026, time.March, 5, 23, 0, 0, 0, time.UTC),
			overdue:  false,
		},
		{
			name:     "paid past cutoff",
			status:   models.PayoutStatusPaid,
			monthKey: "2026-03",
			now:      time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC),
			overdue:  false,
		},
		{
			name:     "unpaid but past month",
			status:   models.PayoutStatusNotPaid,
			monthKey: "2026-02",
			now:      time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC),
			overdue:  false,
		},
		{
			name:     "unpaid future month",
			status:   models.PayoutStatusNotPaid,
			monthKey: "2026-04",
			now:      time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC),
			overdue:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsOverdue(tt.status, tt.monthKey, tt.now); got != tt.overdue {
				t.Errorf("IsOverdue(%q, %q, %v) = %v; want %v", tt.status, tt.monthKey, tt.now, got, tt.overdue)
			}
		})
	}
}
