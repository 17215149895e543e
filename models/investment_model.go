package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	InvestmentTypeDaily   = "Daily"
	InvestmentTypeMonthly = "Monthly"
	InvestmentTypeOneTime = "One-time"

	InvestmentStatusActive   = "Active"
	InvestmentStatusInactive = "Inactive"
)

// Investment is one investor's registered capital placement and its terms.
// MonthlyPayout is derived from InvestedAmount and ReturnPercentage when the
// record is saved; it is a stored value and is never recomputed on read.
type Investment struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name             string     `gorm:"size:255;not null" json:"name"`
	Email            string     `gorm:"size:255;not null" json:"email"`
	PhoneNumber      string     `gorm:"size:50" json:"phone_number"`
	InvestedAmount   float64    `gorm:"type:numeric(15,2);not null" json:"invested_amount"`
	InvestmentDate   time.Time  `gorm:"type:date;not null" json:"investment_date"`
	InvestmentType   string     `gorm:"size:20;not null;default:'Monthly'" json:"investment_type"`
	ReturnPercentage float64    `gorm:"type:numeric(5,2);not null" json:"return_percentage"`
	MonthlyPayout    float64    `gorm:"type:numeric(15,2);not null" json:"monthly_payout"`
	UPITransactionID string     `gorm:"size:255" json:"upi_transaction_id"`
	TotalPaidOut     float64    `gorm:"type:numeric(15,2);not null;default:0.00" json:"total_paid_out"`
	Notes            *string    `gorm:"type:text" json:"notes"`
	Status           string     `gorm:"size:20;not null;default:'Active'" json:"status"`

	Payouts []Payout `gorm:"foreignkey:InvestmentID" json:"payouts,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
