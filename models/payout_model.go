package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	PayoutStatusPaid    = "Paid"
	PayoutStatusNotPaid = "Not Paid"
)

// Payout is one month's obligation to pay an investor. PayoutAmount is a
// snapshot of the investment's MonthlyPayout at generation time; editing the
// investment afterwards does not touch rows that already exist. The composite
// unique index on (investment_id, month_year) is what makes generation safe
// to repeat.
type Payout struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	InvestmentID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_payouts_investment_month" json:"investment_id"`
	MonthYear    string     `gorm:"size:7;not null;uniqueIndex:idx_payouts_investment_month" json:"month_year"`
	PayoutAmount float64    `gorm:"type:numeric(15,2);not null" json:"payout_amount"`
	Status       string     `gorm:"size:20;not null;default:'Not Paid'" json:"status"`
	DatePaid     *time.Time `gorm:"type:date" json:"date_paid"`
	Notes        *string    `gorm:"type:text" json:"notes"`

	Investment Investment `gorm:"foreignkey:InvestmentID" json:"investment,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
