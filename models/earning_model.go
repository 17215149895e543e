package models

import (
	"time"

	"github.com/google/uuid"
)

// Earning records the operation's total earnings for one calendar month,
// entered by the operator and read by the dashboard.
type Earning struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MonthYear     string    `gorm:"size:7;not null;unique" json:"month_year"`
	TotalEarnings float64   `gorm:"type:numeric(15,2);not null;default:0.00" json:"total_earnings"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
